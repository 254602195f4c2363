// Package chart рисует график прогресса пользователя.
// Полная версия собирается с тегом gocv, без него используется заглушка.
package chart

import (
	"errors"
	"image/color"

	"fitness-bot/internal/domain/entity"
)

// ErrRendererDisabled возвращается, если бинарник собран без OpenCV.
var ErrRendererDisabled = errors.New("chart renderer is disabled: build with -tags gocv")

const (
	chartWidth  = 800
	chartHeight = 420
	baselineY   = 340 // нижняя граница столбцов
	plotHeight  = 240 // максимальная высота столбца
	barWidth    = 90
	barGap      = 20
	titleY      = 40
	waterGroupX = 60
	kcalGroupX  = 420
)

var (
	colorWater    = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	colorConsumed = color.RGBA{R: 52, G: 168, B: 83, A: 255}
	colorBurned   = color.RGBA{R: 251, G: 140, B: 0, A: 255}
	colorGoal     = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	colorText     = color.RGBA{A: 255}
)

type bar struct {
	Label  string
	Value  float64
	X      int
	Height int
	Color  color.RGBA
}

// layoutBars раскладывает снимок прогресса на две группы столбцов:
// вода (выпито/норма) и калории (потреблено/сожжено/норма).
// Каждая группа масштабируется по своему максимуму, отрицательные значения рисуются нулевыми.
func layoutBars(s entity.Snapshot) []bar {
	water := []bar{
		{Label: "drunk", Value: float64(s.WaterLogged), Color: colorWater},
		{Label: "goal", Value: float64(s.WaterGoal), Color: colorGoal},
	}
	kcal := []bar{
		{Label: "eaten", Value: s.CaloriesLogged, Color: colorConsumed},
		{Label: "burned", Value: float64(s.CaloriesBurned), Color: colorBurned},
		{Label: "goal", Value: s.CalorieGoal, Color: colorGoal},
	}

	place(water, waterGroupX)
	place(kcal, kcalGroupX)
	return append(water, kcal...)
}

func place(bars []bar, x int) {
	var top float64
	for _, b := range bars {
		top = max(top, b.Value)
	}
	for i := range bars {
		bars[i].X = x + i*(barWidth+barGap)
		if top > 0 && bars[i].Value > 0 {
			bars[i].Height = int(bars[i].Value / top * plotHeight)
		}
	}
}
