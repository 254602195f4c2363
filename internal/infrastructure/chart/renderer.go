//go:build gocv
// +build gocv

package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"gocv.io/x/gocv"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

// Renderer рисует график прогресса средствами OpenCV.
type Renderer struct{}

// NewRenderer создаёт рендерер графиков.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderProgress рисует столбчатую диаграмму и возвращает PNG.
func (r *Renderer) RenderProgress(s entity.Snapshot) ([]byte, error) {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), chartHeight, chartWidth, gocv.MatTypeCV8UC3)
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("failed to allocate %dx%d canvas", chartWidth, chartHeight)
	}

	gocv.PutText(&mat, "Water, ml", image.Pt(waterGroupX, titleY), gocv.FontHersheySimplex, 0.8, colorText, 2)
	gocv.PutText(&mat, "Calories, kcal", image.Pt(kcalGroupX, titleY), gocv.FontHersheySimplex, 0.8, colorText, 2)
	gocv.Line(&mat, image.Pt(waterGroupX-10, baselineY), image.Pt(chartWidth-20, baselineY), colorText, 1)

	for _, b := range layoutBars(s) {
		if b.Height > 0 {
			rect := image.Rect(b.X, baselineY-b.Height, b.X+barWidth, baselineY)
			gocv.Rectangle(&mat, rect, b.Color, -1)
		}
		gocv.PutText(&mat, fmt.Sprintf("%.0f", b.Value), image.Pt(b.X, baselineY-b.Height-8), gocv.FontHersheySimplex, 0.5, colorText, 1)
		gocv.PutText(&mat, b.Label, image.Pt(b.X, baselineY+25), gocv.FontHersheySimplex, 0.6, colorText, 1)
	}

	balance := fmt.Sprintf("Balance: %.2f kcal", s.Balance)
	gocv.PutText(&mat, balance, image.Pt(waterGroupX, chartHeight-20), gocv.FontHersheySimplex, 0.7, colorText, 2)

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var _ port.ProgressRenderer = (*Renderer)(nil)
