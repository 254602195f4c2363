package entity

import "strings"

const workoutWaterBlockMinutes = 30

// Workout описывает тип тренировки и его коэффициенты.
type Workout struct {
	Name            string
	KcalPerMinute   int
	WaterPerBlockML int // доп. вода за каждые полные 30 минут
}

var (
	WorkoutRunning  = Workout{Name: "бег", KcalPerMinute: 10, WaterPerBlockML: 200}
	WorkoutSwimming = Workout{Name: "плавание", KcalPerMinute: 8, WaterPerBlockML: 200}
	WorkoutCycling  = Workout{Name: "велоспорт", KcalPerMinute: 7, WaterPerBlockML: 200}
)

var workoutCatalog = map[string]Workout{
	"бег":       WorkoutRunning,
	"running":   WorkoutRunning,
	"плавание":  WorkoutSwimming,
	"swimming":  WorkoutSwimming,
	"велоспорт": WorkoutCycling,
	"cycling":   WorkoutCycling,
}

// LookupWorkout ищет тренировку по названию без учёта регистра.
func LookupWorkout(kind string) (Workout, error) {
	w, ok := workoutCatalog[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return Workout{}, &UnknownWorkoutError{Kind: kind}
	}
	return w, nil
}

// WorkoutNames возвращает основные названия тренировок.
func WorkoutNames() []string {
	return []string{WorkoutRunning.Name, WorkoutSwimming.Name, WorkoutCycling.Name}
}

// Burned возвращает сожжённые за тренировку калории.
func (w Workout) Burned(minutes int) int {
	return minutes * w.KcalPerMinute
}

// ExtraWater возвращает объём воды, добавляемый за тренировку.
func (w Workout) ExtraWater(minutes int) int {
	return (minutes / workoutWaterBlockMinutes) * w.WaterPerBlockML
}
