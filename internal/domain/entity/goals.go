package entity

const (
	waterPerKgML         = 30
	activityBlockMinutes = 30
	waterPerActivityML   = 500
	hotWeatherBonusML    = 500
	hotWeatherThresholdC = 25.0
	kcalPerActivityBlock = 50
)

// WaterGoal рассчитывает дневную норму воды в мл.
// Бонус за активность начисляется только за полные 30-минутные блоки,
// погодный бонус только при температуре строго выше 25°C.
func WaterGoal(weightKg, activityMinutes int, temperatureC float64) int {
	goal := weightKg*waterPerKgML + (activityMinutes/activityBlockMinutes)*waterPerActivityML
	if temperatureC > hotWeatherThresholdC {
		goal += hotWeatherBonusML
	}
	return goal
}

// CalorieGoal рассчитывает дневную норму калорий (Миффлин-Сан Жеор без поправки на пол).
// Результат не ограничивается снизу и может быть отрицательным.
func CalorieGoal(weightKg, heightCm, ageYears, activityMinutes int) float64 {
	base := 10*float64(weightKg) + 6.25*float64(heightCm) - 5*float64(ageYears)
	return base + float64((activityMinutes/activityBlockMinutes)*kcalPerActivityBlock)
}

// ComputeGoals рассчитывает обе нормы для профиля при заданной температуре.
func ComputeGoals(p Profile, temperatureC float64) Goals {
	return Goals{
		WaterML:      WaterGoal(p.WeightKg, p.ActivityMinutes, temperatureC),
		CaloriesKcal: CalorieGoal(p.WeightKg, p.HeightCm, p.AgeYears, p.ActivityMinutes),
	}
}
