package entity

// Profile хранит данные, которые пользователь вводит при настройке.
type Profile struct {
	WeightKg        int    `json:"weight_kg"`
	HeightCm        int    `json:"height_cm"`
	AgeYears        int    `json:"age_years"`
	ActivityMinutes int    `json:"activity_minutes"`
	City            string `json:"city"`
}

// ProfileDraft копит поля профиля до ввода города.
type ProfileDraft struct {
	WeightKg        int `json:"weight_kg,omitempty"`
	HeightCm        int `json:"height_cm,omitempty"`
	AgeYears        int `json:"age_years,omitempty"`
	ActivityMinutes int `json:"activity_minutes,omitempty"`
}

// Complete собирает профиль из черновика и города.
func (d ProfileDraft) Complete(city string) Profile {
	return Profile{
		WeightKg:        d.WeightKg,
		HeightCm:        d.HeightCm,
		AgeYears:        d.AgeYears,
		ActivityMinutes: d.ActivityMinutes,
		City:            city,
	}
}

// Goals хранит дневные нормы воды и калорий.
type Goals struct {
	WaterML      int     `json:"water_ml"`
	CaloriesKcal float64 `json:"calories_kcal"`
}
