package entity

// Food описывает продукт и его калорийность на 100 г.
type Food struct {
	Name        string  `json:"name"`
	KcalPer100g float64 `json:"kcal_per_100g"`
}

// Calories возвращает калорийность порции заданной массы.
func (f Food) Calories(grams int) float64 {
	return f.KcalPer100g * float64(grams) / 100
}
