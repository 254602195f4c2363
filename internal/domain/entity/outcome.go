package entity

// Outcome описывает успешный результат обработки намерения.
type Outcome interface {
	isOutcome()
}

// SetupPrompt указывает следующий шаг настройки профиля.
type SetupPrompt struct {
	State DialogState
}

// ProfileSaved сообщает, что профиль сохранён и нормы рассчитаны.
type ProfileSaved struct {
	Profile      Profile
	Goals        Goals
	TemperatureC float64
}

type WaterLogged struct {
	AddedML     int
	RemainingML int
}

type WorkoutLogged struct {
	Workout     Workout
	Minutes     int
	BurnedKcal  int
	WaterML     int
	RemainingML int
}

// FoodFound: продукт найден, бот ждёт количество грамм.
type FoodFound struct {
	Food Food
}

type FoodLogged struct {
	Food         Food
	Grams        int
	ConsumedKcal float64
	TotalKcal    float64
}

type Cancelled struct{}

func (SetupPrompt) isOutcome()   {}
func (ProfileSaved) isOutcome()  {}
func (WaterLogged) isOutcome()   {}
func (WorkoutLogged) isOutcome() {}
func (FoodFound) isOutcome()     {}
func (FoodLogged) isOutcome()    {}
func (Snapshot) isOutcome()      {}
func (Cancelled) isOutcome()     {}
