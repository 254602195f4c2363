package entity

// Ledger хранит значения, накопленные с момента настройки профиля.
type Ledger struct {
	WaterML      int     `json:"water_ml"`
	CaloriesKcal float64 `json:"calories_kcal"`
	BurnedKcal   int     `json:"burned_kcal"`
}

// Account объединяет профиль, нормы и журнал пользователя.
type Account struct {
	Profile Profile `json:"profile"`
	Goals   Goals   `json:"goals"`
	Ledger  Ledger  `json:"ledger"`
}

// NewAccount создаёт запись с обнулённым журналом.
func NewAccount(profile Profile, goals Goals) *Account {
	return &Account{Profile: profile, Goals: goals}
}

// WaterRemaining возвращает остаток воды до нормы, не меньше нуля.
func (a *Account) WaterRemaining() int {
	return max(0, a.Goals.WaterML-a.Ledger.WaterML)
}

// Snapshot описывает прогресс пользователя на текущий момент.
type Snapshot struct {
	WaterLogged    int
	WaterGoal      int
	WaterRemaining int
	CaloriesLogged float64
	CalorieGoal    float64
	CaloriesBurned int
	Balance        float64 // потреблено минус сожжено, может быть отрицательным
}

// Snapshot собирает текущий прогресс.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		WaterLogged:    a.Ledger.WaterML,
		WaterGoal:      a.Goals.WaterML,
		WaterRemaining: a.WaterRemaining(),
		CaloriesLogged: a.Ledger.CaloriesKcal,
		CalorieGoal:    a.Goals.CaloriesKcal,
		CaloriesBurned: a.Ledger.BurnedKcal,
		Balance:        a.Ledger.CaloriesKcal - float64(a.Ledger.BurnedKcal),
	}
}
