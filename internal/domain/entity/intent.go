package entity

// Intent описывает нормализованное действие пользователя.
type Intent interface {
	Name() string
}

// StartProfileSetup начинает настройку профиля заново.
type StartProfileSetup struct{}

// ProfileAnswer отвечает на текущий шаг настройки профиля.
type ProfileAnswer struct{ Text string }

type LogWater struct{ Amount string }

type LogWorkout struct {
	Kind    string
	Minutes string
}

// StartFoodLookup ищет продукт по названию.
type StartFoodLookup struct{ Query string }

// FoodQuantityAnswer сообщает количество съеденных грамм.
type FoodQuantityAnswer struct{ Text string }

type QueryProgress struct{}

// FreeText содержит текст без команды, его смысл зависит от состояния диалога.
type FreeText struct{ Text string }

// Cancel прерывает текущий диалог.
type Cancel struct{}

func (StartProfileSetup) Name() string  { return "start_profile_setup" }
func (ProfileAnswer) Name() string      { return "profile_answer" }
func (LogWater) Name() string           { return "log_water" }
func (LogWorkout) Name() string         { return "log_workout" }
func (StartFoodLookup) Name() string    { return "start_food_lookup" }
func (FoodQuantityAnswer) Name() string { return "food_quantity_answer" }
func (QueryProgress) Name() string      { return "query_progress" }
func (FreeText) Name() string           { return "free_text" }
func (Cancel) Name() string             { return "cancel" }
