package entity

// DialogState состояние пользователя в диалоге
type DialogState string

const (
	StateIdle                 DialogState = "idle"                   // Нет активного диалога
	StateAwaitingWeight       DialogState = "awaiting_weight"        // Ожидание веса
	StateAwaitingHeight       DialogState = "awaiting_height"        // Ожидание роста
	StateAwaitingAge          DialogState = "awaiting_age"           // Ожидание возраста
	StateAwaitingActivity     DialogState = "awaiting_activity"      // Ожидание минут активности
	StateAwaitingCity         DialogState = "awaiting_city"          // Ожидание города
	StateAwaitingFoodQuantity DialogState = "awaiting_food_quantity" // Ожидание граммов продукта
)

// InSetup сообщает, идёт ли сейчас настройка профиля.
func (s DialogState) InSetup() bool {
	switch s {
	case StateAwaitingWeight, StateAwaitingHeight, StateAwaitingAge, StateAwaitingActivity, StateAwaitingCity:
		return true
	}
	return false
}

// Dialog хранит состояние диалога и промежуточные данные.
type Dialog struct {
	State DialogState  `json:"state"`
	Draft ProfileDraft `json:"draft"`
	Food  *Food        `json:"food,omitempty"` // только в StateAwaitingFoodQuantity
}

// Reset возвращает диалог в исходное состояние и стирает черновик.
func (d *Dialog) Reset() {
	*d = Dialog{State: StateIdle}
}

// User представляет пользователя бота
type User struct {
	ID      int64    // Telegram User ID
	ChatID  int64    // Telegram Chat ID
	Dialog  Dialog   // Текущий диалог
	Account *Account // nil, пока профиль не настроен
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		Dialog: Dialog{State: StateIdle},
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state DialogState) {
	u.Dialog.State = state
}

// Configured сообщает, есть ли у пользователя профиль и журнал.
func (u *User) Configured() bool {
	return u.Account != nil
}

// Clone возвращает независимую копию пользователя.
func (u *User) Clone() *User {
	c := *u
	if u.Dialog.Food != nil {
		food := *u.Dialog.Food
		c.Dialog.Food = &food
	}
	if u.Account != nil {
		acc := *u.Account
		c.Account = &acc
	}
	return &c
}
