package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrProfileRequired = errors.New("profile is not configured")
	// Внешний сервис (погода, продукты) не вернул результат
	ErrLookupUnavailable = errors.New("lookup unavailable")
	// Пришёл ответ, которого бот не ждал
	ErrNoActiveDialog = errors.New("no active dialog")
)

// Поля пользовательского ввода.
const (
	FieldWeight   = "weight"
	FieldHeight   = "height"
	FieldAge      = "age"
	FieldActivity = "activity"
	FieldCity     = "city"
	FieldWater    = "water"
	FieldFood     = "food"
	FieldGrams    = "grams"
	FieldWorkout  = "workout"
	FieldMinutes  = "minutes"
)

var fieldTitles = map[string]string{
	FieldWeight:   "веса",
	FieldHeight:   "роста",
	FieldAge:      "возраста",
	FieldActivity: "активности",
	FieldWater:    "количества воды",
	FieldGrams:    "количества грамм",
	FieldMinutes:  "времени тренировки",
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnknownWorkoutError возвращается для типа тренировки, которого нет в каталоге.
type UnknownWorkoutError struct {
	Kind string
}

func (e *UnknownWorkoutError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Kind)
}

// fieldLimits ограничивает числовой ввод сверху, чтобы нормы и журнал
// не переполнялись.
var fieldLimits = map[string]int{
	FieldWeight:   500,
	FieldHeight:   300,
	FieldAge:      150,
	FieldActivity: 1440,
	FieldWater:    10000,
	FieldGrams:    10000,
	FieldMinutes:  1440,
}

// ParseInt разбирает целое число из пользовательского ввода.
// Значения больше предела поля отклоняются.
func ParseInt(field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Пожалуйста, введите корректное число для %s.", fieldTitles[field]),
		}
	}
	if limit, ok := fieldLimits[field]; ok && n > limit {
		return 0, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Значение %s не может быть больше %d.", fieldTitles[field], limit),
		}
	}
	return n, nil
}

// ParsePositive разбирает целое число больше нуля.
func ParsePositive(field, text string) (int, error) {
	n, err := ParseInt(field, text)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Значение %s должно быть больше нуля.", fieldTitles[field]),
		}
	}
	return n, nil
}

// ParseNonNegative разбирает целое число не меньше нуля.
func ParseNonNegative(field, text string) (int, error) {
	n, err := ParseInt(field, text)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Значение %s не может быть отрицательным.", fieldTitles[field]),
		}
	}
	return n, nil
}
