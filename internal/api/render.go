package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fitness-bot/internal/domain/entity"
)

// renderOutcome формирует ответ пользователю на успешный ход.
func renderOutcome(o entity.Outcome) string {
	switch out := o.(type) {
	case entity.SetupPrompt:
		return setupQuestion(out.State)

	case entity.ProfileSaved:
		return fmt.Sprintf("Профиль сохранён!\n\nТемпература в городе %s: %.1f °C\nНорма воды: %d мл\nНорма калорий: %s ккал",
			out.Profile.City, out.TemperatureC, out.Goals.WaterML, formatKcal(out.Goals.CaloriesKcal))

	case entity.WaterLogged:
		return fmt.Sprintf("Записано: %d мл воды. Осталось: %d мл.", out.AddedML, out.RemainingML)

	case entity.WorkoutLogged:
		return fmt.Sprintf("🏃‍♂️ Тренировка (%s) на %d минут — %d ккал.\nДополнительно: выпейте %d мл воды.\nОсталось: %d мл воды.",
			out.Workout.Name, out.Minutes, out.BurnedKcal, out.WaterML, out.RemainingML)

	case entity.FoodFound:
		return fmt.Sprintf("%s — %s ккал на 100 г. Сколько грамм вы съели?", out.Food.Name, formatKcal(out.Food.KcalPer100g))

	case entity.FoodLogged:
		return fmt.Sprintf("Записано: %.2f ккал. Общая сумма потребленных калорий: %.2f ккал.", out.ConsumedKcal, out.TotalKcal)

	case entity.Snapshot:
		return renderSnapshot(out)

	case entity.Cancelled:
		return msgCancelled

	default:
		return msgInternalError
	}
}

func renderSnapshot(s entity.Snapshot) string {
	var b strings.Builder
	b.WriteString("📊 Прогресс:\n\n")
	b.WriteString("Вода:\n")
	fmt.Fprintf(&b, "Выпито: %d мл из %d мл.\n", s.WaterLogged, s.WaterGoal)
	fmt.Fprintf(&b, "Осталось: %d мл.\n\n", s.WaterRemaining)
	b.WriteString("Калории:\n")
	fmt.Fprintf(&b, "Потреблено: %s ккал из %s ккал.\n", formatKcal(s.CaloriesLogged), formatKcal(s.CalorieGoal))
	fmt.Fprintf(&b, "Сожжено: %d ккал.\n", s.CaloriesBurned)
	fmt.Fprintf(&b, "Баланс: %s ккал.", formatKcal(s.Balance))
	return b.String()
}

func renderRecommendations(foods []entity.Food) string {
	var b strings.Builder
	b.WriteString("Рекомендованные продукты с низким содержанием калорий:\n")
	for _, f := range foods {
		fmt.Fprintf(&b, "%s — %s ккал на 100 г\n", f.Name, formatKcal(f.KcalPer100g))
	}
	return b.String()
}

func setupQuestion(state entity.DialogState) string {
	switch state {
	case entity.StateAwaitingWeight:
		return msgAskWeight
	case entity.StateAwaitingHeight:
		return msgAskHeight
	case entity.StateAwaitingAge:
		return msgAskAge
	case entity.StateAwaitingActivity:
		return msgAskActivity
	case entity.StateAwaitingCity:
		return msgAskCity
	default:
		return msgUnknownInput
	}
}

// renderError формирует ответ на ошибку хода. internal == true означает сбой,
// о котором пользователь получает только общее сообщение.
func renderError(intent entity.Intent, err error) (text string, internal bool) {
	var validation *entity.ValidationError
	var unknownWorkout *entity.UnknownWorkoutError

	switch {
	case errors.As(err, &validation):
		return validation.Message, false
	case errors.As(err, &unknownWorkout):
		return fmt.Sprintf(msgUnknownWorkout, quoteList(entity.WorkoutNames())), false
	case errors.Is(err, entity.ErrProfileRequired):
		return msgProfileRequired, false
	case errors.Is(err, entity.ErrLookupUnavailable):
		if _, ok := intent.(entity.StartFoodLookup); ok {
			return msgFoodNotFound, false
		}
		return msgWeatherFailed, false
	case errors.Is(err, entity.ErrNoActiveDialog):
		return msgUnknownInput, false
	default:
		return msgInternalError, true
	}
}

// formatKcal печатает число без лишних нулей: 1800, 1768.75.
func formatKcal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " или " + quoted[len(quoted)-1]
}
