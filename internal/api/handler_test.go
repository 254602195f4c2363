package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"fitness-bot/internal/container"
	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/infrastructure/storage"
)

var errServiceDown = errors.New("service down")

type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeSender) last() string {
	texts := f.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (f *fakeSender) photos() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.sent {
		if _, ok := c.(tgbotapi.PhotoConfig); ok {
			n++
		}
	}
	return n
}

type fakeWeather map[string]float64

func (f fakeWeather) Temperature(_ context.Context, city string) (float64, error) {
	if t, ok := f[city]; ok {
		return t, nil
	}
	return 0, errServiceDown
}

type fakeNutrition map[string]entity.Food

func (f fakeNutrition) Lookup(_ context.Context, query string) (entity.Food, error) {
	if food, ok := f[strings.ToLower(query)]; ok {
		return food, nil
	}
	return entity.Food{}, errServiceDown
}

type fakeRecommender struct {
	foods []entity.Food
	err   error
}

func (f fakeRecommender) LowCalorie(context.Context) ([]entity.Food, error) {
	return f.foods, f.err
}

type fakeRenderer struct{ err error }

func (f fakeRenderer) RenderProgress(entity.Snapshot) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png"), nil
}

type fixture struct {
	handler *Handler
	out     *fakeSender
}

func newFixture(t *testing.T, recommender fakeRecommender, renderer fakeRenderer) *fixture {
	t.Helper()
	out := &fakeSender{}
	c := container.New(
		storage.NewMemoryUserRepository(),
		fakeWeather{"Москва": 30},
		fakeNutrition{"банан": {Name: "Банан", KcalPer100g: 89}},
		recommender,
		renderer,
	)
	return &fixture{handler: NewHandler(out, c, time.Second), out: out}
}

// say отправляет сообщение от пользователя и возвращает последний ответ бота.
func (f *fixture) say(userID int64, text string) string {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: userID},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		n := strings.IndexByte(text, ' ')
		if n < 0 {
			n = len(text)
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: n}}
	}
	f.handler.HandleUpdate(context.Background(), tgbotapi.Update{UpdateID: 1, Message: msg})
	return f.out.last()
}

func (f *fixture) press(userID int64, data string) string {
	cb := &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}
	f.handler.HandleUpdate(context.Background(), tgbotapi.Update{UpdateID: 2, CallbackQuery: cb})
	return f.out.last()
}

func TestHandler_FullDay(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{})
	const user = 42

	require.Equal(t, msgAskWeight, f.say(user, "/set_profile"))
	require.Equal(t, msgAskHeight, f.say(user, "80"))
	require.Equal(t, msgAskAge, f.say(user, "180"))
	require.Equal(t, msgAskActivity, f.say(user, "30"))
	require.Equal(t, msgAskCity, f.say(user, "60"))

	saved := f.say(user, "Москва")
	require.Contains(t, saved, "Профиль сохранён!")
	require.Contains(t, saved, "Норма воды: 3900 мл")
	require.Contains(t, saved, "Норма калорий: 1875 ккал")

	require.Equal(t, "Записано: 200 мл воды. Осталось: 3700 мл.", f.say(user, "/log_water 200"))
	require.Equal(t,
		"🏃‍♂️ Тренировка (бег) на 30 минут — 300 ккал.\nДополнительно: выпейте 200 мл воды.\nОсталось: 3500 мл воды.",
		f.say(user, "/log_workout бег 30"))

	require.Equal(t, "Банан — 89 ккал на 100 г. Сколько грамм вы съели?", f.say(user, "/log_food банан"))
	require.Equal(t, "Записано: 133.50 ккал. Общая сумма потребленных калорий: 133.50 ккал.", f.say(user, "150"))

	progress := f.say(user, "/check_progress")
	require.Contains(t, progress, "Выпито: 400 мл из 3900 мл.")
	require.Contains(t, progress, "Осталось: 3500 мл.")
	require.Contains(t, progress, "Потреблено: 133.5 ккал из 1875 ккал.")
	require.Contains(t, progress, "Сожжено: 300 ккал.")
	require.Contains(t, progress, "Баланс: -166.5 ккал.")
	require.Equal(t, 1, f.out.photos())
}

func TestHandler_Errors(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{})
	const user = 7

	require.Equal(t, msgUsageWater, f.say(user, "/log_water"))
	require.Equal(t, msgProfileRequired, f.say(user, "/log_water 200"))
	require.Equal(t, "Пожалуйста, введите корректное число для количества воды.", f.say(user, "/log_water много"))
	require.Equal(t, msgUsageWorkout, f.say(user, "/log_workout бег"))
	require.Equal(t, "Неизвестный тип тренировки. Попробуйте 'бег', 'плавание' или 'велоспорт'.", f.say(user, "/log_workout йога 30"))
	require.Equal(t, msgFoodNotFound, f.say(user, "/log_food амброзия"))
	require.Equal(t, msgUnknownInput, f.say(user, "привет"))
	require.Equal(t, msgUnknownCommand, f.say(user, "/dance"))
	require.Equal(t, msgProfileRequired, f.say(user, "/check_progress"))
}

func TestHandler_WeatherUnavailable(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{})
	const user = 8

	for _, answer := range []string{"/set_profile", "70", "175", "25", "0"} {
		f.say(user, answer)
	}
	require.Equal(t, msgWeatherFailed, f.say(user, "Атлантида"))
	require.Equal(t, msgUnknownInput, f.say(user, "Москва"))
	require.Equal(t, msgProfileRequired, f.say(user, "/check_progress"))
}

func TestHandler_CancelSetup(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{})
	const user = 9

	f.say(user, "/set_profile")
	f.say(user, "70")
	require.Equal(t, msgCancelled, f.say(user, "/cancel"))
	require.Equal(t, msgUnknownInput, f.say(user, "175"))
}

func TestHandler_Start(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{})

	f.say(1, "/start")
	require.Len(t, f.out.sent, 1)
	msg, ok := f.out.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, msgStart, msg.Text)
	require.Equal(t, mainMenu, msg.ReplyMarkup)

	require.Equal(t, msgHelp, f.say(1, "/help"))
}

func TestHandler_Callbacks(t *testing.T) {
	f := newFixture(t, fakeRecommender{foods: []entity.Food{
		{Name: "Огурец", KcalPer100g: 15},
		{Name: "Кефир", KcalPer100g: 40.5},
	}}, fakeRenderer{})
	const user = 10

	require.Equal(t, msgHintWater, f.press(user, cbLogWater))
	require.Equal(t, msgHintFood, f.press(user, cbLogFood))
	require.Equal(t, msgHintWorkout, f.press(user, cbLogWorkout))
	require.Equal(t, msgCommands, f.press(user, cbShowCommands))
	require.Equal(t, msgProfileRequired, f.press(user, cbCheckProgress))
	require.Equal(t,
		"Рекомендованные продукты с низким содержанием калорий:\nОгурец — 15 ккал на 100 г\nКефир — 40.5 ккал на 100 г\n",
		f.press(user, cbRecommendations))
	require.Equal(t, msgAskWeight, f.press(user, cbSetProfile))

	require.Len(t, f.out.requests, 7)
}

func TestHandler_RecommendationsUnavailable(t *testing.T) {
	f := newFixture(t, fakeRecommender{err: errServiceDown}, fakeRenderer{})
	require.Equal(t, msgNoRecommendation, f.say(1, "/get_recommendations"))

	f = newFixture(t, fakeRecommender{}, fakeRenderer{})
	require.Equal(t, msgNoRecommendation, f.say(1, "/get_recommendations"))
}

func TestHandler_ChartUnavailable(t *testing.T) {
	f := newFixture(t, fakeRecommender{}, fakeRenderer{err: errServiceDown})
	const user = 11

	for _, answer := range []string{"/set_profile", "70", "175", "25", "0", "Москва"} {
		f.say(user, answer)
	}
	require.Equal(t, msgChartFailed, f.say(user, "/check_progress"))

	texts := f.out.texts()
	require.Contains(t, texts[len(texts)-2], "📊 Прогресс:")
	require.Zero(t, f.out.photos())
}
