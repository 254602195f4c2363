package telegram

const (
	msgStart = `👋 Привет! Я помогу тебе рассчитать нормы воды и калорий, а также вести трекинг активности.

Начни с команды /set_profile.`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Настройте профиль: вес, рост, возраст, активность и город
2️⃣ Записывайте воду, еду и тренировки
3️⃣ Смотрите прогресс по воде и калориям

📋 Команды:
/set_profile — настроить профиль
/log_water <мл> — записать выпитую воду
/log_food <продукт> — записать съеденную еду
/log_workout <тип> <минуты> — записать тренировку
/check_progress — посмотреть прогресс
/get_recommendations — низкокалорийные продукты
/cancel — отменить текущую операцию`

	msgCommands = `/set_profile - Настроить профиль
/log_water - Записать количество выпитой воды
/log_food - Записать количество съеденной пищи
/log_workout - Записать тренировку
/check_progress - Посмотреть прогресс
/get_recommendations - Получить рекомендации`

	msgAskWeight   = "Введите ваш вес (в кг):"
	msgAskHeight   = "Введите ваш рост (в см):"
	msgAskAge      = "Введите ваш возраст:"
	msgAskActivity = "Сколько минут активности у вас в день?"
	msgAskCity     = "В каком городе вы находитесь?"

	msgHintWater   = "Введите количество выпитой воды (в мл) с командой /log_water <количество>."
	msgHintFood    = "Введите название продукта с командой /log_food <название продукта>."
	msgHintWorkout = "Введите тип тренировки и время (например: /log_workout бег 30)."

	msgUsageWater   = "Пожалуйста, укажите количество воды в миллилитрах (например: /log_water 200)."
	msgUsageWorkout = "Пожалуйста, укажите тип тренировки и время (например: /log_workout бег 30)."

	msgProfileRequired  = "Сначала настройте профиль с помощью команды /set_profile."
	msgWeatherFailed    = "Не удалось получить данные о погоде. Попробуйте снова позже."
	msgFoodNotFound     = "Не удалось найти информацию о продукте. Попробуйте другое название."
	msgNoRecommendation = "Не удалось получить рекомендации."
	msgChartFailed      = "Не удалось построить график."
	msgUnknownWorkout   = "Неизвестный тип тренировки. Попробуйте %s."
	msgCancelled        = "❌ Операция отменена."
	msgUnknownCommand   = "❓ Неизвестная команда. Используйте /help для справки."
	msgUnknownInput     = "Я не жду ответа. Выберите действие в меню или используйте /help."
	msgInternalError    = "⚠️ Что-то пошло не так. Попробуйте ещё раз позже."
)

// Данные кнопок главного меню.
const (
	cbSetProfile      = "set_profile"
	cbLogWater        = "log_water"
	cbLogFood         = "log_food"
	cbLogWorkout      = "log_workout"
	cbCheckProgress   = "check_progress"
	cbShowCommands    = "show_commands"
	cbRecommendations = "get_recommendations"
)
