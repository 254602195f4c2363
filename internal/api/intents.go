package telegram

import (
	"errors"
	"strings"

	"fitness-bot/internal/domain/entity"
)

var errUnknownCommand = errors.New("unknown command")

// parseCommand переводит команду и её аргументы в намерение.
// Команды, которые не меняют данные пользователя (/start, /help, /get_recommendations),
// обрабатываются ботом напрямую и сюда не попадают.
func parseCommand(command, args string) (entity.Intent, error) {
	fields := strings.Fields(args)

	switch command {
	case "set_profile":
		return entity.StartProfileSetup{}, nil

	case "log_water":
		if len(fields) != 1 {
			return nil, &entity.ValidationError{Field: entity.FieldWater, Message: msgUsageWater}
		}
		return entity.LogWater{Amount: fields[0]}, nil

	case "log_food":
		return entity.StartFoodLookup{Query: strings.Join(fields, " ")}, nil

	case "log_workout":
		if len(fields) != 2 {
			return nil, &entity.ValidationError{Field: entity.FieldWorkout, Message: msgUsageWorkout}
		}
		return entity.LogWorkout{Kind: fields[0], Minutes: fields[1]}, nil

	case "check_progress":
		return entity.QueryProgress{}, nil

	case "cancel":
		return entity.Cancel{}, nil

	default:
		return nil, errUnknownCommand
	}
}
