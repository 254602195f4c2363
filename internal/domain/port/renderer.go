package port

import "fitness-bot/internal/domain/entity"

// ProgressRenderer рисует график прогресса и возвращает PNG.
type ProgressRenderer interface {
	RenderProgress(snapshot entity.Snapshot) ([]byte, error)
}
