//go:build !gocv
// +build !gocv

package chart

import (
	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

// Renderer заменяет рендерер при сборке без OpenCV.
type Renderer struct{}

// NewRenderer создаёт рендерер-заглушку (без OpenCV).
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderProgress возвращает ошибку, если сборка без тега gocv.
func (r *Renderer) RenderProgress(s entity.Snapshot) ([]byte, error) {
	_ = s
	return nil, ErrRendererDisabled
}

var _ port.ProgressRenderer = (*Renderer)(nil)
