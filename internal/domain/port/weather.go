package port

import "context"

// WeatherLookup возвращает текущую температуру в городе.
// Любая ошибка означает, что данные недоступны.
type WeatherLookup interface {
	Temperature(ctx context.Context, city string) (float64, error)
}
