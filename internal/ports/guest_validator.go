package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// GuestValidator — движок валидации гостя.
// Результат всегда non-nil; сбои хранилища и upstream'а
// вырождаются в Valid=false, а не в ошибку.
type GuestValidator interface {
	Validate(ctx context.Context, roomID, roomNumber, surname string) *domain.ValidationResult
}
