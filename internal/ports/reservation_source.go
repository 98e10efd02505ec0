package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// ReservationSource — upstream PMS (источник истины по броням).
// Медленный, с rate limit'ами; любая транспортная ошибка возвращается как error,
// повторов внутри одного вызова валидации не делаем.
type ReservationSource interface {
	// FetchOverlapping — все брони, пересекающие окно [start, end) в допустимых состояниях.
	FetchOverlapping(ctx context.Context, start, end time.Time) ([]domain.ReservationRaw, error)

	// CustomerSurname — фамилия гостя по идентификатору аккаунта.
	CustomerSurname(ctx context.Context, customerID string) (string, error)
}
