package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// ReservationCache — персистентный кэш броней плюс скаляр "последний bulk fetch".
// Требования к реализации: фильтр check_out >= today выполняется на стороне
// хранилища (не после выборки); Upsert идемпотентен при повторной записи
// одной и той же брони.
type ReservationCache interface {
	// FindFresh — непросроченная запись по (roomID, фамилия); (nil, nil) при промахе.
	FindFresh(ctx context.Context, roomID, surname string, today time.Time) (*domain.CachedReservation, error)

	// Upsert — вставка/обновление по идентичности брони (reservation id).
	Upsert(ctx context.Context, r *domain.CachedReservation) error

	// LastBulkFetch — момент последнего полного обновления; нулевое время, если его не было.
	LastBulkFetch(ctx context.Context) (time.Time, error)

	// SetLastBulkFetch — фиксация момента успешного полного обновления.
	SetLastBulkFetch(ctx context.Context, t time.Time) error

	// PurgeExpired — удаление записей с check_out < today; возвращает число удалённых.
	PurgeExpired(ctx context.Context, today time.Time) (int64, error)

	// Stats — статистика кэша для админ-интерфейса.
	Stats(ctx context.Context) (*domain.CacheStats, error)
}
