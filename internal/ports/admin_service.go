package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// AdminService — чтение для админ-интерфейса и обслуживание кэша.
type AdminService interface {
	Devices(ctx context.Context, limit, offset int) ([]*domain.Device, error)
	Rooms(ctx context.Context) ([]*domain.RoomOverview, error)
	TodaysReservations(ctx context.Context) ([]*domain.CachedReservation, error)
	CacheStats(ctx context.Context) (*domain.CacheStats, error)
	PurgeCache(ctx context.Context) (int64, error)
}
