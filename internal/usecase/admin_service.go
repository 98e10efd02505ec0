package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
)

// Проверка, что AdminQueryService удовлетворяет порту AdminService.
var _ ports.AdminService = (*AdminQueryService)(nil)

// AdminQueryService — read-side для админ-интерфейса плюс обслуживание кэша.
type AdminQueryService struct {
	cache        ports.ReservationCache
	devices      ports.DeviceRepository
	housekeeping ports.HousekeepingStore
	validation   *ValidationService
	log          ports.Logger

	now func() time.Time
}

// NewAdminQueryService — DI-конструктор.
func NewAdminQueryService(
	cache ports.ReservationCache,
	devices ports.DeviceRepository,
	housekeeping ports.HousekeepingStore,
	validation *ValidationService,
	log ports.Logger,
) *AdminQueryService {
	return &AdminQueryService{
		cache:        cache,
		devices:      devices,
		housekeeping: housekeeping,
		validation:   validation,
		log:          log,
		now:          time.Now,
	}
}

// Devices — постраничный список зарегистрированных устройств.
func (s *AdminQueryService) Devices(ctx context.Context, limit, offset int) ([]*domain.Device, error) {
	devices, err := s.devices.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return devices, nil
}

// Rooms — сводка по номерам: пометки уборки, счётчики устройств.
func (s *AdminQueryService) Rooms(ctx context.Context) ([]*domain.RoomOverview, error) {
	rooms, err := s.housekeeping.RoomsOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("rooms overview: %w", err)
	}
	return rooms, nil
}

// TodaysReservations — брони текущего дня напрямую из PMS.
func (s *AdminQueryService) TodaysReservations(ctx context.Context) ([]*domain.CachedReservation, error) {
	return s.validation.TodaysReservations(ctx)
}

// CacheStats — размер кэша, просроченные записи, момент последнего обновления.
func (s *AdminQueryService) CacheStats(ctx context.Context) (*domain.CacheStats, error) {
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache stats: %w", err)
	}
	return stats, nil
}

// PurgeCache — удаление записей с истёкшим check-out; возвращает число удалённых.
func (s *AdminQueryService) PurgeCache(ctx context.Context) (int64, error) {
	purged, err := s.cache.PurgeExpired(ctx, domain.DateOnly(s.now()))
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	if purged > 0 {
		metrics.CacheOps.WithLabelValues("purged").Add(float64(purged))
	}
	s.log.Infof(ctx, "cache purge: %d expired reservations removed", purged)
	return purged, nil
}
