package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// HousekeepingStore — предпочтение "не убирать номер" и сводка по номерам.
type HousekeepingStore interface {
	// SetSkipClean — выставить/снять пометку пропуска уборки для номера.
	SetSkipClean(ctx context.Context, roomNumber, surname string, skip bool) error

	// RoomsOverview — номера с пометками, счётчиками устройств.
	RoomsOverview(ctx context.Context) ([]*domain.RoomOverview, error)
}
