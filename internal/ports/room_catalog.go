package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// RoomCatalog — локальный каталог номеров (resource id PMS <-> отображаемый номер).
// Заполняется отдельной синхронизацией (cmd/sync-rooms), движок его только читает.
type RoomCatalog interface {
	// NumberByID — отображаемый номер по resource id; ("", nil), если номера нет в каталоге.
	NumberByID(ctx context.Context, roomID string) (string, error)

	// IDByNumber — resource id по отображаемому номеру; ("", nil), если не найден.
	IDByNumber(ctx context.Context, number string) (string, error)

	// Upsert — вставка/обновление записи каталога.
	Upsert(ctx context.Context, room domain.Room) error

	// List — весь каталог (для админ-интерфейса и синхронизации).
	List(ctx context.Context) ([]domain.Room, error)
}
