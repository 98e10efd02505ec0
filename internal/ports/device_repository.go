package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// DeviceRepository — реестр авторизованных устройств.
type DeviceRepository interface {
	// ByMAC — устройство по MAC-адресу; (nil, nil), если не зарегистрировано.
	ByMAC(ctx context.Context, mac string) (*domain.Device, error)

	// CountFast — число устройств комнаты в быстром профиле.
	CountFast(ctx context.Context, roomNumber string) (int, error)

	// Register — регистрация или обновление устройства (идемпотентный upsert по MAC).
	Register(ctx context.Context, d *domain.Device) error

	// List — постраничный список устройств, свежие сверху.
	List(ctx context.Context, limit, offset int) ([]*domain.Device, error)
}
