package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что DeviceRepository удовлетворяет порту DeviceRepository.
var _ ports.DeviceRepository = (*DeviceRepository)(nil)

// DeviceRepository — реестр авторизованных устройств на Postgres.
type DeviceRepository struct {
	pool *pgxpool.Pool
}

// NewDeviceRepository - конструктор DeviceRepository.
func NewDeviceRepository(pool *pgxpool.Pool) *DeviceRepository { return &DeviceRepository{pool: pool} }

// ByMAC — устройство по MAC-адресу; (nil, nil), если не зарегистрировано.
func (r *DeviceRepository) ByMAC(ctx context.Context, mac string) (*domain.Device, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT device_mac, room_number, surname, fast_mode, last_update, created_at
		FROM authorized_devices
		WHERE device_mac = $1
	`, mac)

	var d domain.Device
	if err := row.Scan(&d.MAC, &d.RoomNumber, &d.Surname, &d.FastMode, &d.LastUpdate, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("device by mac: %w", err)
	}
	return &d, nil
}

// CountFast — число устройств комнаты в быстром профиле.
func (r *DeviceRepository) CountFast(ctx context.Context, roomNumber string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM authorized_devices
		WHERE room_number = $1 AND fast_mode
	`, roomNumber).Scan(&count); err != nil {
		return 0, fmt.Errorf("count fast devices: %w", err)
	}
	return count, nil
}

// Register — идемпотентный upsert по MAC; created_at при обновлении сохраняется.
func (r *DeviceRepository) Register(ctx context.Context, d *domain.Device) error {
	if d == nil || d.MAC == "" {
		return errors.New("device is empty or mac is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO authorized_devices (
			device_mac, room_number, surname, fast_mode, last_update, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_mac) DO UPDATE SET
			room_number = EXCLUDED.room_number,
			surname = EXCLUDED.surname,
			fast_mode = EXCLUDED.fast_mode,
			last_update = EXCLUDED.last_update
	`, d.MAC, d.RoomNumber, d.Surname, d.FastMode, d.LastUpdate, d.CreatedAt); err != nil {
		return fmt.Errorf("register device: %w", err)
	}
	return nil
}

// List — постраничный список устройств, свежие сверху.
func (r *DeviceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Device, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT device_mac, room_number, surname, fast_mode, last_update, created_at
		FROM authorized_devices
		ORDER BY last_update DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var out []*domain.Device
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.MAC, &d.RoomNumber, &d.Surname, &d.FastMode, &d.LastUpdate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}
	return out, nil
}
