package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что HousekeepingStore удовлетворяет порту HousekeepingStore.
var _ ports.HousekeepingStore = (*HousekeepingStore)(nil)

// HousekeepingStore — пометки "не убирать номер" и сводка по номерам на Postgres.
type HousekeepingStore struct {
	pool *pgxpool.Pool
}

// NewHousekeepingStore - конструктор HousekeepingStore.
func NewHousekeepingStore(pool *pgxpool.Pool) *HousekeepingStore {
	return &HousekeepingStore{pool: pool}
}

// SetSkipClean — выставить/снять пометку пропуска уборки для номера.
func (r *HousekeepingStore) SetSkipClean(ctx context.Context, roomNumber, surname string, skip bool) error {
	if roomNumber == "" {
		return errors.New("room number is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO rooms_to_skip (room_number, guest_surname, skip_clean, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (room_number) DO UPDATE SET
			guest_surname = EXCLUDED.guest_surname,
			skip_clean = EXCLUDED.skip_clean,
			updated_at = EXCLUDED.updated_at
	`, roomNumber, surname, skip); err != nil {
		return fmt.Errorf("set skip clean: %w", err)
	}
	return nil
}

// RoomsOverview — сводка: пометки уборки, счётчики устройств по номерам,
// наличие живой брони в кэше.
func (r *HousekeepingStore) RoomsOverview(ctx context.Context) ([]*domain.RoomOverview, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.room_number,
		       s.guest_surname,
		       s.skip_clean,
		       s.updated_at,
		       count(d.device_mac),
		       count(d.device_mac) FILTER (WHERE d.fast_mode),
		       EXISTS (
		           SELECT 1 FROM cached_reservations cr
		           WHERE cr.room_number = s.room_number
		             AND cr.check_out >= CURRENT_DATE
		       )
		FROM rooms_to_skip s
		LEFT JOIN authorized_devices d ON d.room_number = s.room_number
		GROUP BY s.room_number, s.guest_surname, s.skip_clean, s.updated_at
		ORDER BY s.room_number
	`)
	if err != nil {
		return nil, fmt.Errorf("rooms overview: %w", err)
	}
	defer rows.Close()

	var out []*domain.RoomOverview
	for rows.Next() {
		var o domain.RoomOverview
		if err := rows.Scan(
			&o.RoomNumber, &o.GuestSurname, &o.SkipClean, &o.UpdatedAt,
			&o.DeviceCount, &o.FastDeviceCount, &o.HasActiveReservation,
		); err != nil {
			return nil, fmt.Errorf("scan room overview: %w", err)
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms overview: %w", err)
	}
	return out, nil
}
