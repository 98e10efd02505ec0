package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ReservationCache удовлетворяет порту ReservationCache.
var _ ports.ReservationCache = (*ReservationCache)(nil)

// lastBulkFetchKey — ключ скаляра "последний bulk fetch" в system_settings.
const lastBulkFetchKey = "last_bulk_fetch"

// ReservationCache — персистентный кэш броней на Postgres (pgxpool).
type ReservationCache struct {
	pool *pgxpool.Pool
}

// NewReservationCache - конструктор ReservationCache.
func NewReservationCache(pool *pgxpool.Pool) *ReservationCache { return &ReservationCache{pool: pool} }

// FindFresh — непросроченная запись по (roomID, фамилия).
// Фильтр check_out >= today выполняется в запросе; при нескольких записях
// одной пары берём самую свежую.
func (r *ReservationCache) FindFresh(ctx context.Context, roomID, surname string, today time.Time) (*domain.CachedReservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT reservation_id, room_id, room_number, guest_surname,
		       check_in, check_out, customer_id, updated_at
		FROM cached_reservations
		WHERE room_id = $1 AND guest_surname = $2 AND check_out >= $3
		ORDER BY updated_at DESC
		LIMIT 1
	`, roomID, surname, today)

	var rec domain.CachedReservation
	if err := row.Scan(
		&rec.ReservationID, &rec.RoomID, &rec.RoomNumber, &rec.Surname,
		&rec.CheckIn, &rec.CheckOut, &rec.CustomerID, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find fresh reservation: %w", err)
	}
	return &rec, nil
}

// Upsert — вставка/обновление по reservation_id (PRIMARY KEY).
func (r *ReservationCache) Upsert(ctx context.Context, rec *domain.CachedReservation) error {
	if rec == nil || rec.ReservationID == "" {
		return errors.New("reservation is empty or reservation_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cached_reservations (
			reservation_id, room_id, room_number, guest_surname,
			check_in, check_out, customer_id, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (reservation_id) DO UPDATE SET
			room_id = EXCLUDED.room_id,
			room_number = EXCLUDED.room_number,
			guest_surname = EXCLUDED.guest_surname,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			customer_id = EXCLUDED.customer_id,
			updated_at = EXCLUDED.updated_at
	`,
		rec.ReservationID, rec.RoomID, rec.RoomNumber, rec.Surname,
		rec.CheckIn, rec.CheckOut, rec.CustomerID, rec.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert reservation: %w", err)
	}
	return nil
}

// LastBulkFetch — момент последнего полного обновления; нулевое время, если записи нет.
func (r *ReservationCache) LastBulkFetch(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT setting_value::timestamptz
		FROM system_settings
		WHERE setting_key = $1
	`, lastBulkFetchKey).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read last bulk fetch: %w", err)
	}
	return t, nil
}

// SetLastBulkFetch — фиксация момента успешного полного обновления.
func (r *ReservationCache) SetLastBulkFetch(ctx context.Context, t time.Time) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO system_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			updated_at = EXCLUDED.updated_at
	`, lastBulkFetchKey, t.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("set last bulk fetch: %w", err)
	}
	return nil
}

// PurgeExpired — удаление записей с истёкшим check-out.
func (r *ReservationCache) PurgeExpired(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM cached_reservations WHERE check_out < $1
	`, today)
	if err != nil {
		return 0, fmt.Errorf("purge expired reservations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Stats — размер кэша и число просроченных записей одним запросом.
func (r *ReservationCache) Stats(ctx context.Context) (*domain.CacheStats, error) {
	var stats domain.CacheStats
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE check_out < CURRENT_DATE)
		FROM cached_reservations
	`).Scan(&stats.Rows, &stats.ExpiredRows); err != nil {
		return nil, fmt.Errorf("cache stats: %w", err)
	}

	last, err := r.LastBulkFetch(ctx)
	if err != nil {
		return nil, err
	}
	stats.LastBulkFetch = last
	return &stats, nil
}
