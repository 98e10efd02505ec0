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

// Проверка, что RoomCatalog удовлетворяет порту RoomCatalog.
var _ ports.RoomCatalog = (*RoomCatalog)(nil)

// RoomCatalog — каталог номеров на Postgres: resource id PMS <-> отображаемый номер.
type RoomCatalog struct {
	pool *pgxpool.Pool
}

// NewRoomCatalog - конструктор RoomCatalog.
func NewRoomCatalog(pool *pgxpool.Pool) *RoomCatalog { return &RoomCatalog{pool: pool} }

// NumberByID — отображаемый номер по resource id; ("", nil), если номера нет.
func (r *RoomCatalog) NumberByID(ctx context.Context, roomID string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM rooms WHERE id = $1`, roomID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("room by id: %w", err)
	}
	return name, nil
}

// IDByNumber — resource id по отображаемому номеру; ("", nil), если не найден.
func (r *RoomCatalog) IDByNumber(ctx context.Context, number string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM rooms WHERE name = $1`, number).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("room by number: %w", err)
	}
	return id, nil
}

// Upsert — вставка/обновление записи каталога по id.
func (r *RoomCatalog) Upsert(ctx context.Context, room domain.Room) error {
	if room.ID == "" || room.Name == "" {
		return errors.New("room id and name are required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO rooms (id, name, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
	`, room.ID, room.Name); err != nil {
		return fmt.Errorf("upsert room: %w", err)
	}
	return nil
}

// List — весь каталог, отсортированный по отображаемому номеру.
func (r *RoomCatalog) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM rooms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return out, nil
}
