package domain

import (
	"strings"
	"time"
)

// CachedReservation — одна запись кэша: окно проживания гостя,
// каким оно было известно на момент последнего обновления.
// Ключ поиска — (RoomID, Surname), уникальность гарантирует ReservationID.
type CachedReservation struct {
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	Surname       string    `json:"surname"` // нормализованная фамилия (lower + trim)
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	CustomerID    string    `json:"customer_id"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservationRaw — запись брони, как её отдаёт PMS (до нормализации).
type ReservationRaw struct {
	ID         string
	ResourceID string // идентификатор номера в PMS (resource id)
	CustomerID string
	StartUTC   time.Time
	EndUTC     time.Time
	State      string
}

// ValidationResult — ответ движка валидации порталу.
// Valid=false означает отказ; причина наружу не раскрывается.
type ValidationResult struct {
	Valid         bool      `json:"valid"`
	RoomNumber    string    `json:"room_number,omitempty"`
	RoomID        string    `json:"room_id,omitempty"`
	GuestSurname  string    `json:"guest_surname,omitempty"`
	CheckIn       time.Time `json:"check_in,omitempty"`
	CheckOut      time.Time `json:"check_out,omitempty"`
	ReservationID string    `json:"reservation_id,omitempty"`
	CustomerID    string    `json:"customer_id,omitempty"`
	FromCache     bool      `json:"from_cache"`
}

// NotFound — отрицательный результат валидации.
func NotFound() *ValidationResult { return &ValidationResult{Valid: false} }

// UnknownRoomNumber — sentinel для броней, чей resource id ещё не попал
// в каталог номеров (отставание синхронизации — не повод терять гостя).
const UnknownRoomNumber = "Unknown"

// NormalizeSurname — ключ поиска по фамилии: нижний регистр, без пробелов по краям.
func NormalizeSurname(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DateOnly — усечение до календарной даты (UTC), сравнение окон
// проживания ведём только по датам.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
