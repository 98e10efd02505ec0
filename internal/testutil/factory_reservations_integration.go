//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной кэшированной брони: заезд вчера, выезд завтра.
func MakeReservation(opts ...func(*domain.CachedReservation)) domain.CachedReservation {
	now := time.Now().UTC().Truncate(time.Second)
	today := domain.DateOnly(now)

	r := domain.CachedReservation{
		ReservationID: "res-" + UniqSuffix(),
		RoomID:        "room-" + UniqSuffix(),
		RoomNumber:    "101",
		Surname:       "smith",
		CheckIn:       today.AddDate(0, 0, -1),
		CheckOut:      today.AddDate(0, 0, 1),
		CustomerID:    "cust-" + UniqSuffix(),
		UpdatedAt:     now,
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithRoom(roomID, roomNumber string) func(*domain.CachedReservation) {
	return func(r *domain.CachedReservation) {
		r.RoomID = roomID
		r.RoomNumber = roomNumber
	}
}

func WithSurname(surname string) func(*domain.CachedReservation) {
	return func(r *domain.CachedReservation) { r.Surname = surname }
}

// Выезд в прошлом — запись под чистку.
func Expired() func(*domain.CachedReservation) {
	return func(r *domain.CachedReservation) {
		today := domain.DateOnly(time.Now().UTC())
		r.CheckIn = today.AddDate(0, 0, -5)
		r.CheckOut = today.AddDate(0, 0, -2)
	}
}

// Мини-генератор устройства гостя.
func MakeDevice(opts ...func(*domain.Device)) domain.Device {
	now := time.Now().UTC().Truncate(time.Second)

	d := domain.Device{
		MAC:        "AA:BB:CC:" + randHex(1) + ":" + randHex(1) + ":" + randHex(1),
		RoomNumber: "101",
		Surname:    "smith",
		FastMode:   false,
		LastUpdate: now,
		CreatedAt:  now,
	}

	for _, fn := range opts {
		fn(&d)
	}
	return d
}

func WithFastMode() func(*domain.Device) {
	return func(d *domain.Device) { d.FastMode = true }
}

func WithDeviceRoom(roomNumber string) func(*domain.Device) {
	return func(d *domain.Device) { d.RoomNumber = roomNumber }
}
