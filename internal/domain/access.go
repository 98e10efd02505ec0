package domain

import "time"

// Room — запись каталога номеров: resource id PMS -> отображаемый номер.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Device — устройство гостя, зарегистрированное на портале.
type Device struct {
	MAC        string    `json:"device_mac"`
	RoomNumber string    `json:"room_number"`
	Surname    string    `json:"surname"`
	FastMode   bool      `json:"fast_mode"`
	LastUpdate time.Time `json:"last_update"`
	CreatedAt  time.Time `json:"created_at"`
}

// AccessRequest — данные формы hotspot-портала.
type AccessRequest struct {
	MAC        string
	RoomNumber string
	Surname    string
	FastMode   bool
}

// AccessGrant — итог успешной авторизации: что выдали устройству.
type AccessGrant struct {
	Device      Device            `json:"device"`
	Profile     string            `json:"profile"` // normal | fast
	Reservation *ValidationResult `json:"reservation"`
}

// RoomOverview — сводка по номеру для админ-интерфейса.
type RoomOverview struct {
	RoomNumber           string    `json:"room_number"`
	GuestSurname         string    `json:"guest_surname"`
	SkipClean            bool      `json:"skip_clean"`
	UpdatedAt            time.Time `json:"updated_at"`
	DeviceCount          int       `json:"device_count"`
	FastDeviceCount      int       `json:"fast_device_count"`
	HasActiveReservation bool      `json:"has_active_reservation"`
}

// CacheStats — статистика кэша броней для отладки.
type CacheStats struct {
	Rows          int64     `json:"rows"`
	ExpiredRows   int64     `json:"expired_rows"`
	LastBulkFetch time.Time `json:"last_bulk_fetch"`
}
