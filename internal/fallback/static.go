// Package fallback — статический набор "комната -> фамилии" на случай
// недоступности PMS. Используется только в непродакшен-окружениях:
// в проде движок валидации получает nil и отказывает при сбое upstream'а.
package fallback

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
)

// Проверка, что StaticProvider удовлетворяет порту FallbackProvider.
var _ ports.FallbackProvider = (*StaticProvider)(nil)

// StaticProvider — неизменяемый после создания словарь комната -> фамилии.
type StaticProvider struct {
	guests map[string][]string
	now    func() time.Time
}

// NewStaticProvider — конструктор по готовому словарю.
func NewStaticProvider(guests map[string][]string) *StaticProvider {
	return &StaticProvider{guests: guests, now: time.Now}
}

// NewFromFile — загрузка словаря из JSON-файла вида {"101": ["Schmidt", ...]}.
func NewFromFile(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback file: %w", err)
	}
	var guests map[string][]string
	if err := json.Unmarshal(data, &guests); err != nil {
		return nil, fmt.Errorf("parse fallback file: %w", err)
	}
	return NewStaticProvider(guests), nil
}

// DefaultDemoData — демо-набор для стендов без доступа к PMS.
func DefaultDemoData() map[string][]string {
	return map[string][]string{
		"101": {"Schmidt", "Mueller", "Johnson"},
		"102": {"Weber", "Fischer", "Brown"},
		"103": {"Becker", "Wagner", "Davis"},
		"201": {"Schulz", "Hoffmann", "Wilson"},
		"202": {"Koch", "Richter", "Miller"},
		"203": {"Neumann", "Klein", "Taylor"},
		"301": {"Wolf", "Schroeder", "Anderson"},
		"302": {"Zimmermann", "Braun", "Thomas"},
		"303": {"Krueger", "Hofmann", "Jackson"},
		"401": {"Hartmann", "Lange", "White"},
	}
}

// Lookup — (результат, true) при совпадении комнаты и фамилии (без учёта регистра).
func (p *StaticProvider) Lookup(roomNumber, surname string) (*domain.ValidationResult, bool) {
	norm := domain.NormalizeSurname(surname)
	for _, candidate := range p.guests[roomNumber] {
		if domain.NormalizeSurname(candidate) != norm {
			continue
		}
		today := domain.DateOnly(p.now())
		return &domain.ValidationResult{
			Valid:         true,
			RoomNumber:    roomNumber,
			RoomID:        "FALLBACK_ROOM_ID_" + roomNumber,
			GuestSurname:  norm,
			CheckIn:       today,
			CheckOut:      today.AddDate(0, 0, 3),
			ReservationID: fmt.Sprintf("FALLBACK_%s_%d", roomNumber, p.now().Unix()),
			CustomerID:    "TEST_CUSTOMER_" + roomNumber,
			FromCache:     false,
		}, true
	}
	return nil, false
}
