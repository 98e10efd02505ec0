package ports

import "github.com/Gunvolt24/moa_wifi/internal/domain"

// FallbackProvider — статический набор данных на случай недоступности PMS.
// Внедряется только в непродакшен-окружениях; в проде движок получает nil
// и любой сбой upstream'а приводит к отказу (fail-closed).
type FallbackProvider interface {
	// Lookup — (результат, true) при совпадении комнаты и фамилии, иначе (nil, false).
	Lookup(roomNumber, surname string) (*domain.ValidationResult, bool)
}
