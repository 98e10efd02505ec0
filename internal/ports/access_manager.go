package ports

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

// AccessManager — сценарий входа на портале: валидация, лимиты, регистрация,
// выдача доступа. Ошибки доменного уровня — sentinel'ы из usecase.
type AccessManager interface {
	Authenticate(ctx context.Context, req domain.AccessRequest) (*domain.AccessGrant, error)
}
