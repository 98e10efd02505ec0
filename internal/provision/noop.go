// Package provision — выдача доступа на сетевом оборудовании.
// Сейчас hotspot сам открывает доступ после ответа портала, поэтому
// боевая реализация — логирующий no-op; интеграция с API роутера
// подключается отдельной реализацией порта.
package provision

import (
	"context"

	"github.com/Gunvolt24/moa_wifi/internal/ports"
)

// Проверка, что NoopProvisioner удовлетворяет порту Provisioner.
var _ ports.Provisioner = (*NoopProvisioner)(nil)

// NoopProvisioner — фиксирует выдачу/отзыв доступа только в логе.
type NoopProvisioner struct {
	log ports.Logger
}

// NewNoopProvisioner - конструктор NoopProvisioner.
func NewNoopProvisioner(log ports.Logger) *NoopProvisioner {
	return &NoopProvisioner{log: log}
}

// Grant — логирует выдачу доступа.
func (p *NoopProvisioner) Grant(ctx context.Context, mac, profile string) error {
	p.log.Infof(ctx, "provision: grant mac=%s profile=%s", mac, profile)
	return nil
}

// Revoke — логирует отзыв доступа.
func (p *NoopProvisioner) Revoke(ctx context.Context, mac string) error {
	p.log.Infof(ctx, "provision: revoke mac=%s", mac)
	return nil
}
