package ports

import "context"

// Provisioner — выдача доступа на сетевом устройстве (роутере).
// Детали протокола (RouterOS и т.п.) — за пределами этого сервиса.
type Provisioner interface {
	// Grant — открыть доступ устройству с указанным профилем скорости.
	Grant(ctx context.Context, mac, profile string) error

	// Revoke — отозвать доступ устройства.
	Revoke(ctx context.Context, mac string) error
}
