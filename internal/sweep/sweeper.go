// Package sweep — фоновое обслуживание кэша броней: периодическая чистка
// просроченных записей и поддержание свежести полного обновления.
package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
)

// Refresher — та часть движка валидации, которая нужна фоновому циклу.
type Refresher interface {
	RefreshIfStale(ctx context.Context) error
}

// Sweeper — периодический цикл: чистка просроченных броней + прогрев кэша,
// чтобы полный fetch не попадал в латентность гостевых запросов.
type Sweeper struct {
	cache     ports.ReservationCache
	refresher Refresher
	log       ports.Logger
	interval  time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// NewSweeper — конструктор; interval <= 0 заменяется часом.
func NewSweeper(cache ports.ReservationCache, refresher Refresher, log ports.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		cache:     cache,
		refresher: refresher,
		log:       log,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Run — блокирующий цикл до отмены контекста или Close.
// Первый проход выполняем сразу, не дожидаясь первого тика.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Infof(ctx, "sweeper: context cancelled, stopping")
			return
		case <-s.done:
			s.log.Infof(ctx, "sweeper: closed, stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep — один проход: purge, затем обновление кэша при устаревании.
func (s *Sweeper) sweep(ctx context.Context) {
	today := domain.DateOnly(time.Now())

	purged, err := s.cache.PurgeExpired(ctx, today)
	if err != nil {
		s.log.Errorf(ctx, "sweeper: purge failed: %v", err)
	} else if purged > 0 {
		metrics.CacheOps.WithLabelValues("purged").Add(float64(purged))
		s.log.Infof(ctx, "sweeper: purged %d expired reservations", purged)
	}

	if s.refresher == nil {
		return
	}
	if err := s.refresher.RefreshIfStale(ctx); err != nil {
		s.log.Errorf(ctx, "sweeper: refresh failed: %v", err)
	}
}

// Close — идемпотентная остановка цикла.
func (s *Sweeper) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
