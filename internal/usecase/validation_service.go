package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// Проверка, что ValidationService удовлетворяет порту GuestValidator.
var _ ports.GuestValidator = (*ValidationService)(nil)

// DefaultBulkFetchInterval — окно доверия к последнему полному обновлению кэша.
const DefaultBulkFetchInterval = time.Hour

// ValidationService — движок валидации гостя поверх кэша броней.
// Порядок работы: проба кэша -> проверка свежести -> точечный запрос к PMS
// либо полное обновление кэша. Сбои хранилища и PMS не поднимаются наружу:
// любой неоднозначный исход — отказ (fail-closed).
type ValidationService struct {
	cache    ports.ReservationCache
	source   ports.ReservationSource
	rooms    ports.RoomCatalog
	fallback ports.FallbackProvider // nil в проде
	log      ports.Logger

	interval time.Duration
	now      func() time.Time

	// bulkGroup — схлопывание одновременных полных обновлений в одно.
	bulkGroup singleflight.Group
}

// NewValidationService — DI-конструктор. fallback допускает nil;
// interval <= 0 заменяется значением по умолчанию (1 час).
func NewValidationService(
	cache ports.ReservationCache,
	source ports.ReservationSource,
	rooms ports.RoomCatalog,
	fallback ports.FallbackProvider,
	log ports.Logger,
	interval time.Duration,
) *ValidationService {
	if interval <= 0 {
		interval = DefaultBulkFetchInterval
	}
	return &ValidationService{
		cache:    cache,
		source:   source,
		rooms:    rooms,
		fallback: fallback,
		log:      log,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock — подмена источника времени (для тестов).
func (s *ValidationService) WithClock(now func() time.Time) *ValidationService {
	s.now = now
	return s
}

// Validate — проверка гостя по (roomID, фамилия). Результат всегда non-nil.
// roomNumber — отображаемый номер, уже разрешённый вызывающей стороной;
// используется для fallback'а и записей без каталога.
func (s *ValidationService) Validate(ctx context.Context, roomID, roomNumber, surname string) *domain.ValidationResult {
	norm := domain.NormalizeSurname(surname)
	if roomID == "" || norm == "" {
		return domain.NotFound()
	}

	now := s.now()
	today := domain.DateOnly(now)

	// 1) Проба кэша — горячий путь, ноль обращений к PMS.
	cached, err := s.cache.FindFresh(ctx, roomID, norm, today)
	if err != nil {
		// Сбой хранилища = промах; идём дальше по обычной схеме.
		metrics.CacheOps.WithLabelValues("store_error").Inc()
		s.log.Warnf(ctx, "cache probe failed room_id=%s: %v", roomID, err)
	}
	if cached != nil {
		metrics.CacheOps.WithLabelValues("hit").Inc()
		s.log.Infof(ctx, "cache hit room=%s surname=%s", cached.RoomNumber, norm)
		return resultFrom(cached, true)
	}
	metrics.CacheOps.WithLabelValues("miss").Inc()

	// 2) Возраст последнего полного обновления; ошибка чтения = "никогда не обновлялись".
	last, err := s.cache.LastBulkFetch(ctx)
	if err != nil {
		s.log.Warnf(ctx, "last bulk fetch read failed: %v", err)
		last = time.Time{}
	}

	// 3) Свежий кэш: гостя в нём действительно нет — точечный запрос без
	//    полного обновления. Иначе — полное обновление и повторная проба.
	if now.Sub(last) < s.interval {
		s.log.Infof(ctx, "cache miss within freshness window (age=%s), targeted lookup room_id=%s",
			now.Sub(last).Round(time.Second), roomID)
		return s.targetedLookup(ctx, roomID, roomNumber, norm, today)
	}

	s.log.Infof(ctx, "bulk refresh required (last fetch: %s)", last.Format(time.RFC3339))
	return s.refreshAndProbe(ctx, roomID, norm, roomNumber, now, today)
}

// targetedLookup — попытка подтвердить одного гостя без полного обновления.
// У PMS нет точечного запроса по гостю, так что это выборка текущего дня
// с клиентским отбором по resource id и фамилии.
func (s *ValidationService) targetedLookup(ctx context.Context, roomID, roomNumber, norm string, today time.Time) *domain.ValidationResult {
	raws, err := s.source.FetchOverlapping(ctx, today, today.Add(24*time.Hour))
	if err != nil {
		s.log.Errorf(ctx, "targeted lookup failed room_id=%s: %v", roomID, err)
		return s.denyOrFallback(ctx, roomNumber, norm)
	}

	for i := range raws {
		raw := &raws[i]
		if raw.ResourceID != roomID {
			continue
		}
		name, err := s.source.CustomerSurname(ctx, raw.CustomerID)
		if err != nil {
			s.log.Warnf(ctx, "customer lookup failed customer_id=%s: %v", raw.CustomerID, err)
			continue
		}
		if domain.NormalizeSurname(name) != norm {
			continue
		}

		rec := s.normalizeRaw(ctx, raw, name, roomNumber)
		// Результат подтверждён PMS — ошибка записи в кэш не повод отказывать.
		if upErr := s.cache.Upsert(ctx, rec); upErr != nil {
			metrics.CacheOps.WithLabelValues("upsert_error").Inc()
			s.log.Warnf(ctx, "cache upsert failed reservation=%s: %v", rec.ReservationID, upErr)
		}
		return resultFrom(rec, false)
	}

	return domain.NotFound()
}

// refreshAndProbe — полное обновление кэша и повторная проба.
// Одновременные срабатывания схлопываются: fetch делает один вызов,
// остальные ждут его завершения и перечитывают кэш.
func (s *ValidationService) refreshAndProbe(ctx context.Context, roomID, norm, roomNumber string, now, today time.Time) *domain.ValidationResult {
	_, err, _ := s.bulkGroup.Do("bulk-refresh", func() (any, error) {
		return nil, s.bulkRefresh(ctx, now, today)
	})
	if err != nil {
		metrics.BulkRefreshes.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "bulk refresh failed: %v", err)
		return s.denyOrFallback(ctx, roomNumber, norm)
	}

	cached, err := s.cache.FindFresh(ctx, roomID, norm, today)
	if err != nil {
		metrics.CacheOps.WithLabelValues("store_error").Inc()
		s.log.Warnf(ctx, "post-refresh probe failed room_id=%s: %v", roomID, err)
		return domain.NotFound()
	}
	if cached == nil {
		s.log.Infof(ctx, "guest not found after bulk refresh room_id=%s surname=%s", roomID, norm)
		return domain.NotFound()
	}
	// Данные пришли от PMS в рамках этого же запроса — источник live, не кэш.
	return resultFrom(cached, false)
}

// bulkRefresh — выборка всех броней текущего дня, нормализация и запись в кэш,
// затем фиксация момента обновления.
func (s *ValidationService) bulkRefresh(ctx context.Context, now, today time.Time) error {
	start := time.Now()

	raws, err := s.source.FetchOverlapping(ctx, today, today.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("bulk fetch: %w", err)
	}

	cached := 0
	for i := range raws {
		raw := &raws[i]
		surname, err := s.source.CustomerSurname(ctx, raw.CustomerID)
		if err != nil || surname == "" {
			// Запись не бросаем: фамилия-sentinel, как и номер без каталога.
			s.log.Warnf(ctx, "customer lookup failed reservation=%s customer_id=%s: %v", raw.ID, raw.CustomerID, err)
			surname = "Unknown"
		}

		rec := s.normalizeRaw(ctx, raw, surname, "")
		if upErr := s.cache.Upsert(ctx, rec); upErr != nil {
			metrics.CacheOps.WithLabelValues("upsert_error").Inc()
			s.log.Warnf(ctx, "cache upsert failed reservation=%s: %v", rec.ReservationID, upErr)
			continue
		}
		cached++
	}

	if err := s.cache.SetLastBulkFetch(ctx, now); err != nil {
		// Обновление состоялось, просто следующий miss случится раньше времени.
		s.log.Warnf(ctx, "set last bulk fetch failed: %v", err)
	}

	metrics.BulkRefreshes.WithLabelValues("ok").Inc()
	metrics.BulkRefreshDuration.Observe(time.Since(start).Seconds())
	s.log.Infof(ctx, "bulk refresh complete: %d/%d reservations cached in %s", cached, len(raws), time.Since(start))
	return nil
}

// normalizeRaw — нормализация записи PMS перед кэшированием: resource id
// превращается в отображаемый номер через каталог; номер без каталога
// кэшируем с sentinel-значением, чтобы не потерять гостя.
func (s *ValidationService) normalizeRaw(ctx context.Context, raw *domain.ReservationRaw, surname, knownNumber string) *domain.CachedReservation {
	number, err := s.rooms.NumberByID(ctx, raw.ResourceID)
	if err != nil {
		s.log.Warnf(ctx, "room catalog lookup failed room_id=%s: %v", raw.ResourceID, err)
		number = ""
	}
	if number == "" {
		number = knownNumber
	}
	if number == "" {
		number = domain.UnknownRoomNumber
	}

	return &domain.CachedReservation{
		ReservationID: raw.ID,
		RoomID:        raw.ResourceID,
		RoomNumber:    number,
		Surname:       domain.NormalizeSurname(surname),
		CheckIn:       domain.DateOnly(raw.StartUTC),
		CheckOut:      domain.DateOnly(raw.EndUTC),
		CustomerID:    raw.CustomerID,
		UpdatedAt:     s.now(),
	}
}

// denyOrFallback — отказ при недоступном PMS; статический набор данных
// спрашиваем только если он внедрён (непродакшен-окружения).
func (s *ValidationService) denyOrFallback(ctx context.Context, roomNumber, norm string) *domain.ValidationResult {
	if s.fallback == nil {
		return domain.NotFound()
	}
	if res, ok := s.fallback.Lookup(roomNumber, norm); ok {
		s.log.Warnf(ctx, "upstream unavailable, serving offline fallback room=%s", roomNumber)
		return res
	}
	return domain.NotFound()
}

// RefreshIfStale — принудительное обновление кэша, если окно свежести истекло.
// Используется фоновым прогревом, чтобы вынести полный fetch из латентности запросов.
func (s *ValidationService) RefreshIfStale(ctx context.Context) error {
	now := s.now()

	last, err := s.cache.LastBulkFetch(ctx)
	if err != nil {
		s.log.Warnf(ctx, "last bulk fetch read failed: %v", err)
		last = time.Time{}
	}
	if now.Sub(last) < s.interval {
		return nil
	}

	_, err, _ = s.bulkGroup.Do("bulk-refresh", func() (any, error) {
		return nil, s.bulkRefresh(ctx, now, domain.DateOnly(now))
	})
	if err != nil {
		metrics.BulkRefreshes.WithLabelValues("error").Inc()
	}
	return err
}

// TodaysReservations — брони текущего дня напрямую из PMS (для админ-интерфейса),
// кэш не трогаем.
func (s *ValidationService) TodaysReservations(ctx context.Context) ([]*domain.CachedReservation, error) {
	today := domain.DateOnly(s.now())

	raws, err := s.source.FetchOverlapping(ctx, today, today.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("fetch today's reservations: %w", err)
	}

	out := make([]*domain.CachedReservation, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		surname, err := s.source.CustomerSurname(ctx, raw.CustomerID)
		if err != nil || surname == "" {
			surname = "Unknown"
		}
		out = append(out, s.normalizeRaw(ctx, raw, surname, ""))
	}
	return out, nil
}

// resultFrom — сборка ответа из кэшированной записи.
func resultFrom(r *domain.CachedReservation, fromCache bool) *domain.ValidationResult {
	return &domain.ValidationResult{
		Valid:         true,
		RoomNumber:    r.RoomNumber,
		RoomID:        r.RoomID,
		GuestSurname:  r.Surname,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		ReservationID: r.ReservationID,
		CustomerID:    r.CustomerID,
		FromCache:     fromCache,
	}
}
