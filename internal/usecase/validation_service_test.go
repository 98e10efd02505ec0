package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports/mocks"
	"github.com/Gunvolt24/moa_wifi/internal/usecase"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// Фиксированное "сейчас" для всех тестов движка.
var (
	testNow   = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	testToday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	dayEnd    = testToday.Add(24 * time.Hour)
)

const (
	roomID     = "room-1"
	roomNumber = "101"
	surname    = "smith"
	customerID = "cust-1"
)

type engineMocks struct {
	cache    *mocks.MockReservationCache
	source   *mocks.MockReservationSource
	rooms    *mocks.MockRoomCatalog
	fallback *mocks.MockFallbackProvider
}

func newEngine(t *testing.T, withFallback bool) (*usecase.ValidationService, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := engineMocks{
		cache:  mocks.NewMockReservationCache(ctrl),
		source: mocks.NewMockReservationSource(ctrl),
		rooms:  mocks.NewMockRoomCatalog(ctrl),
	}

	var fb *mocks.MockFallbackProvider
	if withFallback {
		fb = mocks.NewMockFallbackProvider(ctrl)
		m.fallback = fb
	}

	var svc *usecase.ValidationService
	if withFallback {
		svc = usecase.NewValidationService(m.cache, m.source, m.rooms, fb, noopLogger{}, time.Hour)
	} else {
		svc = usecase.NewValidationService(m.cache, m.source, m.rooms, nil, noopLogger{}, time.Hour)
	}
	svc.WithClock(func() time.Time { return testNow })
	return svc, m
}

func cachedRec() *domain.CachedReservation {
	return &domain.CachedReservation{
		ReservationID: "res-1",
		RoomID:        roomID,
		RoomNumber:    roomNumber,
		Surname:       surname,
		CheckIn:       testToday.AddDate(0, 0, -1),
		CheckOut:      testToday.AddDate(0, 0, 2),
		CustomerID:    customerID,
		UpdatedAt:     testNow.Add(-10 * time.Minute),
	}
}

func rawRec() domain.ReservationRaw {
	return domain.ReservationRaw{
		ID:         "res-1",
		ResourceID: roomID,
		CustomerID: customerID,
		StartUTC:   testToday.AddDate(0, 0, -1),
		EndUTC:     testToday.AddDate(0, 0, 2),
		State:      "Started",
	}
}

// Попадание в кэш: ноль обращений к PMS, from_cache=true.
func TestValidate_CacheHit(t *testing.T) {
	svc, m := newEngine(t, false)

	m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(cachedRec(), nil)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid || !res.FromCache {
		t.Fatalf("expected valid cache hit, got %+v", res)
	}
	if res.RoomNumber != roomNumber || res.GuestSurname != surname {
		t.Fatalf("unexpected result fields: %+v", res)
	}
}

// Фамилия нормализуется до пробы кэша: регистр и пробелы не влияют.
func TestValidate_SurnameNormalized(t *testing.T) {
	svc, m := newEngine(t, false)

	m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(cachedRec(), nil)

	res := svc.Validate(context.Background(), roomID, roomNumber, "  SMITH ")
	if !res.Valid {
		t.Fatalf("expected valid result for unnormalized input, got %+v", res)
	}
}

// Пустые входы отклоняются без обращений к кэшу и PMS.
func TestValidate_EmptyInputs(t *testing.T) {
	svc, _ := newEngine(t, false)

	if res := svc.Validate(context.Background(), "", roomNumber, surname); res.Valid {
		t.Fatalf("expected denial for empty room id")
	}
	if res := svc.Validate(context.Background(), roomID, roomNumber, "   "); res.Valid {
		t.Fatalf("expected denial for blank surname")
	}
}

// Промах при свежем кэше: точечный запрос, upsert, from_cache=false;
// полного обновления нет (SetLastBulkFetch не вызывается).
func TestValidate_FreshMiss_TargetedLookup(t *testing.T) {
	svc, m := newEngine(t, false)

	other := domain.ReservationRaw{
		ID: "res-2", ResourceID: "room-2", CustomerID: "cust-2",
		StartUTC: testToday, EndUTC: dayEnd, State: "Confirmed",
	}

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-30*time.Minute), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{other, rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid || res.FromCache {
		t.Fatalf("expected valid live result, got %+v", res)
	}
	if res.ReservationID != "res-1" {
		t.Fatalf("unexpected reservation id: %+v", res)
	}
}

// Промах при свежем кэше и нет совпадения в PMS: отказ без записи в кэш.
func TestValidate_FreshMiss_NotFound(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-5*time.Minute), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return(nil, nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if res.Valid {
		t.Fatalf("expected denial, got %+v", res)
	}
}

// Промах при устаревшем кэше: полное обновление, фиксация момента,
// повторная проба; результат валиден, но from_cache=false — данные
// получены от PMS в рамках этого же запроса.
func TestValidate_StaleMiss_BulkRefreshThenHit(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-2*time.Hour), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		m.cache.EXPECT().SetLastBulkFetch(gomock.Any(), testNow).Return(nil),
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(cachedRec(), nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid {
		t.Fatalf("expected valid result after bulk refresh, got %+v", res)
	}
	if res.FromCache {
		t.Fatalf("bulk refresh path must report live sourcing, got %+v", res)
	}
}

// После полного обновления гостя всё ещё нет: отказ, второго точечного
// запроса к PMS не делаем.
func TestValidate_StaleMiss_BulkRefreshThenStillMiss(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(time.Time{}, nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return(nil, nil),
		m.cache.EXPECT().SetLastBulkFetch(gomock.Any(), testNow).Return(nil),
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if res.Valid {
		t.Fatalf("expected denial after refresh, got %+v", res)
	}
}

// Запись PMS без номера в каталоге кэшируется с sentinel-номером,
// а не отбрасывается.
func TestValidate_BulkRefresh_UnknownRoomSentinel(t *testing.T) {
	svc, m := newEngine(t, false)

	var stored *domain.CachedReservation

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(time.Time{}, nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return("", nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, r *domain.CachedReservation) { stored = r }).
			Return(nil),
		m.cache.EXPECT().SetLastBulkFetch(gomock.Any(), testNow).Return(nil),
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
	)

	svc.Validate(context.Background(), roomID, roomNumber, surname)

	if stored == nil || stored.RoomNumber != domain.UnknownRoomNumber {
		t.Fatalf("expected sentinel room number, got %+v", stored)
	}
}

// Сбой PMS при устаревшем кэше без fallback'а: отказ (fail-closed).
func TestValidate_UpstreamDown_FailClosed(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(time.Time{}, nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return(nil, errors.New("pms: 503")),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if res.Valid {
		t.Fatalf("expected fail-closed denial, got %+v", res)
	}
}

// Сбой PMS с внедрённым офлайн-набором: ответ из fallback'а.
func TestValidate_UpstreamDown_FallbackServes(t *testing.T) {
	svc, m := newEngine(t, true)

	fbResult := &domain.ValidationResult{
		Valid: true, RoomNumber: roomNumber, GuestSurname: surname,
	}

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(time.Time{}, nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return(nil, errors.New("pms: timeout")),
		m.fallback.EXPECT().Lookup(roomNumber, surname).Return(fbResult, true),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid {
		t.Fatalf("expected fallback result, got %+v", res)
	}
}

// Ошибка пробы кэша трактуется как промах: обычный путь продолжается.
func TestValidate_CacheProbeError_TreatedAsMiss(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, errors.New("db down")),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-time.Minute), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid {
		t.Fatalf("expected valid result despite probe error, got %+v", res)
	}
}

// Ошибка чтения момента обновления = "никогда": принудительный bulk.
func TestValidate_LastBulkFetchError_ForcesBulk(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(time.Time{}, errors.New("db down")),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return(nil, nil),
		m.cache.EXPECT().SetLastBulkFetch(gomock.Any(), testNow).Return(nil),
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if res.Valid {
		t.Fatalf("expected denial, got %+v", res)
	}
}

// Ошибка записи в кэш не отменяет подтверждённый PMS результат.
func TestValidate_UpsertErrorDoesNotDeny(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().FindFresh(gomock.Any(), roomID, surname, testToday).Return(nil, nil),
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-time.Minute), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
	)

	res := svc.Validate(context.Background(), roomID, roomNumber, surname)
	if !res.Valid {
		t.Fatalf("expected valid result despite upsert error, got %+v", res)
	}
}

// RefreshIfStale при свежем кэше ничего не делает.
func TestRefreshIfStale_FreshNoop(t *testing.T) {
	svc, m := newEngine(t, false)

	m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-5*time.Minute), nil)

	if err := svc.RefreshIfStale(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// RefreshIfStale при устаревшем кэше выполняет полное обновление.
func TestRefreshIfStale_StaleRefreshes(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.cache.EXPECT().LastBulkFetch(gomock.Any()).Return(testNow.Add(-3*time.Hour), nil),
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		m.cache.EXPECT().SetLastBulkFetch(gomock.Any(), testNow).Return(nil),
	)

	if err := svc.RefreshIfStale(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TodaysReservations — прямое чтение из PMS без записи в кэш.
func TestTodaysReservations(t *testing.T) {
	svc, m := newEngine(t, false)

	gomock.InOrder(
		m.source.EXPECT().FetchOverlapping(gomock.Any(), testToday, dayEnd).Return([]domain.ReservationRaw{rawRec()}, nil),
		m.source.EXPECT().CustomerSurname(gomock.Any(), customerID).Return("Smith", nil),
		m.rooms.EXPECT().NumberByID(gomock.Any(), roomID).Return(roomNumber, nil),
	)

	got, err := svc.TodaysReservations(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %v err=%v", got, err)
	}
	if got[0].Surname != surname || got[0].RoomNumber != roomNumber {
		t.Fatalf("unexpected reservation: %+v", got[0])
	}
}
