package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
)

// Доменные ошибки авторизации. Наружу портал отдаёт обобщённый отказ,
// детали остаются в логах.
var (
	ErrBadRequest  = errors.New("room number and surname are required")
	ErrUnknownRoom = errors.New("room is not in the catalog")
	ErrNotAGuest   = errors.New("no matching reservation")
)

// Проверка, что AccessService удовлетворяет порту AccessManager.
var _ ports.AccessManager = (*AccessService)(nil)

// AccessService — сценарий входа на портале: разрешение номера, валидация
// гостя, лимит быстрых устройств, регистрация и выдача доступа.
type AccessService struct {
	validator    ports.GuestValidator
	rooms        ports.RoomCatalog
	devices      ports.DeviceRepository
	housekeeping ports.HousekeepingStore
	provisioner  ports.Provisioner
	log          ports.Logger

	maxFastPerRoom   int
	normalProfile    string
	fastProfile      string
	skipCleanForFast bool

	now func() time.Time
}

// AccessPolicy — настройки выдачи доступа.
type AccessPolicy struct {
	MaxFastDevicesPerRoom int
	NormalProfile         string
	FastProfile           string
	SkipCleanForFast      bool
}

// NewAccessService — DI-конструктор.
func NewAccessService(
	validator ports.GuestValidator,
	rooms ports.RoomCatalog,
	devices ports.DeviceRepository,
	housekeeping ports.HousekeepingStore,
	provisioner ports.Provisioner,
	log ports.Logger,
	policy AccessPolicy,
) *AccessService {
	if policy.MaxFastDevicesPerRoom <= 0 {
		policy.MaxFastDevicesPerRoom = 3
	}
	return &AccessService{
		validator:        validator,
		rooms:            rooms,
		devices:          devices,
		housekeeping:     housekeeping,
		provisioner:      provisioner,
		log:              log,
		maxFastPerRoom:   policy.MaxFastDevicesPerRoom,
		normalProfile:    policy.NormalProfile,
		fastProfile:      policy.FastProfile,
		skipCleanForFast: policy.SkipCleanForFast,
		now:              time.Now,
	}
}

// WithClock — подмена источника времени (для тестов).
func (s *AccessService) WithClock(now func() time.Time) *AccessService {
	s.now = now
	return s
}

// Authenticate — полный цикл входа:
//  1. разрешить отображаемый номер в resource id;
//  2. подтвердить гостя через движок валидации;
//  3. для быстрого профиля проверить лимит на номер;
//  4. зарегистрировать устройство и пометить уборку;
//  5. открыть доступ на сетевом устройстве.
func (s *AccessService) Authenticate(ctx context.Context, req domain.AccessRequest) (*domain.AccessGrant, error) {
	roomNumber := strings.TrimSpace(req.RoomNumber)
	surname := domain.NormalizeSurname(req.Surname)
	mac := strings.ToUpper(strings.TrimSpace(req.MAC))

	if roomNumber == "" || surname == "" {
		metrics.AuthAttempts.WithLabelValues("denied").Inc()
		return nil, ErrBadRequest
	}

	roomID, err := s.rooms.IDByNumber(ctx, roomNumber)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("room catalog: %w", err)
	}
	if roomID == "" {
		metrics.AuthAttempts.WithLabelValues("denied").Inc()
		s.log.Infof(ctx, "auth denied: unknown room %q mac=%s", roomNumber, mac)
		return nil, ErrUnknownRoom
	}

	res := s.validator.Validate(ctx, roomID, roomNumber, surname)
	if !res.Valid {
		metrics.AuthAttempts.WithLabelValues("denied").Inc()
		s.log.Infof(ctx, "auth denied: no reservation room=%s surname=%s mac=%s", roomNumber, surname, mac)
		return nil, ErrNotAGuest
	}

	fast := req.FastMode
	if fast {
		count, err := s.devices.CountFast(ctx, roomNumber)
		if err != nil {
			metrics.AuthAttempts.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("count fast devices: %w", err)
		}
		if count >= s.maxFastPerRoom {
			// Не отказ, а мягкая деградация: пускаем в обычном профиле.
			s.log.Infof(ctx, "fast limit reached room=%s (count=%d), downgrading mac=%s", roomNumber, count, mac)
			fast = false
		}
	}

	now := s.now()
	device := &domain.Device{
		MAC:        mac,
		RoomNumber: roomNumber,
		Surname:    surname,
		FastMode:   fast,
		LastUpdate: now,
		CreatedAt:  now,
	}
	if err := s.devices.Register(ctx, device); err != nil {
		metrics.AuthAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register device: %w", err)
	}

	// Быстрый профиль подразумевает "не беспокоить"; ошибка пометки не
	// блокирует выдачу доступа.
	if fast && s.skipCleanForFast {
		if err := s.housekeeping.SetSkipClean(ctx, roomNumber, surname, true); err != nil {
			s.log.Warnf(ctx, "set skip clean failed room=%s: %v", roomNumber, err)
		}
	}

	profile := s.normalProfile
	if fast {
		profile = s.fastProfile
	}
	if err := s.provisioner.Grant(ctx, mac, profile); err != nil {
		metrics.AuthAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("provision access mac=%s: %w", mac, err)
	}

	metrics.AuthAttempts.WithLabelValues("granted").Inc()
	s.log.Infof(ctx, "auth granted room=%s surname=%s mac=%s profile=%s from_cache=%t",
		roomNumber, surname, mac, profile, res.FromCache)

	return &domain.AccessGrant{
		Device:      *device,
		Profile:     profile,
		Reservation: res,
	}, nil
}
