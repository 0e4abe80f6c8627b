package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonora/booking-service/internal/domain"
	settingsStorage "github.com/salonora/booking-service/internal/infra/storage/settings"
	"github.com/salonora/booking-service/internal/service/settings/models"
)

// Service сервис настроек расписания салона
type Service struct {
	settingsRepo SettingsRepository
	notifier     SettingsNotifier
	policy       SchedulingPolicy
	logger       Logger
}

// NewService создает новый сервис настроек
func NewService(settingsRepo SettingsRepository, notifier SettingsNotifier, policy SchedulingPolicy, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
	}
}

// Get возвращает текущие настройки салона.
// Пока администратор ничего не сохранял, действуют настройки по умолчанию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsStorage.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			return models.FromDomainSettings(defaults), nil
		}
		s.logger.Error("Get: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(*settings), nil
}

// Update сохраняет новые настройки расписания и рассылает их.
//
// Порядок фиксирован: сначала запись в БД, затем локальное применение,
// затем публикация. Ошибка публикации не откатывает сохранение: локальный
// инстанс уже работает по новым настройкам, остальные подхватят их при
// следующем рестарте.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: workStart=%s, workEnd=%s, slotDuration=%d",
		req.WorkStart, req.WorkEnd, req.SlotDurationMinutes)

	newSettings := req.ToDomain()

	if err := validateSettings(newSettings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.settingsRepo.Update(ctx, newSettings); err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.policy.ApplySettings(newSettings)

	if err := s.notifier.Publish(ctx, newSettings); err != nil {
		s.logger.Warn("Update: failed to publish settings update: %v", err)
	}

	saved, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to re-read settings: %v", err)
		return nil, fmt.Errorf("%w: failed to re-read settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved")

	return models.FromDomainSettings(*saved), nil
}

func validateSettings(settings domain.SalonSettings) error {
	if !settings.WorkHours.IsValid() {
		return fmt.Errorf("%w: work hours must be valid HH:MM values with start before end", ErrInvalidInput)
	}

	if settings.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		settings.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	// Рабочее окно должно вмещать хотя бы один шаг сетки
	startMin, _ := settings.WorkHours.Start.Minutes()
	endMin, _ := settings.WorkHours.End.Minutes()
	if endMin-startMin < settings.SlotDurationMinutes {
		return fmt.Errorf("%w: work hours are shorter than one slot", ErrInvalidInput)
	}

	return nil
}
