package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
	registryClient "github.com/m04kA/SMC-CapacityService/internal/integrations/serviceregistry"
	"github.com/m04kA/SMC-CapacityService/internal/service/planning/models"
)

// Service сервис администрирования календарей вместимости
// Создание календаря, открытие/закрытие дат, изменение вместимости
// и календарное окно на месяц. Бронирование и освобождение мест живут
// в отдельных use case'ах.
type Service struct {
	planningRepo   PlanningRepository
	registryClient ServiceRegistryClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(
	planningRepo PlanningRepository,
	registryClient ServiceRegistryClient,
	logger Logger,
) *Service {
	return &Service{
		planningRepo:   planningRepo,
		registryClient: registryClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// CreatePlanning создает календарь для услуги
// Календарь заводится только для существующей в реестре услуги
func (s *Service) CreatePlanning(ctx context.Context, req *models.CreatePlanningRequest) (*models.PlanningResponse, error) {
	s.logger.Info("CreatePlanning: service=%d, label=%q", req.ServiceID, req.Label)

	if err := validateCreatePlanning(req); err != nil {
		s.logger.Warn("CreatePlanning: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.registryClient.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, registryClient.ErrServiceNotFound) {
			s.logger.Warn("CreatePlanning: service id=%d not found in registry", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CreatePlanning: registry error for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to check service: %v", ErrInternal, err)
	}

	planning := domain.NewPlanning(req.ServiceID, req.Label, req.Description, s.timeProvider.Now())

	created, err := s.planningRepo.Create(ctx, planning)
	if err != nil {
		if errors.Is(err, planningRepo.ErrPlanningExists) {
			s.logger.Warn("CreatePlanning: planning for service=%d already exists", req.ServiceID)
			return nil, ErrPlanningExists
		}
		s.logger.Error("CreatePlanning: repository error for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: CreatePlanning - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePlanning: created planning id=%d for service=%d", created.ID, req.ServiceID)
	return models.FromDomainPlanning(created), nil
}

// GetPlanning возвращает календарь услуги
func (s *Service) GetPlanning(ctx context.Context, serviceID int64) (*models.PlanningResponse, error) {
	planning, err := s.loadPlanning(ctx, serviceID, "GetPlanning")
	if err != nil {
		return nil, err
	}
	return models.FromDomainPlanning(planning), nil
}

// SetActive включает или отключает приём новых бронирований
// Отключённый календарь отклоняет новые брони; существующие не затрагиваются
// и по-прежнему могут быть освобождены
func (s *Service) SetActive(ctx context.Context, serviceID int64, active bool) error {
	s.logger.Info("SetActive: service=%d, active=%t", serviceID, active)

	planning, err := s.loadPlanning(ctx, serviceID, "SetActive")
	if err != nil {
		return err
	}

	if err := s.planningRepo.SetActive(ctx, planning.ID, active); err != nil {
		if errors.Is(err, planningRepo.ErrPlanningNotFound) {
			return ErrPlanningNotFound
		}
		s.logger.Error("SetActive: repository error for service=%d: %v", serviceID, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: planning id=%d active=%t", planning.ID, active)
	return nil
}

// AddSlot открывает дату для бронирования
func (s *Service) AddSlot(ctx context.Context, serviceID int64, req *models.AddSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("AddSlot: service=%d, date=%s, capacity=%d",
		serviceID, req.Date.Format(domain.DateFormat), req.MaxCapacity)

	planning, err := s.loadPlanning(ctx, serviceID, "AddSlot")
	if err != nil {
		return nil, err
	}

	// Агрегат валидирует дубликат даты и вместимость
	slot, err := planning.AddSlot(req.Date, req.MaxCapacity, s.timeProvider.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateDate):
			s.logger.Warn("AddSlot: duplicate date %s for service=%d", req.Date.Format(domain.DateFormat), serviceID)
			return nil, ErrDuplicateDate
		case errors.Is(err, domain.ErrInvalidCapacity):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return nil, fmt.Errorf("%w: AddSlot - domain error: %v", ErrInternal, err)
		}
	}

	// UNIQUE (planning_id, date) закрывает гонку двух администраторов
	created, err := s.planningRepo.CreateSlot(ctx, slot)
	if err != nil {
		if errors.Is(err, planningRepo.ErrDuplicateDate) {
			return nil, ErrDuplicateDate
		}
		s.logger.Error("AddSlot: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: created slot id=%d for service=%d", created.ID, serviceID)
	return models.FromDomainSlot(created), nil
}

// RemoveSlot закрывает дату для бронирования
// Отсутствие слота на дату - no-op; дата с занятыми местами не закрывается
func (s *Service) RemoveSlot(ctx context.Context, serviceID int64, date time.Time) error {
	s.logger.Info("RemoveSlot: service=%d, date=%s", serviceID, date.Format(domain.DateFormat))

	planning, err := s.loadPlanning(ctx, serviceID, "RemoveSlot")
	if err != nil {
		return err
	}

	slot := planning.SlotForDate(date)
	if slot == nil {
		s.logger.Info("RemoveSlot: no slot on %s for service=%d, nothing to do",
			date.Format(domain.DateFormat), serviceID)
		return nil
	}

	if err := planning.RemoveSlot(date, s.timeProvider.Now()); err != nil {
		if errors.Is(err, domain.ErrSlotHasActiveHolds) {
			s.logger.Warn("RemoveSlot: slot on %s has active holds, service=%d",
				date.Format(domain.DateFormat), serviceID)
			return ErrSlotHasActiveHolds
		}
		return fmt.Errorf("%w: RemoveSlot - domain error: %v", ErrInternal, err)
	}

	if err := s.planningRepo.DeleteSlot(ctx, slot.ID); err != nil {
		switch {
		case errors.Is(err, planningRepo.ErrSlotHasHolds):
			// Места заняли между загрузкой агрегата и удалением
			return ErrSlotHasActiveHolds
		case errors.Is(err, planningRepo.ErrSlotNotFound):
			// Слот уже удалён - идемпотентный no-op
			return nil
		default:
			s.logger.Error("RemoveSlot: repository error for service=%d: %v", serviceID, err)
			return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("RemoveSlot: removed slot id=%d for service=%d", slot.ID, serviceID)
	return nil
}

// UpdateSlotCapacity изменяет максимальную вместимость даты
// Уменьшение ниже занятых мест отклоняется - сначала нужно освободить брони
func (s *Service) UpdateSlotCapacity(ctx context.Context, serviceID int64, date time.Time, newMax int) (*models.SlotResponse, error) {
	s.logger.Info("UpdateSlotCapacity: service=%d, date=%s, newMax=%d",
		serviceID, date.Format(domain.DateFormat), newMax)

	planning, err := s.loadPlanning(ctx, serviceID, "UpdateSlotCapacity")
	if err != nil {
		return nil, err
	}

	slot := planning.SlotForDate(date)
	if slot == nil {
		s.logger.Warn("UpdateSlotCapacity: no slot on %s for service=%d",
			date.Format(domain.DateFormat), serviceID)
		return nil, ErrSlotNotFound
	}

	if err := slot.UpdateCapacity(newMax, s.timeProvider.Now()); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCapacity):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, domain.ErrCapacityBelowReserved):
			s.logger.Warn("UpdateSlotCapacity: newMax=%d below reserved=%d, service=%d",
				newMax, slot.ReservedCount, serviceID)
			return nil, ErrCapacityBelowReserved
		default:
			return nil, fmt.Errorf("%w: UpdateSlotCapacity - domain error: %v", ErrInternal, err)
		}
	}

	// Условное обновление закрывает гонку с конкурентным бронированием
	if err := s.planningRepo.UpdateSlotCapacity(ctx, slot.ID, newMax); err != nil {
		switch {
		case errors.Is(err, planningRepo.ErrCapacityBelowReserved):
			return nil, ErrCapacityBelowReserved
		case errors.Is(err, planningRepo.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		default:
			s.logger.Error("UpdateSlotCapacity: repository error for service=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: UpdateSlotCapacity - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateSlotCapacity: slot id=%d capacity=%d", slot.ID, newMax)
	return models.FromDomainSlot(slot), nil
}

// GetMonthWindow возвращает снимок слотов услуги за месяц
// Сортировка по дате по возрастанию - питает календарные витрины доступности
func (s *Service) GetMonthWindow(ctx context.Context, req *models.MonthWindowRequest) (*models.MonthWindowResponse, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Year < 1 || req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: invalid year/month", ErrInvalidInput)
	}

	slots, err := s.planningRepo.GetSlotsForMonth(ctx, req.ServiceID, req.Year, req.Month)
	if err != nil {
		s.logger.Error("GetMonthWindow: repository error for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: GetMonthWindow - repository error: %v", ErrInternal, err)
	}

	// Пустое окно может означать отсутствие календаря как такового -
	// различаем эти случаи для вызывающей стороны
	if len(slots) == 0 {
		if _, err := s.loadPlanning(ctx, req.ServiceID, "GetMonthWindow"); err != nil {
			return nil, err
		}
	}

	s.logger.Info("GetMonthWindow: service=%d, %d-%02d, %d slots", req.ServiceID, req.Year, req.Month, len(slots))

	return &models.MonthWindowResponse{
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Month:     req.Month,
		Slots:     models.FromDomainSlotList(slots),
	}, nil
}

func (s *Service) loadPlanning(ctx context.Context, serviceID int64, op string) (*domain.Planning, error) {
	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	planning, err := s.planningRepo.GetByServiceID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, planningRepo.ErrPlanningNotFound) {
			s.logger.Warn("%s: planning for service=%d not found", op, serviceID)
			return nil, ErrPlanningNotFound
		}
		s.logger.Error("%s: repository error for service=%d: %v", op, serviceID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return planning, nil
}

func validateCreatePlanning(req *models.CreatePlanningRequest) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Label == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if len(req.Label) > domain.MaxLabelLength {
		return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidInput, domain.MaxLabelLength)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
