package availability

import (
	"context"
	"fmt"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	RedisRepository contracts.RedisRepository
	LockerService   contracts.LockerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAvailabilityUsecase(
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		RedisRepository: redisRepository,
		LockerService:   lockerService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *availabilityUsecase) GetTemplate(ctx context.Context) *responses.SlotTemplate {
	return &responses.SlotTemplate{
		Days:      append([]string{}, uc.InternalConfig.Availability.Days...),
		TimeSlots: models.DefaultTimeSlots(),
	}
}

func (uc *availabilityUsecase) GetSelection(ctx context.Context, session models.Session) (*responses.Availability, error) {
	selected, err := uc.load(ctx, session.PsychologistID)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(NewSelector(uc.InternalConfig.Availability.Days, selected, nil)), nil
}

func (uc *availabilityUsecase) ToggleSlot(ctx context.Context, session models.Session, request *requests.ToggleAvailabilitySlot) (*responses.Availability, error) {
	if err := uc.checkDay(request.Day); err != nil {
		return nil, err
	}

	var result *responses.Availability
	err := uc.withLock(ctx, session.PsychologistID, func() error {
		selected, err := uc.load(ctx, session.PsychologistID)
		if err != nil {
			return err
		}

		var persistErr error
		selector := NewSelector(uc.InternalConfig.Availability.Days, selected, func(next []string) {
			persistErr = uc.store(ctx, session.PsychologistID, next)
		})
		selector.Toggle(request.Day, request.Time)
		if persistErr != nil {
			return persistErr
		}

		uc.Log.Info("availabilityUsecase.ToggleSlot slot toggled",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPsychologistIDKey, session.PsychologistID),
			zap.String(constvars.LoggingSlotIDKey, models.SlotID(request.Day, request.Time)),
			zap.Bool("selected", selector.Contains(request.Day, request.Time)),
		)
		result = uc.buildResponse(selector)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *availabilityUsecase) ReplaceSelection(ctx context.Context, session models.Session, request *requests.ReplaceAvailability) (*responses.Availability, error) {
	ids := make([]string, 0, len(request.Slots))
	for _, slot := range request.Slots {
		if err := uc.checkDay(slot.Day); err != nil {
			return nil, err
		}
		ids = append(ids, models.SlotID(slot.Day, slot.Time))
	}
	selector := NewSelector(uc.InternalConfig.Availability.Days, ids, nil)

	err := uc.withLock(ctx, session.PsychologistID, func() error {
		return uc.store(ctx, session.PsychologistID, selector.Selected())
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.ReplaceSelection selection replaced",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPsychologistIDKey, session.PsychologistID),
		zap.Int(constvars.LoggingSlotCountKey, selector.Count()),
	)
	return uc.buildResponse(selector), nil
}

func (uc *availabilityUsecase) checkDay(day string) error {
	for _, known := range uc.InternalConfig.Availability.Days {
		if known == day {
			return nil
		}
	}
	return exceptions.ErrUnknownSlotDay(nil, day)
}

// withLock serializes read-modify-write cycles on one psychologist's selection.
func (uc *availabilityUsecase) withLock(ctx context.Context, psychologistID string, fn func() error) error {
	lockKey := fmt.Sprintf(constvars.RedisKeyAvailabilityLockFormat, psychologistID)
	acquired, token, err := uc.LockerService.TryLock(ctx, lockKey, uc.InternalConfig.Availability.LockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrAvailabilityLocked(nil, psychologistID)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, token); unlockErr != nil {
			uc.Log.Warn("availabilityUsecase failed to release lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()
	return fn()
}

func (uc *availabilityUsecase) load(ctx context.Context, psychologistID string) ([]string, error) {
	key := fmt.Sprintf(constvars.RedisKeyAvailabilityFormat, psychologistID)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []string{}, nil
	}

	var selected []string
	if err := json.Unmarshal([]byte(raw), &selected); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return selected, nil
}

func (uc *availabilityUsecase) store(ctx context.Context, psychologistID string, selected []string) error {
	key := fmt.Sprintf(constvars.RedisKeyAvailabilityFormat, psychologistID)
	return uc.RedisRepository.Set(ctx, key, selected, 0)
}

func (uc *availabilityUsecase) buildResponse(selector *Selector) *responses.Availability {
	days := selector.Days()
	countPerDay := make(map[string]int, len(days))
	for _, day := range days {
		countPerDay[day] = selector.CountForDay(day)
	}
	return &responses.Availability{
		Days:          days,
		SelectedSlots: selector.Selected(),
		SelectedCount: selector.Count(),
		CountPerDay:   countPerDay,
	}
}
