package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/app/services/shared/locker"
	"lunysse-service/internal/app/services/shared/redis"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var session = models.Session{PsychologistID: "psy-1", Email: "ana.costa@lunysse.com"}

func newTestUsecase(t *testing.T) (*miniredis.Miniredis, *availabilityUsecase) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := redis.NewRedisRepository(client)
	cfg := &config.InternalConfig{Availability: config.Availability{Days: weekdays, LockTTL: time.Second}}
	uc := NewAvailabilityUsecase(repo, locker.NewLockService(repo, zap.NewNop()), cfg, zap.NewNop())
	return mr, uc.(*availabilityUsecase)
}

func TestAvailabilityUsecase_TogglePersists(t *testing.T) {
	mr, uc := newTestUsecase(t)
	ctx := context.Background()

	result, err := uc.ToggleSlot(ctx, session, &requests.ToggleAvailabilitySlot{Day: "Segunda", Time: "08:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Segunda-08:00"}, result.SelectedSlots)
	assert.Equal(t, 1, result.SelectedCount)
	assert.Equal(t, 1, result.CountPerDay["Segunda"])
	assert.Equal(t, 0, result.CountPerDay["Terça"])

	stored, err := mr.Get(fmt.Sprintf(constvars.RedisKeyAvailabilityFormat, "psy-1"))
	require.NoError(t, err)
	assert.Equal(t, `["Segunda-08:00"]`, stored)

	got, err := uc.GetSelection(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []string{"Segunda-08:00"}, got.SelectedSlots)

	result, err = uc.ToggleSlot(ctx, session, &requests.ToggleAvailabilitySlot{Day: "Segunda", Time: "08:00"})
	require.NoError(t, err)
	assert.Empty(t, result.SelectedSlots)
	assert.False(t, mr.Exists(fmt.Sprintf(constvars.RedisKeyAvailabilityLockFormat, "psy-1")))
}

func TestAvailabilityUsecase_StoresSelectionInToggleOrder(t *testing.T) {
	mr, uc := newTestUsecase(t)
	ctx := context.Background()

	for _, slot := range []requests.ToggleAvailabilitySlot{
		{Day: "Quarta", Time: "14:00"},
		{Day: "Segunda", Time: "09:00"},
		{Day: "Quarta", Time: "08:00"},
		{Day: "Segunda", Time: "09:00"},
	} {
		slot := slot
		_, err := uc.ToggleSlot(ctx, session, &slot)
		require.NoError(t, err)
	}

	key := fmt.Sprintf(constvars.RedisKeyAvailabilityFormat, "psy-1")
	assert.Equal(t, "string", mr.Type(key))
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `["Quarta-14:00","Quarta-08:00"]`, stored)

	got, err := uc.GetSelection(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quarta-14:00", "Quarta-08:00"}, got.SelectedSlots)
}

func TestAvailabilityUsecase_EmptySelection(t *testing.T) {
	_, uc := newTestUsecase(t)

	got, err := uc.GetSelection(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, got.SelectedSlots)
	assert.Equal(t, weekdays, got.Days)
}

func TestAvailabilityUsecase_ReplaceSelection(t *testing.T) {
	_, uc := newTestUsecase(t)
	ctx := context.Background()

	result, err := uc.ReplaceSelection(ctx, session, &requests.ReplaceAvailability{Slots: []requests.ToggleAvailabilitySlot{
		{Day: "Terça", Time: "09:00"},
		{Day: "Terça", Time: "09:00"},
		{Day: "Quinta", Time: "16:00"},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Terça-09:00", "Quinta-16:00"}, result.SelectedSlots)

	got, err := uc.GetSelection(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, result.SelectedSlots, got.SelectedSlots)
}

func TestAvailabilityUsecase_RejectsUnknownDay(t *testing.T) {
	_, uc := newTestUsecase(t)

	_, err := uc.ToggleSlot(context.Background(), session, &requests.ToggleAvailabilitySlot{Day: "Domingo", Time: "08:00"})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAvailabilityUsecase_LockedSelection(t *testing.T) {
	mr, uc := newTestUsecase(t)
	require.NoError(t, mr.Set(fmt.Sprintf(constvars.RedisKeyAvailabilityLockFormat, "psy-1"), `"other-holder"`))

	_, err := uc.ToggleSlot(context.Background(), session, &requests.ToggleAvailabilitySlot{Day: "Segunda", Time: "08:00"})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestAvailabilityUsecase_Template(t *testing.T) {
	_, uc := newTestUsecase(t)
	template := uc.GetTemplate(context.Background())
	assert.Equal(t, weekdays, template.Days)
	assert.Len(t, template.TimeSlots, 8)
}
