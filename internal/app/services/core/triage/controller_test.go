package triage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/app/services/shared/locker"
	"lunysse-service/internal/app/services/shared/mockapi"
	"lunysse-service/internal/app/services/shared/redis"
	"lunysse-service/internal/pkg/constvars"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSession = models.Session{PsychologistID: "psy-1", Email: "ana.costa@lunysse.com", Name: "Dra. Ana Costa"}

type notice struct {
	message  string
	severity models.Severity
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(message string, severity models.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{message: message, severity: severity})
}

func (n *recordingNotifier) Active() []models.Notification { return nil }

func (n *recordingNotifier) Dismiss(string) bool { return false }

func (n *recordingNotifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice{}, n.notices...)
}

func (n *recordingNotifier) last() notice {
	all := n.all()
	if len(all) == 0 {
		return notice{}
	}
	return all[len(all)-1]
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.TriageEvent
	err    error
}

func (p *recordingPublisher) PublishTriageEvent(_ context.Context, event models.TriageEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func pendingRequest(id, email string) models.SessionRequest {
	return models.SessionRequest{
		ID:             id,
		PsychologistID: testSession.PsychologistID,
		PatientName:    "Paciente " + id,
		PatientEmail:   email,
		PatientPhone:   "(11) 90000-0000",
		Urgency:        constvars.UrgencyMedium,
		Status:         constvars.RequestStatusPending,
	}
}

func rosterPatient(id, email string) models.Patient {
	return models.Patient{
		ID:             id,
		PsychologistID: testSession.PsychologistID,
		Name:           "Paciente " + id,
		Email:          email,
		Status:         constvars.PatientStatusActive,
	}
}

// scenarioClient holds pending requests 1 (a@x.com) and 2 (b@x.com) and a
// roster that already contains a@x.com.
func scenarioClient() *mockapi.Client {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("1", "a@x.com"))
	client.AddRequest(pendingRequest("2", "b@x.com"))
	client.AddPatient(rosterPatient("p-a", "a@x.com"))
	return client
}

func newLoadedController(t *testing.T, client contracts.SchedulingDataClient, opts ...Option) (*Controller, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	c := NewController(testSession, client, notifier, zap.NewNop(), opts...)
	require.NoError(t, c.LoadPending(context.Background()))
	return c, notifier
}

func pendingIDs(c *Controller) []string {
	ids := []string{}
	for _, r := range c.Pending() {
		ids = append(ids, r.ID)
	}
	return ids
}

func countByEmail(t *testing.T, client *mockapi.Client, email string) int {
	t.Helper()
	patients, err := client.GetPatients(context.Background(), testSession.PsychologistID)
	require.NoError(t, err)
	count := 0
	for _, p := range patients {
		if p.Email == email {
			count++
		}
	}
	return count
}

func TestController_TriageScenario(t *testing.T) {
	client := scenarioClient()
	c, notifier := newLoadedController(t, client)
	ctx := context.Background()
	require.Equal(t, []string{"1", "2"}, pendingIDs(c))

	snapshot, ok := c.Lookup("1")
	require.True(t, ok)
	err := c.Accept(ctx, "1", snapshot)
	assert.ErrorIs(t, err, ErrDuplicatePatient)
	assert.Equal(t, notice{constvars.NotifyPatientAlreadyExists, models.SeverityError}, notifier.last())
	assert.Equal(t, []string{"1", "2"}, pendingIDs(c))
	assert.Equal(t, 0, client.Calls(mockapi.OpCreatePatient))
	assert.Equal(t, 0, client.Calls(mockapi.OpUpdateRequestStatus))

	snapshot, ok = c.Lookup("2")
	require.True(t, ok)
	require.NoError(t, c.Accept(ctx, "2", snapshot))
	assert.Equal(t, notice{constvars.NotifyRequestAccepted, models.SeveritySuccess}, notifier.last())
	assert.Equal(t, []string{"1"}, pendingIDs(c))
	assert.Equal(t, 1, countByEmail(t, client, "b@x.com"))

	require.NoError(t, c.Reject(ctx, "1"))
	assert.Equal(t, notice{constvars.NotifyRequestRejected, models.SeverityInfo}, notifier.last())
	assert.Empty(t, pendingIDs(c))
	assert.Empty(t, c.InFlight())
}

func TestController_AcceptCreatesPatientWithDefaults(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "Nova.Paciente@Email.com"))
	c, _ := newLoadedController(t, client)

	snapshot, _ := c.Lookup("r1")
	require.NoError(t, c.Accept(context.Background(), "r1", snapshot))

	patients, err := client.GetPatients(context.Background(), testSession.PsychologistID)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "nova.paciente@email.com", patients[0].Email)
	assert.Equal(t, "Paciente r1", patients[0].Name)
	assert.Equal(t, constvars.PatientStatusActive, patients[0].Status)
	assert.Equal(t, constvars.PatientDefaultBirthDate, patients[0].BirthDate)
	assert.Equal(t, constvars.PatientDefaultAge, patients[0].Age)
	assert.Equal(t, testSession.PsychologistID, patients[0].PsychologistID)

	stored, _ := client.Request("r1")
	assert.Equal(t, constvars.RequestStatusAccepted, stored.Status)
	assert.Equal(t, constvars.TriageNoteAccepted, stored.Note)
}

func TestController_RejectCreatesNoPatient(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "x@x.com"))
	c, _ := newLoadedController(t, client)

	require.NoError(t, c.Reject(context.Background(), "r1"))

	assert.Empty(t, pendingIDs(c))
	assert.Equal(t, 0, client.Calls(mockapi.OpCreatePatient))
	stored, _ := client.Request("r1")
	assert.Equal(t, constvars.RequestStatusRejected, stored.Status)
	assert.Equal(t, constvars.TriageNoteRejected, stored.Note)
}

func TestController_AcceptWriteFailuresKeepRequestPending(t *testing.T) {
	for _, op := range []string{mockapi.OpGetPatients, mockapi.OpCreatePatient, mockapi.OpUpdateRequestStatus} {
		t.Run(op, func(t *testing.T) {
			client := mockapi.NewClient(zap.NewNop())
			client.AddRequest(pendingRequest("r1", "x@x.com"))
			c, notifier := newLoadedController(t, client)
			client.FailNext(op, errors.New("network down"))

			snapshot, _ := c.Lookup("r1")
			err := c.Accept(context.Background(), "r1", snapshot)
			require.Error(t, err)

			assert.Equal(t, notice{constvars.NotifyAcceptFailed, models.SeverityError}, notifier.last())
			assert.Equal(t, []string{"r1"}, pendingIDs(c))
			assert.False(t, c.IsProcessing("r1"))
		})
	}
}

func TestController_RetryAfterStatusFailureReportsExistingPatient(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "x@x.com"))
	c, notifier := newLoadedController(t, client)
	client.FailNext(mockapi.OpUpdateRequestStatus, nil)

	snapshot, _ := c.Lookup("r1")
	require.Error(t, c.Accept(context.Background(), "r1", snapshot))

	err := c.Accept(context.Background(), "r1", snapshot)
	assert.ErrorIs(t, err, ErrDuplicatePatient)
	assert.Equal(t, notice{constvars.NotifyPatientAlreadyExists, models.SeverityError}, notifier.last())
	assert.Equal(t, 1, countByEmail(t, client, "x@x.com"))
}

func TestController_RejectFailure(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "x@x.com"))
	c, notifier := newLoadedController(t, client)
	client.FailNext(mockapi.OpUpdateRequestStatus, nil)

	require.Error(t, c.Reject(context.Background(), "r1"))
	assert.Equal(t, notice{constvars.NotifyRejectFailed, models.SeverityError}, notifier.last())
	assert.Equal(t, []string{"r1"}, pendingIDs(c))
	assert.False(t, c.IsProcessing("r1"))
}

func TestController_LoadPendingFailureKeepsPriorState(t *testing.T) {
	client := scenarioClient()
	c, notifier := newLoadedController(t, client)
	client.FailNext(mockapi.OpGetRequests, nil)

	err := c.LoadPending(context.Background())
	require.Error(t, err)
	assert.Equal(t, notice{constvars.NotifyLoadRequestsFailed, models.SeverityError}, notifier.last())
	assert.Equal(t, []string{"1", "2"}, pendingIDs(c))
}

func TestController_RefreshFailureIsSilent(t *testing.T) {
	client := scenarioClient()
	c, notifier := newLoadedController(t, client)
	client.FailNext(mockapi.OpGetRequests, nil)

	require.Error(t, c.Refresh(context.Background()))
	assert.Empty(t, notifier.all())
}

func TestController_LoadPendingKeepsOnlyValidPending(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("ok", "ok@x.com"))
	accepted := pendingRequest("done", "done@x.com")
	accepted.Status = constvars.RequestStatusAccepted
	client.AddRequest(accepted)
	badUrgency := pendingRequest("bad", "bad@x.com")
	badUrgency.Urgency = "urgentissimo"
	client.AddRequest(badUrgency)
	noEmail := pendingRequest("noemail", "")
	client.AddRequest(noEmail)

	c, _ := newLoadedController(t, client)
	assert.Equal(t, []string{"ok"}, pendingIDs(c))
}

func TestController_UnknownRequestIsNotPending(t *testing.T) {
	c, notifier := newLoadedController(t, scenarioClient())

	err := c.Accept(context.Background(), "404", models.SessionRequest{ID: "404"})
	assert.ErrorIs(t, err, ErrNotPending)
	err = c.Reject(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Empty(t, notifier.all())
}

func TestController_ResolvedRequestIsNotReAdded(t *testing.T) {
	client := scenarioClient()
	c, _ := newLoadedController(t, client)

	require.NoError(t, c.Reject(context.Background(), "2"))
	require.NoError(t, c.LoadPending(context.Background()))
	assert.Equal(t, []string{"1"}, pendingIDs(c))

	err := c.Reject(context.Background(), "2")
	assert.ErrorIs(t, err, ErrNotPending)
}

// slowListClient reads the requests, then holds the result until released,
// so a resolution can land while the fetch is still outstanding.
type slowListClient struct {
	*mockapi.Client
	hold    bool
	fetched chan struct{}
	release chan struct{}
}

func (s *slowListClient) GetRequests(ctx context.Context, psychologistID string) ([]models.SessionRequest, error) {
	requests, err := s.Client.GetRequests(ctx, psychologistID)
	if s.hold {
		s.fetched <- struct{}{}
		<-s.release
	}
	return requests, err
}

func TestController_RefreshStartedBeforeResolutionDoesNotReAdd(t *testing.T) {
	inner := mockapi.NewClient(zap.NewNop())
	inner.AddRequest(pendingRequest("r1", "x@x.com"))
	inner.AddRequest(pendingRequest("r2", "y@x.com"))
	client := &slowListClient{Client: inner, fetched: make(chan struct{}), release: make(chan struct{})}
	c, _ := newLoadedController(t, client)

	client.hold = true
	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()
	<-client.fetched

	require.NoError(t, c.Reject(context.Background(), "r1"))
	stored, ok := inner.Request("r1")
	require.True(t, ok)
	assert.Equal(t, constvars.RequestStatusRejected, stored.Status)

	close(client.release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"r2"}, pendingIDs(c))

	assert.ErrorIs(t, c.Reject(context.Background(), "r1"), ErrNotPending)
	assert.Equal(t, 1, inner.Calls(mockapi.OpUpdateRequestStatus))
}

// gatedClient blocks CreatePatient and UpdateRequestStatus until released.
type gatedClient struct {
	*mockapi.Client
	entered chan struct{}
	release chan struct{}
}

func (g *gatedClient) CreatePatient(ctx context.Context, input models.CreatePatientInput) (*models.Patient, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.Client.CreatePatient(ctx, input)
}

func (g *gatedClient) UpdateRequestStatus(ctx context.Context, requestID, status, note string) error {
	if status == constvars.RequestStatusRejected {
		g.entered <- struct{}{}
		<-g.release
	}
	return g.Client.UpdateRequestStatus(ctx, requestID, status, note)
}

func TestController_InFlightIsTransient(t *testing.T) {
	inner := mockapi.NewClient(zap.NewNop())
	inner.AddRequest(pendingRequest("r1", "x@x.com"))
	client := &gatedClient{Client: inner, entered: make(chan struct{}), release: make(chan struct{})}
	c, _ := newLoadedController(t, client)

	assert.False(t, c.IsProcessing("r1"))

	snapshot, _ := c.Lookup("r1")
	done := make(chan error, 1)
	go func() { done <- c.Accept(context.Background(), "r1", snapshot) }()

	<-client.entered
	assert.True(t, c.IsProcessing("r1"))
	assert.Equal(t, []string{"r1"}, c.InFlight())

	assert.ErrorIs(t, c.Accept(context.Background(), "r1", snapshot), ErrInFlight)
	assert.ErrorIs(t, c.Reject(context.Background(), "r1"), ErrInFlight)

	close(client.release)
	require.NoError(t, <-done)
	assert.False(t, c.IsProcessing("r1"))
	assert.Empty(t, c.InFlight())
	assert.Equal(t, 1, inner.Calls(mockapi.OpCreatePatient))
}

func TestController_InFlightClearedAfterRejectFailure(t *testing.T) {
	inner := mockapi.NewClient(zap.NewNop())
	inner.AddRequest(pendingRequest("r1", "x@x.com"))
	client := &gatedClient{Client: inner, entered: make(chan struct{}), release: make(chan struct{})}
	c, _ := newLoadedController(t, client)
	inner.FailNext(mockapi.OpUpdateRequestStatus, nil)

	done := make(chan error, 1)
	go func() { done <- c.Reject(context.Background(), "r1") }()

	<-client.entered
	assert.True(t, c.IsProcessing("r1"))
	close(client.release)
	require.Error(t, <-done)
	assert.False(t, c.IsProcessing("r1"))
}

func TestController_IndependentRequestsRunConcurrently(t *testing.T) {
	client := mockapi.NewClient(zap.NewNop(), mockapi.WithLatency(5*time.Millisecond))
	for i := 0; i < 5; i++ {
		client.AddRequest(pendingRequest(fmt.Sprintf("r%d", i), fmt.Sprintf("p%d@x.com", i)))
	}
	c, _ := newLoadedController(t, client)

	var wg sync.WaitGroup
	for _, r := range c.Pending() {
		wg.Add(1)
		go func(r models.SessionRequest) {
			defer wg.Done()
			assert.NoError(t, c.Accept(context.Background(), r.ID, r))
		}(r)
	}
	wg.Wait()

	assert.Empty(t, c.Pending())
	assert.Empty(t, c.InFlight())
	assert.Equal(t, 5, client.Calls(mockapi.OpCreatePatient))
}

func newTestLocker(t *testing.T) (*miniredis.Miniredis, contracts.LockerService) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, locker.NewLockService(redis.NewRedisRepository(rdb), zap.NewNop())
}

func TestController_AcceptHonorsEmailLock(t *testing.T) {
	mr, lockSvc := newTestLocker(t)
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "x@x.com"))
	c, notifier := newLoadedController(t, client, WithLocker(lockSvc, time.Minute))

	lockKey := fmt.Sprintf(constvars.RedisKeyTriageAcceptLockFormat, testSession.PsychologistID, "x@x.com")
	require.NoError(t, mr.Set(lockKey, `"another-instance"`))

	snapshot, _ := c.Lookup("r1")
	err := c.Accept(context.Background(), "r1", snapshot)
	assert.ErrorIs(t, err, ErrEmailLocked)
	assert.Equal(t, notice{constvars.NotifyAcceptFailed, models.SeverityError}, notifier.last())
	assert.Equal(t, 0, client.Calls(mockapi.OpGetPatients))
	assert.Equal(t, 0, client.Calls(mockapi.OpCreatePatient))
	assert.Equal(t, []string{"r1"}, pendingIDs(c))

	mr.Del(lockKey)
	require.NoError(t, c.Accept(context.Background(), "r1", snapshot))
	assert.False(t, mr.Exists(lockKey))
}

func TestController_PublishesTriageEvents(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker unavailable")}
	client := mockapi.NewClient(zap.NewNop())
	client.AddRequest(pendingRequest("r1", "x@x.com"))
	client.AddRequest(pendingRequest("r2", "y@x.com"))
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	c, _ := newLoadedController(t, client, WithPublisher(publisher), WithClock(func() time.Time { return now }))

	snapshot, _ := c.Lookup("r1")
	require.NoError(t, c.Accept(context.Background(), "r1", snapshot))
	require.NoError(t, c.Reject(context.Background(), "r2"))

	require.Len(t, publisher.events, 2)
	assert.Equal(t, constvars.TriageEventAccepted, publisher.events[0].Event)
	assert.Equal(t, "r1", publisher.events[0].RequestID)
	assert.NotEmpty(t, publisher.events[0].PatientID)
	assert.Equal(t, now, publisher.events[0].OccurredAt)
	assert.Equal(t, constvars.TriageEventRejected, publisher.events[1].Event)
	assert.Equal(t, "y@x.com", publisher.events[1].PatientEmail)
}
