package triage

import (
	"context"
	"errors"
	"fmt"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInFlight         = errors.New("session request already in flight")
	ErrNotPending       = errors.New("session request not in pending list")
	ErrDuplicatePatient = errors.New("patient email already in roster")
	ErrEmailLocked      = errors.New("patient email locked by a concurrent accept")
)

type Option func(*Controller)

// WithLocker serializes the roster duplicate check per email across instances.
func WithLocker(locker contracts.LockerService, ttl time.Duration) Option {
	return func(c *Controller) {
		c.locker = locker
		c.lockTTL = ttl
	}
}

func WithPublisher(publisher contracts.TriageEventPublisher) Option {
	return func(c *Controller) { c.publisher = publisher }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns one psychologist's pending session requests and drives
// their accept or reject transitions. A request id is in flight while its
// call runs; a second call for the same id is refused. Data client calls are
// made without holding the state mutex.
type Controller struct {
	log       *zap.Logger
	client    contracts.SchedulingDataClient
	notifier  contracts.Notifier
	locker    contracts.LockerService
	publisher contracts.TriageEventPublisher
	session   models.Session
	lockTTL   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	pending  []models.SessionRequest
	inFlight map[string]struct{}
	// resolved holds every id this controller accepted or rejected. A refresh
	// whose fetch started before the resolution must not bring it back.
	resolved map[string]struct{}
	loaded   bool
}

func NewController(session models.Session, client contracts.SchedulingDataClient, notifier contracts.Notifier, log *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		log:      log,
		client:   client,
		notifier: notifier,
		session:  session,
		lockTTL:  30 * time.Second,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
		resolved: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Session() models.Session {
	return c.session
}

// LoadPending replaces the pending list with the requests the data source
// reports as pending. On failure the previous list is kept and the user is
// notified.
func (c *Controller) LoadPending(ctx context.Context) error {
	if err := c.refresh(ctx); err != nil {
		c.notifier.Notify(constvars.NotifyLoadRequestsFailed, models.SeverityError)
		return err
	}
	return nil
}

// Refresh is LoadPending without the user notification, for background use.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	requests, err := c.client.GetRequests(ctx, c.session.PsychologistID)
	if err != nil {
		c.log.Error("triage.Controller failed to load session requests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPsychologistIDKey, c.session.PsychologistID),
			zap.Error(err),
		)
		return exceptions.ErrLoadRequests(err)
	}

	pending := make([]models.SessionRequest, 0, len(requests))
	for _, request := range requests {
		if !request.IsPending() {
			continue
		}
		if err := utils.ValidateStruct(request); err != nil {
			c.log.Warn("triage.Controller dropped invalid session request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionRequestKey, request.ID),
				zap.String(constvars.LoggingErrorMessageKey, exceptions.FormatAllValidationErrors(err)),
			)
			continue
		}
		pending = append(pending, request)
	}

	c.mu.Lock()
	kept := pending[:0]
	for _, request := range pending {
		if _, done := c.resolved[request.ID]; !done {
			kept = append(kept, request)
		}
	}
	pending = kept
	c.pending = pending
	c.loaded = true
	c.mu.Unlock()

	c.log.Debug("triage.Controller pending requests loaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, c.session.PsychologistID),
		zap.Int(constvars.LoggingPendingCountKey, len(pending)),
	)
	return nil
}

// Accept promotes a pending request to a patient of the roster and marks it
// accepted. An email already present in the roster aborts before any write.
func (c *Controller) Accept(ctx context.Context, requestID string, snapshot models.SessionRequest) error {
	if err := c.begin(requestID); err != nil {
		return err
	}
	defer c.finish(requestID)

	email := utils.NormalizeEmail(snapshot.PatientEmail)
	logFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPsychologistIDKey, c.session.PsychologistID),
		zap.String(constvars.LoggingSessionRequestKey, requestID),
	}

	if c.locker != nil {
		lockKey := fmt.Sprintf(constvars.RedisKeyTriageAcceptLockFormat, c.session.PsychologistID, email)
		acquired, token, err := c.locker.TryLock(ctx, lockKey, c.lockTTL)
		if err != nil {
			c.notifier.Notify(constvars.NotifyAcceptFailed, models.SeverityError)
			return exceptions.ErrAcceptRequest(err)
		}
		if !acquired {
			c.notifier.Notify(constvars.NotifyAcceptFailed, models.SeverityError)
			return exceptions.ErrPatientEmailLocked(ErrEmailLocked, email)
		}
		defer func() {
			if err := c.locker.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
				c.log.Warn("triage.Controller failed to release accept lock", append(logFields, zap.Error(err))...)
			}
		}()
	}

	patients, err := c.client.GetPatients(ctx, c.session.PsychologistID)
	if err != nil {
		c.log.Error("triage.Controller failed to fetch roster", append(logFields, zap.Error(err))...)
		c.notifier.Notify(constvars.NotifyAcceptFailed, models.SeverityError)
		return exceptions.ErrAcceptRequest(err)
	}
	for _, patient := range patients {
		if utils.NormalizeEmail(patient.Email) == email {
			c.log.Info("triage.Controller patient already in roster",
				append(logFields, zap.String(constvars.LoggingPatientIDKey, patient.ID))...)
			c.notifier.Notify(constvars.NotifyPatientAlreadyExists, models.SeverityError)
			return exceptions.ErrPatientAlreadyExists(ErrDuplicatePatient, email)
		}
	}

	patient, err := c.client.CreatePatient(ctx, models.CreatePatientInput{
		PsychologistID: c.session.PsychologistID,
		Name:           strings.TrimSpace(snapshot.PatientName),
		Email:          email,
		Phone:          snapshot.PatientPhone,
		BirthDate:      constvars.PatientDefaultBirthDate,
		Age:            constvars.PatientDefaultAge,
		Status:         constvars.PatientStatusActive,
	})
	if err != nil {
		c.log.Error("triage.Controller failed to create patient", append(logFields, zap.Error(err))...)
		c.notifier.Notify(constvars.NotifyAcceptFailed, models.SeverityError)
		return exceptions.ErrAcceptRequest(err)
	}

	err = c.client.UpdateRequestStatus(ctx, requestID, constvars.RequestStatusAccepted, constvars.TriageNoteAccepted)
	if err != nil {
		// the patient stays in the roster, so a retry reports it as already existing
		c.log.Error("triage.Controller failed to mark request accepted",
			append(logFields, zap.String(constvars.LoggingPatientIDKey, patient.ID), zap.Error(err))...)
		c.notifier.Notify(constvars.NotifyAcceptFailed, models.SeverityError)
		return exceptions.ErrAcceptRequest(err)
	}

	c.remove(requestID)
	c.notifier.Notify(constvars.NotifyRequestAccepted, models.SeveritySuccess)
	utils.LogBusinessEvent(c.log, constvars.TriageEventAccepted, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingSessionRequestKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	c.publish(ctx, models.TriageEvent{
		Event:          constvars.TriageEventAccepted,
		RequestID:      requestID,
		PsychologistID: c.session.PsychologistID,
		PatientID:      patient.ID,
		PatientEmail:   email,
		Status:         constvars.RequestStatusAccepted,
		OccurredAt:     c.now(),
	})
	return nil
}

// Reject marks a pending request rejected. No patient is created.
func (c *Controller) Reject(ctx context.Context, requestID string) error {
	if err := c.begin(requestID); err != nil {
		return err
	}
	defer c.finish(requestID)

	snapshot, _ := c.Lookup(requestID)
	err := c.client.UpdateRequestStatus(ctx, requestID, constvars.RequestStatusRejected, constvars.TriageNoteRejected)
	if err != nil {
		c.log.Error("triage.Controller failed to mark request rejected",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionRequestKey, requestID),
			zap.Error(err),
		)
		c.notifier.Notify(constvars.NotifyRejectFailed, models.SeverityError)
		return exceptions.ErrRejectRequest(err)
	}

	c.remove(requestID)
	c.notifier.Notify(constvars.NotifyRequestRejected, models.SeverityInfo)
	utils.LogBusinessEvent(c.log, constvars.TriageEventRejected, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingSessionRequestKey, requestID),
	)
	c.publish(ctx, models.TriageEvent{
		Event:          constvars.TriageEventRejected,
		RequestID:      requestID,
		PsychologistID: c.session.PsychologistID,
		PatientEmail:   utils.NormalizeEmail(snapshot.PatientEmail),
		Status:         constvars.RequestStatusRejected,
		OccurredAt:     c.now(),
	})
	return nil
}

// Pending returns a copy of the pending list.
func (c *Controller) Pending() []models.SessionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SessionRequest{}, c.pending...)
}

func (c *Controller) Lookup(requestID string) (models.SessionRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, request := range c.pending {
		if request.ID == requestID {
			return request, true
		}
	}
	return models.SessionRequest{}, false
}

func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Controller) IsProcessing(requestID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[requestID]
	return ok
}

// InFlight returns the ids currently being accepted or rejected, sorted.
func (c *Controller) InFlight() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.inFlight))
	for id := range c.inFlight {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// begin marks requestID in flight if it is pending and not already running.
func (c *Controller) begin(requestID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, running := c.inFlight[requestID]; running {
		return exceptions.ErrRequestInFlight(ErrInFlight, requestID)
	}
	for _, request := range c.pending {
		if request.ID == requestID {
			c.inFlight[requestID] = struct{}{}
			return nil
		}
	}
	return exceptions.ErrRequestNotPending(ErrNotPending, requestID)
}

func (c *Controller) finish(requestID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, requestID)
}

func (c *Controller) remove(requestID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved[requestID] = struct{}{}
	for i, request := range c.pending {
		if request.ID == requestID {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

func (c *Controller) publish(ctx context.Context, event models.TriageEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishTriageEvent(ctx, event); err != nil {
		c.log.Warn("triage.Controller failed to publish triage event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.String(constvars.LoggingSessionRequestKey, event.RequestID),
			zap.Error(err),
		)
	}
}
