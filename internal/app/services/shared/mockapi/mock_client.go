package mockapi

import (
	"context"
	"errors"
	"fmt"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	OpGetRequests         = "GetRequests"
	OpGetPatients         = "GetPatients"
	OpCreatePatient       = "CreatePatient"
	OpUpdateRequestStatus = "UpdateRequestStatus"
	OpGetAppointments     = "GetAppointments"
	OpFindPsychologist    = "FindPsychologistByEmail"
)

var (
	ErrSimulatedFailure = errors.New("simulated data client failure")
	ErrRequestNotFound  = errors.New("session request not found")
)

var (
	_ contracts.SchedulingDataClient   = (*Client)(nil)
	_ contracts.PsychologistRepository = (*Client)(nil)
)

type Option func(*Client)

// WithLatency delays every call, honoring context cancellation.
func WithLatency(latency time.Duration) Option {
	return func(c *Client) { c.latency = latency }
}

// WithFailureRate makes each call fail with the given probability in [0,1].
func WithFailureRate(rate float64, seed int64) Option {
	return func(c *Client) {
		c.failureRate = rate
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// Client is an in-memory data client. It stands in for the remote API in
// development and tests.
type Client struct {
	log         *zap.Logger
	latency     time.Duration
	failureRate float64
	now         func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	mu            sync.RWMutex
	patients      []models.Patient
	requests      []models.SessionRequest
	appointments  []models.Appointment
	psychologists []models.Psychologist
	failNext      map[string][]error
	calls         map[string]int
}

func NewClient(log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		log:      log,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(1)),
		failNext: make(map[string][]error),
		calls:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FailNext queues err as the outcome of the next call to op.
func (c *Client) FailNext(op string, err error) {
	if err == nil {
		err = ErrSimulatedFailure
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNext[op] = append(c.failNext[op], err)
}

// Calls reports how many times op was invoked, failed calls included.
func (c *Client) Calls(op string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.calls[op]
}

func (c *Client) AddPatient(patient models.Patient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patients = append(c.patients, patient)
}

func (c *Client) AddRequest(request models.SessionRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, request)
}

func (c *Client) AddAppointment(appointment models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appointments = append(c.appointments, appointment)
}

func (c *Client) AddPsychologist(psychologist models.Psychologist) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.psychologists = append(c.psychologists, psychologist)
}

// Request returns the stored request regardless of status.
func (c *Client) Request(requestID string) (models.SessionRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.requests {
		if r.ID == requestID {
			return r, true
		}
	}
	return models.SessionRequest{}, false
}

func (c *Client) GetRequests(ctx context.Context, psychologistID string) ([]models.SessionRequest, error) {
	if err := c.begin(ctx, OpGetRequests); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]models.SessionRequest, 0, len(c.requests))
	for _, r := range c.requests {
		if psychologistID == "" || r.PsychologistID == psychologistID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (c *Client) GetPatients(ctx context.Context, psychologistID string) ([]models.Patient, error) {
	if err := c.begin(ctx, OpGetPatients); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]models.Patient, 0, len(c.patients))
	for _, p := range c.patients {
		if psychologistID == "" || p.PsychologistID == psychologistID {
			result = append(result, p)
		}
	}
	return result, nil
}

// CreatePatient does not enforce email uniqueness; callers check the roster.
func (c *Client) CreatePatient(ctx context.Context, input models.CreatePatientInput) (*models.Patient, error) {
	if err := c.begin(ctx, OpCreatePatient); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := models.Patient{
		ID:             utils.GenerateID(),
		PsychologistID: input.PsychologistID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		BirthDate:      input.BirthDate,
		Age:            input.Age,
		Status:         input.Status,
		CreatedAt:      c.now(),
	}

	c.mu.Lock()
	c.patients = append(c.patients, patient)
	c.mu.Unlock()

	c.log.Debug("mockapi.CreatePatient stored patient",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingPsychologistIDKey, patient.PsychologistID),
	)
	return &patient, nil
}

func (c *Client) UpdateRequestStatus(ctx context.Context, requestID, status, note string) error {
	if err := c.begin(ctx, OpUpdateRequestStatus); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.requests {
		if c.requests[i].ID != requestID {
			continue
		}
		c.requests[i].Status = status
		c.requests[i].Note = note
		c.requests[i].UpdatedAt = c.now()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
}

func (c *Client) GetAppointments(ctx context.Context, psychologistID string) ([]models.Appointment, error) {
	if err := c.begin(ctx, OpGetAppointments); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]models.Appointment, 0, len(c.appointments))
	for _, a := range c.appointments {
		if psychologistID == "" || a.PsychologistID == psychologistID {
			result = append(result, a)
		}
	}
	return result, nil
}

// FindByEmail returns (nil, nil) when no account matches.
func (c *Client) FindByEmail(ctx context.Context, email string) (*models.Psychologist, error) {
	if err := c.begin(ctx, OpFindPsychologist); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.psychologists {
		if strings.EqualFold(p.Email, email) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// begin counts the call, waits the simulated latency and applies any
// injected or random failure.
func (c *Client) begin(ctx context.Context, op string) error {
	c.mu.Lock()
	c.calls[op]++
	var injected error
	if queued := c.failNext[op]; len(queued) > 0 {
		injected = queued[0]
		c.failNext[op] = queued[1:]
	}
	c.mu.Unlock()

	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if injected != nil {
		return exceptions.ErrMockInjectedFailure(injected, op)
	}
	if c.failureRate > 0 && c.roll() < c.failureRate {
		return exceptions.ErrMockInjectedFailure(ErrSimulatedFailure, op)
	}
	return nil
}

func (c *Client) roll() float64 {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Float64()
}
