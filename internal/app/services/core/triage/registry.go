package triage

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Registry keeps one Controller per psychologist, each built with that
// psychologist's session and notifier.
type Registry struct {
	log    *zap.Logger
	client contracts.SchedulingDataClient
	hub    contracts.NotificationHub
	opts   []Option

	mu          sync.Mutex
	controllers map[string]*Controller
}

func NewRegistry(client contracts.SchedulingDataClient, hub contracts.NotificationHub, log *zap.Logger, opts ...Option) *Registry {
	return &Registry{
		log:         log,
		client:      client,
		hub:         hub,
		opts:        opts,
		controllers: make(map[string]*Controller),
	}
}

func (r *Registry) For(session models.Session) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controllers[session.PsychologistID]; ok {
		return c
	}
	c := NewController(session, r.client, r.hub.For(session.PsychologistID), r.log, r.opts...)
	r.controllers[session.PsychologistID] = c
	return c
}

func (r *Registry) Controllers() []*Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	controllers := make([]*Controller, 0, len(r.controllers))
	for _, c := range r.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}

// RefreshAll reloads every registered controller quietly and returns the
// number of failures. A non-nil limiter paces the reloads against the data
// source.
func (r *Registry) RefreshAll(ctx context.Context, limiter *rate.Limiter) int {
	failed := 0
	for _, c := range r.Controllers() {
		if ctx.Err() != nil {
			return failed
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return failed
			}
		}
		if err := c.Refresh(ctx); err != nil {
			failed++
		}
	}
	return failed
}
