package contracts

import (
	"context"
	"lunysse-service/internal/app/models"
)

type TriageEventPublisher interface {
	PublishTriageEvent(ctx context.Context, event models.TriageEvent) error
}
