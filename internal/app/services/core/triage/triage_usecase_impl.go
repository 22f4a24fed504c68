package triage

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
)

type triageUsecase struct {
	Registry *Registry
}

func NewTriageUsecase(registry *Registry) contracts.TriageUsecase {
	return &triageUsecase{Registry: registry}
}

// ListPending reloads the session's pending list, as the triage page does on
// every visit.
func (uc *triageUsecase) ListPending(ctx context.Context, session models.Session) (*responses.PendingRequests, error) {
	controller := uc.Registry.For(session)
	if err := controller.LoadPending(ctx); err != nil {
		return nil, err
	}
	return buildPendingResponse(controller), nil
}

func (uc *triageUsecase) Accept(ctx context.Context, session models.Session, requestID string) error {
	controller, snapshot, err := uc.resolve(ctx, session, requestID)
	if err != nil {
		return err
	}
	return controller.Accept(ctx, requestID, snapshot)
}

func (uc *triageUsecase) Reject(ctx context.Context, session models.Session, requestID string) error {
	controller, _, err := uc.resolve(ctx, session, requestID)
	if err != nil {
		return err
	}
	return controller.Reject(ctx, requestID)
}

// resolve finds the pending snapshot, loading the list once if this instance
// has not seen the session yet.
func (uc *triageUsecase) resolve(ctx context.Context, session models.Session, requestID string) (*Controller, models.SessionRequest, error) {
	controller := uc.Registry.For(session)
	if !controller.Loaded() {
		if err := controller.LoadPending(ctx); err != nil {
			return nil, models.SessionRequest{}, err
		}
	}

	snapshot, ok := controller.Lookup(requestID)
	if !ok {
		return nil, models.SessionRequest{}, exceptions.ErrRequestNotPending(ErrNotPending, requestID)
	}
	return controller, snapshot, nil
}

func buildPendingResponse(controller *Controller) *responses.PendingRequests {
	pending := controller.Pending()
	result := &responses.PendingRequests{
		Requests:   make([]responses.PendingRequest, 0, len(pending)),
		Total:      len(pending),
		Processing: controller.InFlight(),
	}
	for _, request := range pending {
		result.Requests = append(result.Requests, responses.PendingRequest{
			SessionRequest: request,
			UrgencyLabel:   request.UrgencyLabel(),
			Processing:     controller.IsProcessing(request.ID),
		})
	}
	return result
}
