package notifier

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDismissAfter is how long a notification stays active.
const DefaultDismissAfter = time.Second

type entry struct {
	notification models.Notification
	timer        *time.Timer
}

// Notifier keeps the active notifications of one psychologist. Each one is
// removed by its own timer; Close stops every pending timer.
type Notifier struct {
	log            *zap.Logger
	psychologistID string
	dismissAfter   time.Duration
	now            func() time.Time

	mu      sync.Mutex
	entries []*entry
	closed  bool
}

func NewNotifier(log *zap.Logger, psychologistID string, dismissAfter time.Duration) *Notifier {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Notifier{
		log:            log,
		psychologistID: psychologistID,
		dismissAfter:   dismissAfter,
		now:            time.Now,
	}
}

// Notify never blocks on delivery. Calls after Close are dropped.
func (n *Notifier) Notify(message string, severity models.Severity) {
	notification := models.Notification{
		ID:        utils.GenerateID(),
		Message:   message,
		Severity:  severity,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	e := &entry{notification: notification}
	e.timer = time.AfterFunc(n.dismissAfter, func() { n.Dismiss(notification.ID) })
	n.entries = append(n.entries, e)
	n.mu.Unlock()

	n.log.Info("Notification raised",
		zap.String(constvars.LoggingPsychologistIDKey, n.psychologistID),
		zap.String(constvars.LoggingNotificationIDKey, notification.ID),
		zap.String(constvars.LoggingSeverityKey, string(severity)),
		zap.String("message", message),
	)
}

// Active returns the notifications not yet dismissed, oldest first.
func (n *Notifier) Active() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	active := make([]models.Notification, 0, len(n.entries))
	for _, e := range n.entries {
		active = append(active, e.notification)
	}
	return active
}

// Dismiss removes a notification before its timer fires.
func (n *Notifier) Dismiss(notificationID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.notification.ID != notificationID {
			continue
		}
		e.timer.Stop()
		n.entries = append(n.entries[:i], n.entries[i+1:]...)
		return true
	}
	return false
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, e := range n.entries {
		e.timer.Stop()
	}
	n.entries = nil
	n.closed = true
}

// Hub hands out one Notifier per psychologist.
type Hub struct {
	log          *zap.Logger
	dismissAfter time.Duration

	mu        sync.Mutex
	notifiers map[string]*Notifier
	closed    bool
}

func NewHub(log *zap.Logger, dismissAfter time.Duration) *Hub {
	return &Hub{
		log:          log,
		dismissAfter: dismissAfter,
		notifiers:    make(map[string]*Notifier),
	}
}

func (h *Hub) For(psychologistID string) contracts.Notifier {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n, ok := h.notifiers[psychologistID]; ok {
		return n
	}
	n := NewNotifier(h.log, psychologistID, h.dismissAfter)
	if h.closed {
		n.Close()
	}
	h.notifiers[psychologistID] = n
	return n
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, n := range h.notifiers {
		n.Close()
	}
	h.closed = true
}
