package cart

import (
	"time"

	"cart-recovery/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyToken       = errs.New("cart token must not be empty")
	ErrInvalidStatus    = errs.New("invalid cart status")
	ErrNoRecipient      = errs.New("cart has no email recipient")
	ErrNonMonotonicStep = errs.New("email step must only increase")
	ErrNotAbandoned     = errs.New("cart is not abandoned")
	ErrTerminalStatus   = errs.New("cart is in a terminal status")
	ErrInvalidEmailStep = errs.New("email step must be positive")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusAbandoned Status = "abandoned"
	StatusRecovered Status = "recovered"
	StatusExpired   Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusAbandoned, StatusRecovered, StatusExpired:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Record is the durable abandoned-cart entity. The restore key is never part
// of the record; it is recomputed from the token at verification time.
type Record struct {
	ID              uuid.UUID
	Token           string
	Email           string
	Items           Items
	TotalCents      int64
	Currency        string
	Status          Status
	LastActivityAt  *time.Time
	AbandonedAt     *time.Time
	LastEmailStep   int
	LastEmailSentAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRecord builds an active record for a freshly tracked cart.
func NewRecord(token, email string, items Items, totalCents int64, currency string, now time.Time) (*Record, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	activity := now
	return &Record{
		ID:             uuid.New(),
		Token:          token,
		Email:          email,
		Items:          items,
		TotalCents:     totalCents,
		Currency:       currency,
		Status:         StatusActive,
		LastActivityAt: &activity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Abandon moves an active record to abandoned. Records with no recorded
// activity are exempt from time-based transitions and stay active.
func (r *Record) Abandon(now time.Time) error {
	if r.Status != StatusActive {
		return ErrInvalidStatus
	}
	if r.LastActivityAt == nil {
		return ErrInvalidStatus
	}
	r.Status = StatusAbandoned
	abandonedAt := now
	r.AbandonedAt = &abandonedAt
	r.UpdatedAt = now
	return nil
}

// Expire is terminal for the sweep; recovered carts are never expired.
func (r *Record) Expire(now time.Time) error {
	if r.Status != StatusActive && r.Status != StatusAbandoned {
		return ErrTerminalStatus
	}
	r.Status = StatusExpired
	r.UpdatedAt = now
	return nil
}

// Reactivate is the only backward edge in the lifecycle (signed restore
// link). AbandonedAt and LastEmailStep are deliberately left untouched so a
// re-abandoned cart resumes its email cadence instead of restarting it.
func (r *Record) Reactivate(now time.Time) {
	r.Status = StatusActive
	r.UpdatedAt = now
}

// MarkEmailSent records a successful recovery send. Steps only increase and
// are only recorded while the cart is abandoned and has a recipient.
func (r *Record) MarkEmailSent(step int, now time.Time) error {
	if step <= 0 {
		return ErrInvalidEmailStep
	}
	if r.Email == "" {
		return ErrNoRecipient
	}
	if r.Status != StatusAbandoned {
		return ErrNotAbandoned
	}
	if step <= r.LastEmailStep {
		return ErrNonMonotonicStep
	}
	r.LastEmailStep = step
	sentAt := now
	r.LastEmailSentAt = &sentAt
	r.UpdatedAt = now
	return nil
}

// Touch refreshes activity on a still-live cart (tracking upsert).
func (r *Record) Touch(now time.Time) {
	activity := now
	r.LastActivityAt = &activity
	r.UpdatedAt = now
}

func (r *Record) InactiveSince(cutoff time.Time) bool {
	return r.LastActivityAt != nil && r.LastActivityAt.Before(cutoff)
}
