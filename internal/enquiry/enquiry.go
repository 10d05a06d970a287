// Package enquiry implements the storefront's contact form: validated
// submissions persisted for follow-up by the sales team.
package enquiry

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// ErrInvalidEnquiry is returned when a submission fails validation.
var ErrInvalidEnquiry = errors.New("invalid enquiry")

// Enquiry is one contact form submission.
type Enquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Repository defines persistence operations for enquiries.
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	List(ctx context.Context) ([]Enquiry, error)
}

// Publisher emits enquiry domain events.
type Publisher interface {
	EnquiryReceived(ctx context.Context, e *Enquiry) error
}

// SubmitRequest holds the input for submitting an enquiry.
type SubmitRequest struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Service encapsulates enquiry submission logic.
type Service struct {
	enquiries Repository
	events    Publisher
	now       func() time.Time
}

// NewService creates an enquiry Service. events may be nil.
func NewService(enquiries Repository, events Publisher) *Service {
	return &Service{
		enquiries: enquiries,
		events:    events,
		now:       time.Now,
	}
}

// Submit validates the request, persists a new enquiry, and returns it.
// Event publishing is best-effort; a broker failure never loses the enquiry.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Enquiry, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	switch {
	case name == "":
		return nil, errors.Wrap(ErrInvalidEnquiry, "name required")
	case email == "":
		return nil, errors.Wrap(ErrInvalidEnquiry, "email required")
	case message == "":
		return nil, errors.Wrap(ErrInvalidEnquiry, "message required")
	}

	e := &Enquiry{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	if err := s.enquiries.Create(ctx, e); err != nil {
		return nil, errors.Wrap(err, "create enquiry")
	}

	if s.events != nil {
		// Best effort: the submission is already durable.
		_ = s.events.EnquiryReceived(ctx, e)
	}

	return e, nil
}
