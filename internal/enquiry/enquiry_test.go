package enquiry

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	created []*Enquiry
	err     error
}

func (m *mockRepo) Create(_ context.Context, e *Enquiry) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, e)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]Enquiry, error) {
	return nil, nil
}

type mockPublisher struct {
	received []*Enquiry
	err      error
}

func (m *mockPublisher) EnquiryReceived(_ context.Context, e *Enquiry) error {
	m.received = append(m.received, e)
	return m.err
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:    "Jordan Smith",
		Email:   "jordan@example.com",
		Phone:   "+1 555 0100",
		Subject: "Bulk order",
		Message: "Looking for 20 workstations.",
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{}
	pub := &mockPublisher{}
	svc := NewService(repo, pub)

	e, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Jordan Smith", e.Name)
	assert.False(t, e.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
	require.Len(t, pub.received, 1)
	assert.Equal(t, e, pub.received[0])
}

func TestSubmit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"missing name", func(r *SubmitRequest) { r.Name = "" }},
		{"whitespace name", func(r *SubmitRequest) { r.Name = "   " }},
		{"missing email", func(r *SubmitRequest) { r.Email = "" }},
		{"missing message", func(r *SubmitRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo, nil)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidEnquiry)
			assert.Empty(t, repo.created)
		})
	}
}

func TestSubmit_TrimsFields(t *testing.T) {
	svc := NewService(&mockRepo{}, nil)

	req := validRequest()
	req.Name = "  Jordan Smith  "
	req.Message = "\nHello\n"

	e, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", e.Name)
	assert.Equal(t, "Hello", e.Message)
}

func TestSubmit_RepoError(t *testing.T) {
	svc := NewService(&mockRepo{err: errors.New("db down")}, nil)

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create enquiry")
}

func TestSubmit_PublishFailureIgnored(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockPublisher{err: errors.New("broker down")})

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}
