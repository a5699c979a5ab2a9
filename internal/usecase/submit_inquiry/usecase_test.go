package submit_inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/integrations/mailrelay"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeRelayClient struct {
	sent []*mailrelay.InquiryMessage
	err  error
}

func (c *fakeRelayClient) SendInquiry(ctx context.Context, msg *mailrelay.InquiryMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func newTestUseCase(relay *fakeRelayClient, now time.Time) *UseCase {
	uc := NewUseCase(relay, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validInquiry() domain.Inquiry {
	return domain.Inquiry{
		ServiceType: domain.ServiceVideography,
		PackageID:   "p1",
		Date:        datetime(2025, 3, 10, 0, 0),
		Time:        types.TimeString("10:30"),
		Contact: domain.ContactDetails{
			Name:  "Ada",
			Email: "ada@example.com",
			Brief: "Product launch film",
		},
	}
}

func TestExecute_RelaysFlattenedPayload(t *testing.T) {
	relay := &fakeRelayClient{}
	uc := newTestUseCase(relay, datetime(2025, 3, 10, 8, 0))

	resp, err := uc.Execute(context.Background(), &Request{Inquiry: validInquiry()})

	require.NoError(t, err)
	require.Len(t, relay.sent, 1)

	msg := relay.sent[0]
	assert.Equal(t, "videography", msg.Service)
	assert.Equal(t, "2025-03-10", msg.Date)
	assert.Equal(t, "10:30", msg.Time)
	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.Equal(t, "Product launch film", msg.Brief)
	assert.Empty(t, msg.Phone)
	assert.Empty(t, msg.Company)
	assert.Empty(t, msg.Budget)

	assert.Contains(t, resp.Confirmation, "Ada")
}

func TestExecute_TimeIsOptional(t *testing.T) {
	relay := &fakeRelayClient{}
	uc := newTestUseCase(relay, datetime(2025, 3, 10, 8, 0))

	inq := validInquiry()
	inq.Time = ""

	_, err := uc.Execute(context.Background(), &Request{Inquiry: inq})

	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Empty(t, relay.sent[0].Time)
}

func TestExecute_PastDateRejected(t *testing.T) {
	relay := &fakeRelayClient{}
	uc := newTestUseCase(relay, datetime(2025, 3, 11, 8, 0))

	_, err := uc.Execute(context.Background(), &Request{Inquiry: validInquiry()})

	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, relay.sent)
}

func TestExecute_ValidationFailures(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)

	tests := []struct {
		name   string
		mutate func(inq *domain.Inquiry)
	}{
		{"unknown service", func(inq *domain.Inquiry) { inq.ServiceType = "catering" }},
		{"missing date", func(inq *domain.Inquiry) { inq.Date = time.Time{} }},
		{"off-grid time", func(inq *domain.Inquiry) { inq.Time = "10:15" }},
		{"malformed time", func(inq *domain.Inquiry) { inq.Time = "25:99" }},
		{"missing name", func(inq *domain.Inquiry) { inq.Contact.Name = "  " }},
		{"missing email", func(inq *domain.Inquiry) { inq.Contact.Email = "" }},
		{"email without at", func(inq *domain.Inquiry) { inq.Contact.Email = "ada.example.com" }},
		{"missing brief", func(inq *domain.Inquiry) { inq.Contact.Brief = "" }},
		{"oversized name", func(inq *domain.Inquiry) {
			inq.Contact.Name = strings.Repeat("a", domain.MaxNameLength+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &fakeRelayClient{}
			uc := newTestUseCase(relay, now)

			inq := validInquiry()
			tt.mutate(&inq)

			_, err := uc.Execute(context.Background(), &Request{Inquiry: inq})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, relay.sent)
		})
	}
}

func TestExecute_RelayFailureMapped(t *testing.T) {
	relay := &fakeRelayClient{err: mailrelay.ErrRelayFailed}
	uc := newTestUseCase(relay, datetime(2025, 3, 10, 8, 0))

	_, err := uc.Execute(context.Background(), &Request{Inquiry: validInquiry()})

	assert.ErrorIs(t, err, ErrRelayFailed)
}

func TestExecute_RelayUnreachableMapped(t *testing.T) {
	relay := &fakeRelayClient{err: errors.New("connection refused")}
	uc := newTestUseCase(relay, datetime(2025, 3, 10, 8, 0))

	_, err := uc.Execute(context.Background(), &Request{Inquiry: validInquiry()})

	assert.ErrorIs(t, err, ErrRelayFailed)
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage("Ada")
	assert.Equal(t, "Thanks, Ada! Your booking request has been sent. We'll be in touch within one business day.", msg)
}
