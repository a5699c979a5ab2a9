// Package submit_inquiry validates a completed booking inquiry and relays it
// to the operator by mail. One attempt per call; a failed relay leaves the
// caller free to retry.
package submit_inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/integrations/mailrelay"
)

// UseCase relays validated booking inquiries.
type UseCase struct {
	relayClient  MailRelayClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(relayClient MailRelayClient, logger Logger) *UseCase {
	return &UseCase{
		relayClient:  relayClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the inquiry, flattens it into the relay payload and
// sends it. The payload uses YYYY-MM-DD dates and 24-hour HH:MM times;
// optional fields travel as empty strings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("SubmitInquiry: validation failed: %v", err)
		return nil, err
	}

	inq := &req.Inquiry
	msg := &mailrelay.InquiryMessage{
		Service: string(inq.ServiceType),
		Date:    inq.Date.Format(domain.DateFormat),
		Time:    inq.Time.String(),
		Name:    inq.Contact.Name,
		Email:   inq.Contact.Email,
		Phone:   inq.Contact.Phone,
		Company: inq.Contact.Company,
		Brief:   inq.Contact.Brief,
		Budget:  inq.Contact.Budget,
	}

	if err := uc.relayClient.SendInquiry(ctx, msg); err != nil {
		if errors.Is(err, mailrelay.ErrRelayRejected) || errors.Is(err, mailrelay.ErrRelayFailed) {
			uc.logger.Error("SubmitInquiry: relay refused inquiry for email=%s: %v", msg.Email, err)
			return nil, fmt.Errorf("%w: %v", ErrRelayFailed, err)
		}
		uc.logger.Error("SubmitInquiry: relay unreachable for email=%s: %v", msg.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}

	uc.logger.Info("SubmitInquiry: relayed inquiry service=%s, date=%s, email=%s",
		msg.Service, msg.Date, msg.Email)

	return &Response{
		Confirmation: ConfirmationMessage(inq.Contact.Name),
	}, nil
}

// ConfirmationMessage builds the display confirmation with the client's name.
func ConfirmationMessage(name string) string {
	return fmt.Sprintf("Thanks, %s! Your booking request has been sent. We'll be in touch within one business day.", name)
}
