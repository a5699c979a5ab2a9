package create_inquiry

import (
	"context"

	submitInquiry "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
)

type SubmitInquiryUseCase interface {
	Execute(ctx context.Context, req *submitInquiry.Request) (*submitInquiry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
