package create_inquiry

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	submitInquiry "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

// CreateInquiryRequest HTTP request model
type CreateInquiryRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"`           // "2025-03-10"
	Time    string `json:"time,omitempty"` // "10:30", optional
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Brief   string `json:"brief"`
	Budget  string `json:"budget,omitempty"`
}

// CreateInquiryResponse HTTP response model
type CreateInquiryResponse struct {
	Confirmation string `json:"confirmation"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateInquiryRequest) ToUseCaseRequest() (*submitInquiry.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	var slot types.TimeString
	if r.Time != "" {
		slot, err = types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
	}

	return &submitInquiry.Request{
		Inquiry: domain.Inquiry{
			ServiceType: domain.ServiceType(r.Service),
			PackageID:   domain.CustomPackageID,
			Date:        date,
			Time:        slot,
			Contact: domain.ContactDetails{
				Name:    r.Name,
				Email:   r.Email,
				Phone:   r.Phone,
				Company: r.Company,
				Brief:   r.Brief,
				Budget:  r.Budget,
			},
		},
	}, nil
}
