package wizard

import (
	"context"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/picker"
	wizardModels "github.com/framelight/FLS-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	Create(caps picker.Capabilities) *wizardModels.Snapshot
	Get(id string) (*wizardModels.Snapshot, error)
	SelectService(id string, serviceType string) (*wizardModels.Snapshot, error)
	SelectPackage(id string, packageID string) (*wizardModels.Snapshot, error)
	Back(id string) (*wizardModels.Snapshot, error)
	Advance(id string) (*wizardModels.Snapshot, error)
	SetContact(id string, contact domain.ContactDetails) (*wizardModels.Snapshot, error)
	OpenPicker(id string, mode string, initialDate string, initialTime string) (*wizardModels.Snapshot, error)
	PickerSelectDate(id string, dateStr string) (*wizardModels.Snapshot, error)
	PickerMonthNav(id string, direction string) (*wizardModels.Snapshot, error)
	PickerInput(id string, input picker.Input) (*wizardModels.Snapshot, error)
	PickerConfirm(id string) (*wizardModels.Snapshot, error)
	PickerClose(id string) (*wizardModels.Snapshot, error)
	Submit(ctx context.Context, id string) (*wizardModels.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
