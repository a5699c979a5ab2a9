package get_catalog

import (
	"context"

	"github.com/framelight/FLS-BookingService/internal/domain"
	catalogService "github.com/framelight/FLS-BookingService/internal/service/catalog"
)

type CatalogService interface {
	GetSection(ctx context.Context, section domain.CatalogSection) (*catalogService.Content, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
