package catalog

import (
	"context"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

// CatalogRepository is the read-only content store.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListPackages(ctx context.Context) ([]*domain.Package, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error)
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
