// Package catalog serves the static site content: services, packages,
// portfolio projects and testimonials. Strictly read-only.
package catalog

import (
	"context"
	"fmt"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

// Content holds one section's entries; only the requested section's slice
// is populated.
type Content struct {
	Section      domain.CatalogSection
	Services     []*domain.Service
	Packages     []*domain.Package
	Projects     []*domain.Project
	Testimonials []*domain.Testimonial
}

// Service reads catalog content through the repository.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService creates the catalog service.
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetSection returns all entries of one content section in display order.
func (s *Service) GetSection(ctx context.Context, section domain.CatalogSection) (*Content, error) {
	if !section.Valid() {
		s.logger.Warn("GetSection: unknown section %q", section)
		return nil, ErrUnknownSection
	}

	content := &Content{Section: section}
	var err error

	switch section {
	case domain.SectionServices:
		content.Services, err = s.repo.ListServices(ctx)
	case domain.SectionPackages:
		content.Packages, err = s.repo.ListPackages(ctx)
	case domain.SectionProjects:
		content.Projects, err = s.repo.ListProjects(ctx)
	case domain.SectionTestimonials:
		content.Testimonials, err = s.repo.ListTestimonials(ctx)
	}

	if err != nil {
		s.logger.Error("GetSection: repository error for section=%s: %v", section, err)
		return nil, fmt.Errorf("%w: GetSection - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSection: section=%s served", section)
	return content, nil
}
