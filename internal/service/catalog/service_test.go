package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

type fakeRepo struct {
	services     []*domain.Service
	packages     []*domain.Package
	projects     []*domain.Project
	testimonials []*domain.Testimonial
	err          error
}

func (r *fakeRepo) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return r.services, r.err
}

func (r *fakeRepo) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return r.packages, r.err
}

func (r *fakeRepo) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return r.projects, r.err
}

func (r *fakeRepo) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return r.testimonials, r.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetSection_Services(t *testing.T) {
	repo := &fakeRepo{
		services: []*domain.Service{
			{ID: "videography", Type: domain.ServiceVideography, Name: "Videography"},
		},
	}
	svc := NewService(repo, nopLogger{})

	content, err := svc.GetSection(context.Background(), domain.SectionServices)

	require.NoError(t, err)
	assert.Equal(t, domain.SectionServices, content.Section)
	require.Len(t, content.Services, 1)
	assert.Equal(t, "Videography", content.Services[0].Name)
	assert.Empty(t, content.Packages)
}

func TestGetSection_Packages(t *testing.T) {
	repo := &fakeRepo{
		packages: []*domain.Package{
			{ID: "p1", ServiceType: domain.ServiceVideography, Name: "Essential", Price: "$2,500"},
		},
	}
	svc := NewService(repo, nopLogger{})

	content, err := svc.GetSection(context.Background(), domain.SectionPackages)

	require.NoError(t, err)
	require.Len(t, content.Packages, 1)
	assert.Equal(t, "Essential", content.Packages[0].Name)
}

func TestGetSection_UnknownSection(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetSection(context.Background(), "pricing")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestGetSection_RepositoryError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetSection(context.Background(), domain.SectionProjects)
	assert.ErrorIs(t, err, ErrInternal)
}
