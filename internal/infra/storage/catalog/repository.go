package catalog

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/pkg/psqlbuilder"
)

// Repository reads the static site content catalog. All methods are
// read-only; the catalog is maintained out of band.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices returns all bookable service categories in display order.
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"service_type",
		"name",
		"tagline",
		"description",
		"sort_order",
	).
		From("services").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Type, &s.Name, &s.Tagline, &s.Description, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListPackages returns all priced packages in display order.
func (r *Repository) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"service_type",
		"name",
		"price",
		"description",
		"features",
		"sort_order",
	).
		From("packages").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var packages []*domain.Package
	for rows.Next() {
		var p domain.Package
		if err := rows.Scan(&p.ID, &p.ServiceType, &p.Name, &p.Price, &p.Description, pq.Array(&p.Features), &p.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListPackages - scan package: %v", ErrScanRow, err)
		}
		packages = append(packages, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPackages - iterate rows: %v", ErrScanRow, err)
	}

	return packages, nil
}

// ListProjects returns all portfolio entries in display order.
func (r *Repository) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"client",
		"category",
		"year",
		"video_url",
		"thumbnail_url",
		"sort_order",
	).
		From("projects").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProjects - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProjects - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Client, &p.Category, &p.Year, &p.VideoURL, &p.ThumbnailURL, &p.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListProjects - scan project: %v", ErrScanRow, err)
		}
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProjects - iterate rows: %v", ErrScanRow, err)
	}

	return projects, nil
}

// ListTestimonials returns all client testimonials in display order.
func (r *Repository) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"author",
		"role",
		"company",
		"quote",
		"sort_order",
	).
		From("testimonials").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTestimonials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTestimonials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var testimonials []*domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Role, &t.Company, &t.Quote, &t.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListTestimonials - scan testimonial: %v", ErrScanRow, err)
		}
		testimonials = append(testimonials, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTestimonials - iterate rows: %v", ErrScanRow, err)
	}

	return testimonials, nil
}
