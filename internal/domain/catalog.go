package domain

// Catalog content models. The catalog is read-only site content; nothing in
// the booking flow writes to it.

// CatalogSection names one of the listable content collections.
type CatalogSection string

const (
	SectionServices     CatalogSection = "services"
	SectionPackages     CatalogSection = "packages"
	SectionProjects     CatalogSection = "projects"
	SectionTestimonials CatalogSection = "testimonials"
)

// Valid reports whether the section is one of the known collections.
func (s CatalogSection) Valid() bool {
	switch s {
	case SectionServices, SectionPackages, SectionProjects, SectionTestimonials:
		return true
	}
	return false
}

// Service is a bookable service category as presented on the site.
type Service struct {
	ID          string
	Type        ServiceType
	Name        string
	Tagline     string
	Description string
	SortOrder   int
}

// Package is a priced offering within a service category.
type Package struct {
	ID          string
	ServiceType ServiceType
	Name        string
	Price       string // display string, e.g. "from €1,200"
	Description string
	Features    []string
	SortOrder   int
}

// Project is a portfolio entry.
type Project struct {
	ID           string
	Title        string
	Client       string
	Category     string
	Year         int
	VideoURL     string
	ThumbnailURL string
	SortOrder    int
}

// Testimonial is a client quote shown on the site.
type Testimonial struct {
	ID        string
	Author    string
	Role      string
	Company   string
	Quote     string
	SortOrder int
}
