package get_catalog

import (
	catalogService "github.com/framelight/FLS-BookingService/internal/service/catalog"
)

// SectionResponse HTTP response model; only the requested section's list is
// present.
type SectionResponse struct {
	Section      string        `json:"section"`
	Services     []Service     `json:"services,omitempty"`
	Packages     []Package     `json:"packages,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

type Service struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
}

type Package struct {
	ID          string   `json:"id"`
	ServiceType string   `json:"serviceType"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Client       string `json:"client,omitempty"`
	Category     string `json:"category,omitempty"`
	Year         int    `json:"year,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Quote   string `json:"quote"`
}

// FromServiceContent converts the service response into the HTTP response.
func FromServiceContent(content *catalogService.Content) *SectionResponse {
	resp := &SectionResponse{Section: string(content.Section)}

	for _, s := range content.Services {
		resp.Services = append(resp.Services, Service{
			ID:          s.ID,
			Type:        string(s.Type),
			Name:        s.Name,
			Tagline:     s.Tagline,
			Description: s.Description,
		})
	}

	for _, p := range content.Packages {
		resp.Packages = append(resp.Packages, Package{
			ID:          p.ID,
			ServiceType: string(p.ServiceType),
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Features:    p.Features,
		})
	}

	for _, p := range content.Projects {
		resp.Projects = append(resp.Projects, Project{
			ID:           p.ID,
			Title:        p.Title,
			Client:       p.Client,
			Category:     p.Category,
			Year:         p.Year,
			VideoURL:     p.VideoURL,
			ThumbnailURL: p.ThumbnailURL,
		})
	}

	for _, t := range content.Testimonials {
		resp.Testimonials = append(resp.Testimonials, Testimonial{
			ID:      t.ID,
			Author:  t.Author,
			Role:    t.Role,
			Company: t.Company,
			Quote:   t.Quote,
		})
	}

	return resp
}
