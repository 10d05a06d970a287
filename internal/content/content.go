// Package content holds the storefront's read-only marketing data: the
// photo gallery, the staff page, and customer testimonials.
package content

import "context"

// GalleryImage is one photo shown on the store gallery page.
type GalleryImage struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	AltText string `json:"alt_text"`
}

// TeamMember is one entry on the staff page.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

// Testimonial is a customer quote displayed on the home page.
type Testimonial struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
}

// Repository defines read access to marketing content.
type Repository interface {
	GalleryImages(ctx context.Context) ([]GalleryImage, error)
	TeamMembers(ctx context.Context) ([]TeamMember, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
}
