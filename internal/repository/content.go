package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/compustore/backend/internal/content"
)

const (
	listGallerySQL = `SELECT id, title, image, alt_text FROM gallery_images ORDER BY id`

	listTeamSQL = `SELECT id, name, role, bio, photo FROM team_members ORDER BY id`

	listTestimonialsSQL = `SELECT id, author, location, quote, rating FROM testimonials ORDER BY id`

	upsertGallerySQL = `INSERT INTO gallery_images (id, title, image, alt_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, image = EXCLUDED.image, alt_text = EXCLUDED.alt_text`

	upsertTeamSQL = `INSERT INTO team_members (id, name, role, bio, photo)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role, bio = EXCLUDED.bio, photo = EXCLUDED.photo`

	upsertTestimonialSQL = `INSERT INTO testimonials (id, author, location, quote, rating)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			author = EXCLUDED.author, location = EXCLUDED.location,
			quote = EXCLUDED.quote, rating = EXCLUDED.rating`
)

var _ content.Repository = (*ContentRepository)(nil)

// ContentRepository implements content.Repository backed by PostgreSQL.
type ContentRepository struct {
	db DB
}

// NewContentRepository returns a ContentRepository that uses the given pool.
func NewContentRepository(db DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// GalleryImages returns every gallery image ordered by ID.
func (r *ContentRepository) GalleryImages(ctx context.Context) ([]content.GalleryImage, error) {
	rows, err := r.db.Query(ctx, listGallerySQL)
	if err != nil {
		return nil, fmt.Errorf("listing gallery images: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.GalleryImage, error) {
		var g content.GalleryImage
		err := row.Scan(&g.ID, &g.Title, &g.Image, &g.AltText)
		return g, err
	})
}

// TeamMembers returns every staff entry ordered by ID.
func (r *ContentRepository) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	rows, err := r.db.Query(ctx, listTeamSQL)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.TeamMember, error) {
		var m content.TeamMember
		err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo)
		return m, err
	})
}

// Testimonials returns every testimonial ordered by ID.
func (r *ContentRepository) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	rows, err := r.db.Query(ctx, listTestimonialsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Testimonial, error) {
		var tm content.Testimonial
		err := row.Scan(&tm.ID, &tm.Author, &tm.Location, &tm.Quote, &tm.Rating)
		return tm, err
	})
}

// UpsertGalleryImage inserts or replaces one gallery image. Used by the
// seeding tool.
func (r *ContentRepository) UpsertGalleryImage(ctx context.Context, g content.GalleryImage) error {
	_, err := r.db.Exec(ctx, upsertGallerySQL, g.ID, g.Title, g.Image, g.AltText)
	if err != nil {
		return fmt.Errorf("upserting gallery image %q: %w", g.ID, err)
	}
	return nil
}

// UpsertTeamMember inserts or replaces one staff entry. Used by the seeding
// tool.
func (r *ContentRepository) UpsertTeamMember(ctx context.Context, m content.TeamMember) error {
	_, err := r.db.Exec(ctx, upsertTeamSQL, m.ID, m.Name, m.Role, m.Bio, m.Photo)
	if err != nil {
		return fmt.Errorf("upserting team member %q: %w", m.ID, err)
	}
	return nil
}

// UpsertTestimonial inserts or replaces one testimonial. Used by the seeding
// tool.
func (r *ContentRepository) UpsertTestimonial(ctx context.Context, tm content.Testimonial) error {
	_, err := r.db.Exec(ctx, upsertTestimonialSQL, tm.ID, tm.Author, tm.Location, tm.Quote, tm.Rating)
	if err != nil {
		return fmt.Errorf("upserting testimonial %q: %w", tm.ID, err)
	}
	return nil
}
