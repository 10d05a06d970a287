// Command seed-db loads catalog and marketing content from JSON files into
// PostgreSQL. It is idempotent: rows are upserted by ID.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/compustore/backend/internal/catalog"
	"github.com/compustore/backend/internal/content"
	"github.com/compustore/backend/internal/repository"
)

type productJSON struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Price          int64  `json:"price"`
	Brand          string `json:"brand"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Specifications []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"specifications"`
}

func main() {
	var (
		databaseURL string
		seedDir     string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&seedDir, "seed-dir", "db/seed", "directory containing seed JSON files")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, seedDir); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, seedDir string) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	products := repository.NewProductRepository(pool)
	contentRepo := repository.NewContentRepository(pool)

	// The four data sets are independent; seed them concurrently.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return seedProducts(ctx, products, seedDir+"/products.json") })
	g.Go(func() error { return seedGallery(ctx, contentRepo, seedDir+"/gallery.json") })
	g.Go(func() error { return seedTeam(ctx, contentRepo, seedDir+"/team.json") })
	g.Go(func() error { return seedTestimonials(ctx, contentRepo, seedDir+"/testimonials.json") })
	return g.Wait()
}

func readJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "parse JSON")
	}
	return out, nil
}

func seedProducts(ctx context.Context, repo *repository.ProductRepository, path string) error {
	items, err := readJSON[productJSON](path)
	if err != nil {
		return errors.Wrap(err, "products")
	}

	slog.Info("upserting products", slog.Int("count", len(items)))

	for _, p := range items {
		specs := make([]catalog.Specification, 0, len(p.Specifications))
		for _, s := range p.Specifications {
			specs = append(specs, catalog.Specification{Key: s.Key, Value: s.Value})
		}

		if err := repo.Upsert(ctx, catalog.Product{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category,
			Price:          p.Price,
			Brand:          p.Brand,
			Description:    p.Description,
			Image:          p.Image,
			Specifications: specs,
		}); err != nil {
			return errors.Wrapf(err, "product %s", p.ID)
		}
	}
	return nil
}

func seedGallery(ctx context.Context, repo *repository.ContentRepository, path string) error {
	items, err := readJSON[content.GalleryImage](path)
	if err != nil {
		return errors.Wrap(err, "gallery")
	}

	slog.Info("upserting gallery images", slog.Int("count", len(items)))

	for _, g := range items {
		if err := repo.UpsertGalleryImage(ctx, g); err != nil {
			return errors.Wrapf(err, "gallery image %s", g.ID)
		}
	}
	return nil
}

func seedTeam(ctx context.Context, repo *repository.ContentRepository, path string) error {
	items, err := readJSON[content.TeamMember](path)
	if err != nil {
		return errors.Wrap(err, "team")
	}

	slog.Info("upserting team members", slog.Int("count", len(items)))

	for _, m := range items {
		if err := repo.UpsertTeamMember(ctx, m); err != nil {
			return errors.Wrapf(err, "team member %s", m.ID)
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, repo *repository.ContentRepository, path string) error {
	items, err := readJSON[content.Testimonial](path)
	if err != nil {
		return errors.Wrap(err, "testimonials")
	}

	slog.Info("upserting testimonials", slog.Int("count", len(items)))

	for _, tm := range items {
		if err := repo.UpsertTestimonial(ctx, tm); err != nil {
			return errors.Wrapf(err, "testimonial %s", tm.ID)
		}
	}
	return nil
}
