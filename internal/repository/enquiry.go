package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/compustore/backend/internal/enquiry"
)

const (
	createEnquirySQL = `INSERT INTO enquiries (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listEnquiriesSQL = `SELECT id, name, email, phone, subject, message, created_at
		FROM enquiries ORDER BY created_at DESC`
)

var _ enquiry.Repository = (*EnquiryRepository)(nil)

// EnquiryRepository implements enquiry.Repository backed by PostgreSQL.
type EnquiryRepository struct {
	db DB
}

// NewEnquiryRepository returns an EnquiryRepository that uses the given pool.
func NewEnquiryRepository(db DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create persists a new enquiry.
func (r *EnquiryRepository) Create(ctx context.Context, e *enquiry.Enquiry) error {
	_, err := r.db.Exec(ctx, createEnquirySQL,
		e.ID, e.Name, e.Email, e.Phone, e.Subject, e.Message, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating enquiry: %w", err)
	}
	return nil
}

// List returns all enquiries, newest first.
func (r *EnquiryRepository) List(ctx context.Context) ([]enquiry.Enquiry, error) {
	rows, err := r.db.Query(ctx, listEnquiriesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing enquiries: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (enquiry.Enquiry, error) {
		var e enquiry.Enquiry
		err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Subject, &e.Message, &e.CreatedAt)
		return e, err
	})
}
