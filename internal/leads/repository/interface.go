package repository

import (
	"context"

	"github.com/google/uuid"
)

// LeadReader provides read-only access to lead data.
type LeadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context, params ListParams) ([]Lead, int, error)
	CountByCategory(ctx context.Context) (CategoryCounts, error)
}

// LeadWriter stores new leads.
type LeadWriter interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
}

// LeadsRepository is the full lead store.
type LeadsRepository interface {
	LeadReader
	LeadWriter
}

var _ LeadsRepository = (*Repository)(nil)
