package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	BuyerType           string
	Timeline            string
	Budget              string
	ViewingTime         []string
	Attendees           string
	HasAgent            string
	InterestedInShowing bool
	AgreedToTerms       bool
	LeadScore           int
	LeadCategory        string
	ScoreTimeline       int
	ScoreBuyerType      int
	ScoreBudget         int
	ScoreShowing        int
	ScoreVersion        string
	Source              string
	PropertyAddress     string
	CreatedAt           time.Time
}

type CreateLeadParams struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	BuyerType           string
	Timeline            string
	Budget              string
	ViewingTime         []string
	Attendees           string
	HasAgent            string
	InterestedInShowing bool
	AgreedToTerms       bool
	LeadScore           int
	LeadCategory        string
	ScoreTimeline       int
	ScoreBuyerType      int
	ScoreBudget         int
	ScoreShowing        int
	ScoreVersion        string
	Source              string
	PropertyAddress     string
}

const leadColumns = `id, first_name, last_name, email, phone, buyer_type, timeline, budget,
	viewing_time, attendees, has_agent, interested_in_showing, agreed_to_terms,
	lead_score, lead_category, score_timeline, score_buyer_type, score_budget, score_showing,
	score_version, source, property_address, created_at`

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email, &lead.Phone,
		&lead.BuyerType, &lead.Timeline, &lead.Budget,
		&lead.ViewingTime, &lead.Attendees, &lead.HasAgent, &lead.InterestedInShowing, &lead.AgreedToTerms,
		&lead.LeadScore, &lead.LeadCategory, &lead.ScoreTimeline, &lead.ScoreBuyerType, &lead.ScoreBudget, &lead.ScoreShowing,
		&lead.ScoreVersion, &lead.Source, &lead.PropertyAddress, &lead.CreatedAt,
	)
	return lead, err
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	viewing := params.ViewingTime
	if viewing == nil {
		viewing = []string{}
	}

	lead, err := scanLead(r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			first_name, last_name, email, phone, buyer_type, timeline, budget,
			viewing_time, attendees, has_agent, interested_in_showing, agreed_to_terms,
			lead_score, lead_category, score_timeline, score_buyer_type, score_budget, score_showing,
			score_version, source, property_address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING `+leadColumns,
		params.FirstName, params.LastName, params.Email, params.Phone, params.BuyerType, params.Timeline, params.Budget,
		viewing, params.Attendees, params.HasAgent, params.InterestedInShowing, params.AgreedToTerms,
		params.LeadScore, params.LeadCategory, params.ScoreTimeline, params.ScoreBuyerType, params.ScoreBudget, params.ScoreShowing,
		params.ScoreVersion, params.Source, params.PropertyAddress,
	))
	if err != nil {
		return Lead{}, fmt.Errorf("insert lead: %w", err)
	}

	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

type ListParams struct {
	Category *string
	Search   string
	Offset   int
	Limit    int
}

// List returns one page of leads, newest first, and the unpaged total.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Lead, int, error) {
	whereClause, args, argIdx := buildLeadListWhere(params)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leads WHERE %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM leads
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, leadColumns, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return leads, total, nil
}

func buildLeadListWhere(params ListParams) (string, []any, int) {
	whereClauses := []string{"TRUE"}
	args := []any{}
	argIdx := 1

	if params.Category != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lead_category = $%d", argIdx))
		args = append(args, *params.Category)
		argIdx++
	}
	if params.Search != "" {
		searchPattern := "%" + params.Search + "%"
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		))
		args = append(args, searchPattern)
		argIdx++
	}

	return strings.Join(whereClauses, " AND "), args, argIdx
}

// CategoryCounts holds the number of leads per category.
type CategoryCounts struct {
	Hot  int
	Warm int
	Cold int
}

// Total sums all categories.
func (c CategoryCounts) Total() int {
	return c.Hot + c.Warm + c.Cold
}

// CountByCategory aggregates leads per category in one pass.
func (r *Repository) CountByCategory(ctx context.Context) (CategoryCounts, error) {
	var counts CategoryCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE lead_category = 'hot'),
			COUNT(*) FILTER (WHERE lead_category = 'warm'),
			COUNT(*) FILTER (WHERE lead_category = 'cold')
		FROM leads
	`).Scan(&counts.Hot, &counts.Warm, &counts.Cold)
	if err != nil {
		return CategoryCounts{}, fmt.Errorf("count leads by category: %w", err)
	}
	return counts, nil
}

// ListCreatedBetween returns leads created in [from, to], oldest first.
func (r *Repository) ListCreatedBetween(ctx context.Context, from, to time.Time, limit int) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads by date: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
