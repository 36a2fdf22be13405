package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/models"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// MatchInput carries the fields for creating or fully replacing a match.
type MatchInput struct {
	MatchDate    string // YYYY-MM-DD
	OpponentName string
	Result       string // W | L
	Score        *string
	Notes        *string
}

// ListFilter narrows a match listing. Zero-value fields are ignored; set
// fields combine conjunctively on top of the owner scope.
type ListFilter struct {
	Opponent string
	Result   string
	From     string // YYYY-MM-DD, inclusive
	To       string // YYYY-MM-DD, inclusive
}

// MatchRepository provides owner-scoped access to match records.
type MatchRepository interface {
	Create(ctx context.Context, userID int64, in MatchInput) (*models.Match, error)
	List(ctx context.Context, userID int64, filter ListFilter) ([]models.Match, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Match, error)
	Update(ctx context.Context, userID, id int64, in MatchInput) (*models.Match, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
	SummarizeByOpponent(ctx context.Context, userID int64) ([]models.OpponentSummary, error)
}

// PostgresMatchRepository implements MatchRepository using PostgreSQL.
type PostgresMatchRepository struct {
	db DB
}

// NewPostgresMatchRepository creates a new PostgresMatchRepository.
func NewPostgresMatchRepository(db DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, user_id, match_date, opponent_name, result, score, notes, created_at`

// validateInput checks a MatchInput and returns the normalized opponent name
// and parsed date. Runs entirely before any statement touches the database.
func validateInput(in MatchInput) (string, time.Time, error) {
	opponent := utils.NormalizeText(in.OpponentName)

	if in.MatchDate == "" || opponent == "" || in.Result == "" {
		return "", time.Time{}, apperr.NewValidation("match_date",
			"match_date, opponent_name, and result are required")
	}

	if in.Result != models.ResultWin && in.Result != models.ResultLoss {
		return "", time.Time{}, apperr.NewValidation("result", "result must be 'W' or 'L'")
	}

	if !utils.IsValidCalendarDate(in.MatchDate) {
		return "", time.Time{}, apperr.NewValidation("match_date",
			"match_date must be a real date in YYYY-MM-DD format")
	}

	date, err := time.Parse("2006-01-02", in.MatchDate)
	if err != nil {
		return "", time.Time{}, apperr.NewValidation("match_date",
			"match_date must be a real date in YYYY-MM-DD format")
	}

	return opponent, date, nil
}

// Create validates the input and inserts a match owned by userID.
func (r *PostgresMatchRepository) Create(ctx context.Context, userID int64, in MatchInput) (*models.Match, error) {
	opponent, date, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	match := &models.Match{}
	err = r.db.QueryRow(ctx,
		`INSERT INTO matches (user_id, match_date, opponent_name, result, score, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+matchColumns,
		userID, date, opponent, in.Result, in.Score, in.Notes).
		Scan(&match.ID, &match.UserID, &match.MatchDate, &match.OpponentName,
			&match.Result, &match.Score, &match.Notes, &match.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	return match, nil
}

// List returns the user's matches, newest first by date then id. Filters are
// validated before querying; the opponent filter is exact trimmed
// case-insensitive equality, not a substring match.
func (r *PostgresMatchRepository) List(ctx context.Context, userID int64, filter ListFilter) ([]models.Match, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}
	i := 2

	if filter.Opponent != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(TRIM(opponent_name)) = LOWER($%d)", i))
		args = append(args, utils.NormalizeText(filter.Opponent))
		i++
	}

	if filter.Result != "" {
		if filter.Result != models.ResultWin && filter.Result != models.ResultLoss {
			return nil, apperr.NewValidation("result", "result must be 'W' or 'L'")
		}
		conditions = append(conditions, fmt.Sprintf("result = $%d", i))
		args = append(args, filter.Result)
		i++
	}

	if filter.From != "" {
		if !utils.IsValidCalendarDate(filter.From) {
			return nil, apperr.NewValidation("from", "from must be a real date in YYYY-MM-DD format")
		}
		conditions = append(conditions, fmt.Sprintf("match_date >= $%d", i))
		args = append(args, filter.From)
		i++
	}

	if filter.To != "" {
		if !utils.IsValidCalendarDate(filter.To) {
			return nil, apperr.NewValidation("to", "to must be a real date in YYYY-MM-DD format")
		}
		conditions = append(conditions, fmt.Sprintf("match_date <= $%d", i))
		args = append(args, filter.To)
		i++
	}

	query := `SELECT ` + matchColumns + `
		 FROM matches
		 WHERE ` + strings.Join(conditions, " AND ") + `
		 ORDER BY match_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.UserID, &m.MatchDate, &m.OpponentName,
			&m.Result, &m.Score, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return matches, nil
}

// GetByID returns the match only when it exists and belongs to userID.
// A missing match and another user's match both come back as not found.
func (r *PostgresMatchRepository) GetByID(ctx context.Context, userID, id int64) (*models.Match, error) {
	if id < 0 {
		return nil, apperr.NewValidation("id", "Match id must be an integer")
	}

	match := &models.Match{}
	err := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE id = $1 AND user_id = $2`,
		id, userID).
		Scan(&match.ID, &match.UserID, &match.MatchDate, &match.OpponentName,
			&match.Result, &match.Score, &match.Notes, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get match by id: %w", err)
	}

	return match, nil
}

// Update performs a full-row replace scoped to (id, owner).
func (r *PostgresMatchRepository) Update(ctx context.Context, userID, id int64, in MatchInput) (*models.Match, error) {
	if id < 0 {
		return nil, apperr.NewValidation("id", "Match id must be an integer")
	}

	opponent, date, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	match := &models.Match{}
	err = r.db.QueryRow(ctx,
		`UPDATE matches
		 SET match_date = $1,
		     opponent_name = $2,
		     result = $3,
		     score = $4,
		     notes = $5
		 WHERE id = $6 AND user_id = $7
		 RETURNING `+matchColumns,
		date, opponent, in.Result, in.Score, in.Notes, id, userID).
		Scan(&match.ID, &match.UserID, &match.MatchDate, &match.OpponentName,
			&match.Result, &match.Score, &match.Notes, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("update match: %w", err)
	}

	return match, nil
}

// Delete removes the match scoped to (id, owner) and returns the deleted id.
func (r *PostgresMatchRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	if id < 0 {
		return 0, apperr.NewValidation("id", "Match id must be an integer")
	}

	var deletedID int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM matches
		 WHERE id = $1 AND user_id = $2
		 RETURNING id`,
		id, userID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("delete match: %w", err)
	}

	return deletedID, nil
}

// SummarizeByOpponent groups the user's matches by trimmed opponent name,
// ordered by match count descending with ties broken by name.
func (r *PostgresMatchRepository) SummarizeByOpponent(ctx context.Context, userID int64) ([]models.OpponentSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT TRIM(opponent_name) AS opponent_name,
		        COUNT(*)::int AS matches,
		        SUM(CASE WHEN result = 'W' THEN 1 ELSE 0 END)::int AS wins,
		        SUM(CASE WHEN result = 'L' THEN 1 ELSE 0 END)::int AS losses
		 FROM matches
		 WHERE user_id = $1
		 GROUP BY TRIM(opponent_name)
		 ORDER BY matches DESC, opponent_name ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query opponent summary: %w", err)
	}
	defer rows.Close()

	summaries := []models.OpponentSummary{}
	for rows.Next() {
		var s models.OpponentSummary
		if err := rows.Scan(&s.OpponentName, &s.Matches, &s.Wins, &s.Losses); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}

	return summaries, nil
}

// Compile-time interface check.
var _ MatchRepository = (*PostgresMatchRepository)(nil)
