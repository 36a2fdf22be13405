package models

import "time"

// Result values stored in matches.result.
const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// Match represents a recorded tennis match owned by a single user
type Match struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	MatchDate    time.Time `json:"match_date" db:"match_date"`
	OpponentName string    `json:"opponent_name" db:"opponent_name"`
	Result       string    `json:"result" db:"result"`
	Score        *string   `json:"score" db:"score"`
	Notes        *string   `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// OpponentSummary is the derived per-opponent aggregate. It is computed on
// demand and never stored.
type OpponentSummary struct {
	OpponentName string `json:"opponent_name"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
