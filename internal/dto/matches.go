package dto

// MatchRequest represents the payload to create or fully replace a match.
// Updates resupply every field; there is no partial update.
type MatchRequest struct {
	MatchDate    string  `json:"match_date"` // YYYY-MM-DD
	OpponentName string  `json:"opponent_name"`
	Result       string  `json:"result"` // W | L
	Score        *string `json:"score,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// MatchResponse represents a match object in responses
type MatchResponse struct {
	ID           int64   `json:"id"`
	MatchDate    string  `json:"match_date"` // YYYY-MM-DD
	OpponentName string  `json:"opponent_name"`
	Result       string  `json:"result"`
	Score        *string `json:"score"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"` // RFC3339
}

// MatchEnvelope wraps a single match
type MatchEnvelope struct {
	Match MatchResponse `json:"match"`
}

// MatchListResponse envelope
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// DeleteMatchResponse confirms a deletion
type DeleteMatchResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// OpponentSummaryItem is one row of the per-opponent aggregate
type OpponentSummaryItem struct {
	OpponentName string `json:"opponent_name"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// OpponentSummaryResponse envelope
type OpponentSummaryResponse struct {
	Opponents []OpponentSummaryItem `json:"opponents"`
}
