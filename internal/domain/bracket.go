package domain

import "time"

// BracketPlayer identifies a participant slot in a match. Unresolved
// future-round slots are nil.
type BracketPlayer struct {
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
}

type BracketMatch struct {
	Player1 *BracketPlayer `json:"player1"`
	Player2 *BracketPlayer `json:"player2"`
	Winner  *BracketPlayer `json:"winner"`
}

type BracketRound struct {
	Round   int            `json:"round"`
	Matches []BracketMatch `json:"matches"`
}

type CategoryBracket struct {
	Rounds []BracketRound `json:"rounds"`
}

// BracketData maps category name to its round structure. Categories
// with fewer than two checked-in players are absent.
type BracketData map[string]CategoryBracket

type Bracket struct {
	ID           string      `json:"bracket_id"`
	TournamentID string      `json:"tournament_id"`
	Data         BracketData `json:"bracket_data"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
