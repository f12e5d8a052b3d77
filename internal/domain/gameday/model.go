package gameday

import "time"

// GameDay is one entry in the fixture calendar.
type GameDay struct {
	ID   int64
	Year int
	Date time.Time
	// Game is false when the fixture was cancelled. Cancelled game days still
	// feed invitation/response metrics but never played/won/drawn/lost.
	Game     bool
	MailSent *time.Time
}
