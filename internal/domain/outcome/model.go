package outcome

// Response is a player's reply to a game day invitation.
type Response string

const (
	ResponseYes   Response = "Yes"
	ResponseNo    Response = "No"
	ResponseDunno Response = "Dunno"
)

// Team identifies which side a player was picked for.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Outcome is one player's row for one game day: invitation response, team
// assignment, result points and post-game attendance. Outcomes are produced
// by the surrounding system and consumed read-only by this service.
type Outcome struct {
	GameDayID int64
	PlayerID  string
	// Response is nil when the player never replied to the invitation.
	Response *Response
	// Team is nil until the player is picked for a side.
	Team *Team
	// Points is nil until a game result has been recorded. Recorded values
	// are 3 (win), 1 (draw) or 0 (loss).
	Points *int
	Goalie bool
	// Pub is nil until post-game drinking attendance has been recorded.
	Pub *int
	// ResponseInterval is the elapsed seconds between invitation dispatch and
	// the player's reply. Nil when the player never responded or no dispatch
	// timestamp exists.
	ResponseInterval *int64
}

// Responded reports whether the player replied with the given response.
func (o Outcome) Responded(r Response) bool {
	return o.Response != nil && *o.Response == r
}
