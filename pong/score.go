package pong

import (
	"fmt"

	"github.com/google/uuid"
)

type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Scoreboard counts points per side for one match. MatchID tags the log lines
// of a match and changes on every Reset.
type Scoreboard struct {
	MatchID  uuid.UUID
	Left     int
	Right    int
	WinScore int
}

func NewScoreboard(winScore int) *Scoreboard {
	return &Scoreboard{
		MatchID:  uuid.New(),
		WinScore: winScore,
	}
}

// Record adds the point described by o. Points scored after the match is
// over are ignored.
func (sb *Scoreboard) Record(o Outcome) {
	if sb.IsOver() {
		return
	}
	switch o {
	case OutcomeLeftScored:
		sb.Left++
	case OutcomeRightScored:
		sb.Right++
	}
}

// Winner returns the side that reached the win score, if any.
func (sb *Scoreboard) Winner() Side {
	if sb.WinScore <= 0 {
		return SideNone
	}
	switch {
	case sb.Left >= sb.WinScore:
		return SideLeft
	case sb.Right >= sb.WinScore:
		return SideRight
	}
	return SideNone
}

func (sb *Scoreboard) IsOver() bool {
	return sb.Winner() != SideNone
}

// Reset clears the score and starts a new match.
func (sb *Scoreboard) Reset() {
	sb.Left, sb.Right = 0, 0
	sb.MatchID = uuid.New()
}

func (sb *Scoreboard) String() string {
	return fmt.Sprintf("%d - %d", sb.Left, sb.Right)
}
