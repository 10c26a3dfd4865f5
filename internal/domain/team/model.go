package team

import (
	"fmt"
	"strings"
)

// Team is a franchise taking part in the tournament. TID is the provider id.
type Team struct {
	ID       int64
	TID      int64
	Title    string
	Abbr     string
	AltName  string
	Type     string
	ThumbURL string
	LogoURL  string
	Country  string
	Sex      string
}

func (t Team) Validate() error {
	if t.TID <= 0 {
		return fmt.Errorf("team tid is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("team title is required")
	}

	return nil
}

// Stats holds tournament-level team totals. Pointer fields are NULL when the source had no usable value.
type Stats struct {
	TeamID                  int64
	TotalRuns               int
	TotalWickets            int
	TotalCenturies          int
	TotalFifties            int
	MatchesWon              int
	ExtraRunsConceded       int
	HighestScore            *string
	LowestScore             *string
	HighestWinMarginRuns    *int
	LowestWinMarginRuns     *int
	HighestWinMarginWickets *int
	LowestWinMarginWickets  *int
}

type ListFilter struct {
	Search string
	Offset int
	Limit  int
}
