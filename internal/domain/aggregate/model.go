package aggregate

import "strings"

// Stat types referenced by the read side. Any other file-derived type is stored as-is.
const (
	StatMostRuns        = "most_runs"
	StatTopWicketTakers = "top_wicket_takers"
)

// Batting is a precomputed tournament batting ranking row for one stat type.
type Batting struct {
	ID         int64
	PlayerID   int64
	TeamID     int64
	StatType   string
	Matches    int
	Innings    int
	Runs       int
	Balls      int
	NotOut     int
	Highest    *int
	Centuries  int
	Fifties    int
	Fours      int
	Sixes      int
	Catches    int
	Stumpings  int
	Average    *float64
	StrikeRate *float64
}

// Bowling is a precomputed tournament bowling ranking row for one stat type.
type Bowling struct {
	ID         int64
	PlayerID   int64
	TeamID     int64
	StatType   string
	Matches    int
	Overs      float64
	Runs       int
	Wickets    int
	Maidens    int
	Average    *float64
	Economy    *float64
	StrikeRate *float64
	BestInning string
	BestMatch  string
	Wicket4i   int
	Wicket5i   int
}

// Order is a whitelisted sort column of an aggregate table.
type Order struct {
	Column    string
	Ascending bool
}

// Query selects ranking rows of one stat type.
type Query struct {
	StatType string
	Order    Order
	Limit    int
}

var battingColumns = map[string]struct{}{
	"runs": {}, "average": {}, "strike_rate": {}, "centuries": {}, "fifties": {}, "sixes": {}, "fours": {},
}

var bowlingColumns = map[string]struct{}{
	"wickets": {}, "economy": {}, "average": {}, "strike_rate": {},
}

func IsBattingColumn(column string) bool {
	_, ok := battingColumns[column]
	return ok
}

func IsBowlingColumn(column string) bool {
	_, ok := bowlingColumns[column]
	return ok
}

// BattingOrderForSortKey maps a client sort key (runs, average, strikeRate, ...) to a descending order.
func BattingOrderForSortKey(sortBy string) Order {
	switch strings.TrimSpace(sortBy) {
	case "average":
		return Order{Column: "average"}
	case "strikeRate":
		return Order{Column: "strike_rate"}
	case "centuries":
		return Order{Column: "centuries"}
	case "fifties":
		return Order{Column: "fifties"}
	case "sixes":
		return Order{Column: "sixes"}
	default:
		return Order{Column: "runs"}
	}
}

// BowlingOrderForSortKey maps a client sort key to an order. Economy and average rank ascending.
func BowlingOrderForSortKey(sortBy string) Order {
	switch strings.TrimSpace(sortBy) {
	case "economy":
		return Order{Column: "economy", Ascending: true}
	case "average":
		return Order{Column: "average", Ascending: true}
	case "strikeRate":
		return Order{Column: "strike_rate"}
	default:
		return Order{Column: "wickets"}
	}
}

// BattingOrderForStatType picks the column a batting stat type is ranked by.
func BattingOrderForStatType(statType string) Order {
	switch statType {
	case "highest_average":
		return Order{Column: "average"}
	case "highest_strikerate":
		return Order{Column: "strike_rate"}
	case "most_run6":
		return Order{Column: "sixes"}
	case "most_run4":
		return Order{Column: "fours"}
	case "most_run50":
		return Order{Column: "fifties"}
	case "most_run100":
		return Order{Column: "centuries"}
	default:
		return Order{Column: "runs"}
	}
}

// BowlingOrderForStatType picks the column a bowling stat type is ranked by.
func BowlingOrderForStatType(statType string) Order {
	switch statType {
	case "best_economy_rates":
		return Order{Column: "economy", Ascending: true}
	case "best_averages":
		return Order{Column: "average", Ascending: true}
	case "best_strike_rates":
		return Order{Column: "strike_rate", Ascending: true}
	default:
		return Order{Column: "wickets"}
	}
}

// StatTypeFromFile derives a stat type from a fixture file name, e.g. batting_most_runs.json -> most_runs.
func StatTypeFromFile(name, prefix string) string {
	name = strings.Replace(name, ".json", "", 1)
	return strings.Replace(name, prefix, "", 1)
}
