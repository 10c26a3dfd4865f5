package betting

// TeamProfile is a team's season betting profile. Rates are percentages.
type TeamProfile struct {
	Abbr                string
	Name                string
	WinRate             float64
	ChasingWinRate      float64
	BattingFirstWinRate float64
	AvgScore            float64
	Recommendation      string
	Strategy            string
	// RiskLevel runs from 1 (safest) to 5.
	RiskLevel int
	Tips      []string
}

type Tip struct {
	Type        string
	Probability float64
	Risk        string
	Stars       int
}

// PlayerBet is a player's betting card. Optional rates are nil when not published.
type PlayerBet struct {
	ID            int
	Name          string
	Team          string
	Role          string
	Runs          int
	Average       float64
	StrikeRate    float64
	Centuries     int
	Fifties       int
	Sixes         int
	Fours         int
	BigScoreRate  *float64
	SixesPerMatch *float64
	FoursPerMatch *float64
	NotOuts       *int
	BettingTips   []Tip
	Verdict       string
}

// Scenario is a canned match situation. Either WinProbability or Probability is set.
type Scenario struct {
	Scenario       string
	WinProbability *int
	ExpectedTotal  string
	Probability    *int
	Recommendation string
	Confidence     string
	Reasoning      string
}

// Bet is a ranked bet. Stars is set on recommended bets, Reason on bets to avoid.
type Bet struct {
	Bet         string
	Probability float64
	Team        string
	Stars       int
	Reason      string
}

type RiskCategories struct {
	SafeBets  []Bet
	ValueBets []Bet
	AvoidBets []Bet
}

type Insight struct {
	Icon        string
	Title       string
	Value       string
	Probability string
}

type TournamentStats struct {
	TotalMatches   int
	TotalCenturies int
	CenturyRate    string
	AvgMatchScore  int
	HighestScore   string
	LowestScore    string
}

type Overview struct {
	TopBets         []Bet
	ValueBets       []Bet
	AvoidBets       []Bet
	KeyInsights     []Insight
	TournamentStats TournamentStats
}

// Prediction is the outcome of Predict. Probabilities are whole percentages summing to 100.
type Prediction struct {
	TeamA               TeamProfile
	TeamAWinProbability int
	TeamB               TeamProfile
	TeamBWinProbability int
	Favorite            string
	FavoriteWinProb     int
	Underdog            string
	UpsetPotential      string
	Recommendation      string
	Reasoning           string
	BettingTips         []string
}
