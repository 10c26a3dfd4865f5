package betting

// Season profiles, in publication order. Teams() re-sorts by risk.
var teamProfiles = []TeamProfile{
	{
		Abbr:                "GT",
		Name:                "Gujarat Titans",
		WinRate:             75.0,
		ChasingWinRate:      78,
		BattingFirstWinRate: 71,
		AvgScore:            166.4,
		Recommendation:      "STRONG_BET",
		Strategy:            "Always bet on GT when chasing (78% win rate)",
		RiskLevel:           1,
		Tips: []string{
			"Best team when chasing targets 160-180",
			"Hardik Pandya key for middle overs acceleration",
			"David Miller finishes games (9 not-outs)",
		},
	},
	{
		Abbr:                "RR",
		Name:                "Rajasthan Royals",
		WinRate:             62.5,
		ChasingWinRate:      57,
		BattingFirstWinRate: 67,
		AvgScore:            183.9,
		Recommendation:      "GOOD_BET",
		Strategy:            "Bet on RR batting first - highest scoring team (183.9 avg)",
		RiskLevel:           2,
		Tips: []string{
			"Jos Buttler 47% big score conversion rate",
			"RR Total Over 175 when batting first (68% probability)",
			"Shimron Hetmyer excellent finisher (10 not-outs)",
		},
	},
	{
		Abbr:                "LSG",
		Name:                "Lucknow Super Giants",
		WinRate:             52.9,
		ChasingWinRate:      71,
		BattingFirstWinRate: 57,
		AvgScore:            149.9,
		Recommendation:      "MODERATE_BET",
		Strategy:            "LSG better when chasing (71% win rate)",
		RiskLevel:           2,
		Tips: []string{
			"KL Rahul + Quinton de Kock strongest opening pair",
			"Opening partnership 60+ sets up wins",
			"Good for chasing targets 160-180",
		},
	},
	{
		Abbr:                "RCB",
		Name:                "Royal Challengers Bangalore",
		WinRate:             56.3,
		ChasingWinRate:      67,
		BattingFirstWinRate: 50,
		AvgScore:            164.5,
		Recommendation:      "MODERATE_BET",
		Strategy:            "Better when chasing, high volatility team",
		RiskLevel:           3,
		Tips: []string{
			"Dinesh Karthik 183.33 SR in death overs",
			`Avoid "to bat full 20 overs" bets`,
			"High collapse risk (scored 68 all out once)",
		},
	},
	{
		Abbr:                "DC",
		Name:                "Delhi Capitals",
		WinRate:             50.0,
		ChasingWinRate:      57,
		BattingFirstWinRate: 43,
		AvgScore:            167.2,
		Recommendation:      "NEUTRAL",
		Strategy:            "Slightly better chasing, David Warner key",
		RiskLevel:           3,
		Tips: []string{
			"David Warner 42% fifty conversion rate",
			"Prithvi Shaw explosive opener (152.97 SR)",
			"Mid-table team - avoid in big stakes",
		},
	},
	{
		Abbr:                "PBKS",
		Name:                "Punjab Kings",
		WinRate:             50.0,
		ChasingWinRate:      57,
		BattingFirstWinRate: 43,
		AvgScore:            167.4,
		Recommendation:      "NEUTRAL",
		Strategy:            "Inconsistent team, Livingstone key for sixes",
		RiskLevel:           3,
		Tips: []string{
			"Liam Livingstone 3.4 sixes per match",
			`Good for "most sixes" player bets`,
			"Inconsistent - avoid team win bets",
		},
	},
	{
		Abbr:                "KKR",
		Name:                "Kolkata Knight Riders",
		WinRate:             42.9,
		ChasingWinRate:      50,
		BattingFirstWinRate: 43,
		AvgScore:            158.8,
		Recommendation:      "AVOID",
		Strategy:            "Below average team, avoid betting",
		RiskLevel:           4,
		Tips: []string{
			"Andre Russell explosive but inconsistent",
			"Shreyas Iyer anchor but low SR",
			"Better to bet against KKR vs top 4",
		},
	},
	{
		Abbr:                "SRH",
		Name:                "Sunrisers Hyderabad",
		WinRate:             42.9,
		ChasingWinRate:      50,
		BattingFirstWinRate: 43,
		AvgScore:            156.9,
		Recommendation:      "AVOID",
		Strategy:            "Weak batting, worst NRR in bottom half",
		RiskLevel:           4,
		Tips: []string{
			"Aiden Markram only reliable bat (47.63 avg)",
			"Poor death overs batting",
			"Avoid team bets, consider individual player bets",
		},
	},
	{
		Abbr:                "CSK",
		Name:                "Chennai Super Kings",
		WinRate:             28.6,
		ChasingWinRate:      29,
		BattingFirstWinRate: 29,
		AvgScore:            163.4,
		Recommendation:      "STRONG_AVOID",
		Strategy:            "Worst season ever - always bet AGAINST CSK",
		RiskLevel:           5,
		Tips: []string{
			"Only 4 wins in season",
			"Bet AGAINST CSK vs any top 4 team",
			"High collapse risk - 2 all-out scores",
		},
	},
	{
		Abbr:                "MI",
		Name:                "Mumbai Indians",
		WinRate:             28.6,
		ChasingWinRate:      29,
		BattingFirstWinRate: 29,
		AvgScore:            158.4,
		Recommendation:      "STRONG_AVOID",
		Strategy:            "Defending champions collapsed - bet AGAINST MI",
		RiskLevel:           5,
		Tips: []string{
			"Worst NRR (-0.506) indicates heavy defeats",
			"Only 4 wins - worst ever MI season",
			"Suryakumar Yadav only bright spot",
		},
	},
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

var playerBets = []PlayerBet{
	{
		ID:            1,
		Name:          "Jos Buttler",
		Team:          "RR",
		Role:          "Opener",
		Runs:          863,
		Average:       57.53,
		StrikeRate:    149.05,
		Centuries:     4,
		Fifties:       4,
		Sixes:         45,
		Fours:         83,
		BigScoreRate:  floatPtr(47.1),
		SixesPerMatch: floatPtr(2.65),
		FoursPerMatch: floatPtr(4.88),
		BettingTips: []Tip{
			{Type: "To score 50+", Probability: 47, Risk: "LOW", Stars: 5},
			{Type: "To score century", Probability: 23.5, Risk: "MEDIUM", Stars: 4},
			{Type: "Top team batsman", Probability: 42, Risk: "LOW", Stars: 5},
			{Type: "To hit 3+ sixes", Probability: 45, Risk: "LOW", Stars: 4},
			{Type: "Most match sixes", Probability: 38, Risk: "MEDIUM", Stars: 4},
		},
		Verdict: "ELITE - Safest batting bet in tournament",
	},
	{
		ID:            2,
		Name:          "KL Rahul",
		Team:          "LSG",
		Role:          "Opener",
		Runs:          616,
		Average:       51.33,
		StrikeRate:    135.38,
		Centuries:     2,
		Fifties:       4,
		Sixes:         30,
		Fours:         45,
		BigScoreRate:  floatPtr(40.0),
		SixesPerMatch: floatPtr(2.0),
		FoursPerMatch: floatPtr(3.0),
		BettingTips: []Tip{
			{Type: "To score 50+", Probability: 40, Risk: "LOW", Stars: 4},
			{Type: "To score century", Probability: 13.3, Risk: "HIGH", Stars: 3},
			{Type: "Top team batsman", Probability: 38, Risk: "LOW", Stars: 4},
			{Type: "Opening partnership 60+", Probability: 52, Risk: "MEDIUM", Stars: 4},
		},
		Verdict: "EXCELLENT - Consistent anchor batsman",
	},
	{
		ID:           3,
		Name:         "David Miller",
		Team:         "GT",
		Role:         "Finisher",
		Runs:         481,
		Average:      68.71,
		StrikeRate:   142.73,
		Centuries:    0,
		Fifties:      2,
		Sixes:        23,
		Fours:        32,
		BigScoreRate: floatPtr(12.5),
		NotOuts:      intPtr(9),
		BettingTips: []Tip{
			{Type: "To remain not out", Probability: 60, Risk: "LOW", Stars: 5},
			{Type: "To score 25+ (death overs)", Probability: 45, Risk: "LOW", Stars: 4},
			{Type: "To hit 2+ sixes", Probability: 40, Risk: "MEDIUM", Stars: 3},
		},
		Verdict: `ELITE FINISHER - Best "not out" bet`,
	},
	{
		ID:         4,
		Name:       "Dinesh Karthik",
		Team:       "RCB",
		Role:       "Death Specialist",
		Runs:       330,
		Average:    55.0,
		StrikeRate: 183.33,
		Centuries:  0,
		Fifties:    0,
		Sixes:      19,
		Fours:      25,
		NotOuts:    intPtr(10),
		BettingTips: []Tip{
			{Type: "Highest score in death overs", Probability: 35, Risk: "MEDIUM", Stars: 4},
			{Type: "To remain not out", Probability: 60, Risk: "LOW", Stars: 5},
			{Type: "To score 25+ in last 5 overs", Probability: 45, Risk: "MEDIUM", Stars: 4},
		},
		Verdict: "DEATH SPECIALIST - Best SR in tournament (183.33)",
	},
	{
		ID:           5,
		Name:         "David Warner",
		Team:         "DC",
		Role:         "Opener",
		Runs:         432,
		Average:      48.0,
		StrikeRate:   150.69,
		Centuries:    0,
		Fifties:      5,
		Sixes:        18,
		Fours:        52,
		BigScoreRate: floatPtr(41.7),
		BettingTips: []Tip{
			{Type: "To score 50+", Probability: 42, Risk: "LOW", Stars: 4},
			{Type: "Top team batsman", Probability: 40, Risk: "LOW", Stars: 4},
			{Type: "To score 35+ in powerplay", Probability: 32, Risk: "MEDIUM", Stars: 3},
		},
		Verdict: "EXCELLENT - Aggressive opener, consistent performer",
	},
	{
		ID:         6,
		Name:       "Quinton de Kock",
		Team:       "LSG",
		Role:       "Opener",
		Runs:       508,
		Average:    36.29,
		StrikeRate: 148.97,
		Centuries:  1,
		Fifties:    3,
		Sixes:      23,
		Fours:      47,
		BettingTips: []Tip{
			{Type: "To score 40+ in powerplay", Probability: 35, Risk: "MEDIUM", Stars: 3},
			{Type: "Opening partnership 60+ (with Rahul)", Probability: 40, Risk: "MEDIUM", Stars: 4},
		},
		Verdict: "GOOD - Explosive opener, pairs well with Rahul",
	},
	{
		ID:            7,
		Name:          "Liam Livingstone",
		Team:          "PBKS",
		Role:          "Power Hitter",
		Runs:          213,
		Average:       26.63,
		StrikeRate:    182.08,
		Centuries:     0,
		Fifties:       1,
		Sixes:         34,
		Fours:         11,
		SixesPerMatch: floatPtr(3.4),
		BettingTips: []Tip{
			{Type: "To hit 4+ sixes", Probability: 28, Risk: "MEDIUM", Stars: 4},
			{Type: "Most sixes in match", Probability: 45, Risk: "MEDIUM", Stars: 4},
		},
		Verdict: "SIX-HITTING SPECIALIST - Best for boundary bets",
	},
	{
		ID:         8,
		Name:       "Hardik Pandya",
		Team:       "GT",
		Role:       "All-rounder",
		Runs:       487,
		Average:    44.27,
		StrikeRate: 131.27,
		Centuries:  0,
		Fifties:    4,
		Sixes:      12,
		Fours:      49,
		BettingTips: []Tip{
			{Type: "Man of the Match", Probability: 33, Risk: "MEDIUM", Stars: 4},
			{Type: "To score 30+", Probability: 45, Risk: "LOW", Stars: 4},
			{Type: "To take 1+ wicket", Probability: 40, Risk: "MEDIUM", Stars: 3},
		},
		Verdict: "ALL-ROUNDER VALUE - Good for MOTM bets",
	},
}

var scenarios = []Scenario{
	{
		Scenario:       "GT chasing 160-180",
		WinProbability: intPtr(78),
		Recommendation: "BET_GT",
		Confidence:     "HIGH",
		Reasoning:      "GT has 78% win rate when chasing. Strong middle order with Miller and Pandya.",
	},
	{
		Scenario:       "RR batting first",
		ExpectedTotal:  "175+",
		Probability:    intPtr(68),
		Recommendation: "BET_OVER_175",
		Confidence:     "HIGH",
		Reasoning:      "RR averages 183.9 runs/match. Buttler-led attack is explosive.",
	},
	{
		Scenario:       "RCB vs MI/CSK",
		WinProbability: intPtr(75),
		Recommendation: "BET_RCB",
		Confidence:     "HIGH",
		Reasoning:      "MI and CSK only won 28.6% of matches. RCB favored against bottom teams.",
	},
	{
		Scenario:       "Any team scores 200+",
		Probability:    intPtr(8),
		Recommendation: "AVOID",
		Confidence:     "HIGH",
		Reasoning:      "Only 1 score of 220+ in tournament. Very rare event.",
	},
	{
		Scenario:       "Team all out under 100",
		Probability:    intPtr(5),
		Recommendation: "AVOID",
		Confidence:     "HIGH",
		Reasoning:      "Only 4 occurrences in 74 matches. Rare but devastating when happens.",
	},
	{
		Scenario:       "Buttler to score 50+",
		Probability:    intPtr(47),
		Recommendation: "STRONG_BET",
		Confidence:     "VERY_HIGH",
		Reasoning:      "Buttler scored 50+ in 47% of innings. Safest player performance bet.",
	},
	{
		Scenario:       "Miller to remain not out",
		Probability:    intPtr(60),
		Recommendation: "STRONG_BET",
		Confidence:     "VERY_HIGH",
		Reasoning:      "Miller remained not out in 9 of 16 innings. Elite finisher.",
	},
	{
		Scenario:       "Death overs (16-20) 60+ runs",
		Probability:    intPtr(38),
		Recommendation: "MODERATE_BET",
		Confidence:     "MEDIUM",
		Reasoning:      "Depends on finishers at crease. RCB with Karthik most likely.",
	},
}

var riskCategories = RiskCategories{
	SafeBets: []Bet{
		{Bet: "Buttler to score 50+", Probability: 47, Team: "RR", Stars: 5},
		{Bet: "GT to win when chasing", Probability: 78, Team: "GT", Stars: 5},
		{Bet: "RR Total Over 175", Probability: 68, Team: "RR", Stars: 4},
		{Bet: "Miller to remain not out", Probability: 60, Team: "GT", Stars: 5},
		{Bet: "LSG opening partnership 60+", Probability: 52, Team: "LSG", Stars: 4},
	},
	ValueBets: []Bet{
		{Bet: "Karthik highest in death overs", Probability: 35, Team: "RCB", Stars: 4},
		{Bet: "Livingstone 4+ sixes", Probability: 28, Team: "PBKS", Stars: 4},
		{Bet: "Rajat Patidar to score 50+", Probability: 30, Team: "RCB", Stars: 3},
		{Bet: "GT vs RR close match (<15 runs)", Probability: 40, Team: "GT/RR", Stars: 3},
	},
	AvoidBets: []Bet{
		{Bet: "MI to win vs Top 4", Probability: 15, Team: "MI", Reason: "Worst season"},
		{Bet: "CSK to win vs Top 4", Probability: 18, Team: "CSK", Reason: "Collapsed"},
		{Bet: "Any team to score 220+", Probability: 8, Team: "Any", Reason: "Very rare"},
		{Bet: "Virat Kohli to score 50+", Probability: 12, Team: "RCB", Reason: "Poor form"},
	},
}

var keyInsights = []Insight{
	{Icon: "trophy", Title: "Best Team Bet", Value: "GT when chasing", Probability: "78%"},
	{Icon: "user", Title: "Best Player Bet", Value: "Buttler 50+", Probability: "47%"},
	{Icon: "target", Title: "Best Finisher Bet", Value: "Miller not out", Probability: "60%"},
	{Icon: "zap", Title: "Best Boundary Bet", Value: "Livingstone sixes", Probability: "45%"},
}

var tournamentStats = TournamentStats{
	TotalMatches:   74,
	TotalCenturies: 8,
	CenturyRate:    "5.4%",
	AvgMatchScore:  165,
	HighestScore:   "222/2 (RR)",
	LowestScore:    "68/10 (RCB)",
}
