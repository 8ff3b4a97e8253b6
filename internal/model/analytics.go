package model

// GameAnalytics is the terminal payload for one completed game
type GameAnalytics struct {
	GameID        GameID `json:"game_id"`
	Winner        Winner `json:"winner"`
	RoundsPlayed  int    `json:"rounds_played"`
	WerewolfKills int    `json:"werewolf_kills"`

	// Per-participant aggregates over the whole game
	TotalWords map[ParticipantID]int     `json:"total_words"`
	AvgWords   map[ParticipantID]float64 `json:"avg_words"`
	AvgBid     map[ParticipantID]float64 `json:"avg_bid"`
	Scores     map[ParticipantID]int     `json:"scores"`

	SeerChecks        []SeerCheck `json:"seer_checks"`
	SeerFoundWerewolf bool        `json:"seer_found_werewolf"`

	Summary string `json:"summary"`
}

// GameRecord wraps one game's outcome from the external participant's
// perspective within an evaluation batch. Failed games carry Error and a
// nil Analytics.
type GameRecord struct {
	Role      Role           `json:"role"`
	GameNum   int            `json:"game_num"`
	Won       bool           `json:"won"`
	Survived  bool           `json:"survived"`
	Score     int            `json:"score"`
	Analytics *GameAnalytics `json:"analytics,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// RoleReport aggregates the external participant's games for one role
type RoleReport struct {
	GamesPlayed  int          `json:"games_played"`
	GamesFailed  int          `json:"games_failed"`
	Wins         int          `json:"wins"`
	Losses       int          `json:"losses"`
	WinRate      float64      `json:"win_rate"`
	SurvivalRate float64      `json:"survival_rate"`
	AvgRounds    float64      `json:"avg_rounds"`
	AvgScore     float64      `json:"avg_score"`
	TotalScore   int          `json:"total_score"`
	Games        []GameRecord `json:"games"`
}

// AggregateReport is the final artifact for one evaluation batch
type AggregateReport struct {
	TotalGames     int                 `json:"total_games"`
	GamesPerRole   int                 `json:"games_per_role"`
	Endpoint       string              `json:"endpoint"`
	ByRole         map[Role]RoleReport `json:"by_role"`
	OverallWinRate float64             `json:"overall_win_rate"`
	OverallScore   int                 `json:"overall_score"`
	Summary        string              `json:"summary"`
}
