package team

// FootballTeam is owned by the registering user. TeamLogo stores a path only;
// upload handling lives outside this service.
type FootballTeam struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"user" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:100;not null"`
	City        string `json:"city" gorm:"size:100;not null"`
	FoundedYear int    `json:"founded_year" gorm:"not null"`
	Coach       string `json:"coach" gorm:"size:100;not null"`
	Captain     string `json:"captain" gorm:"size:100;not null"`
	TeamLogo    string `json:"team_logo,omitempty" gorm:"size:255"`
}

func (FootballTeam) TableName() string {
	return "football_teams"
}

type PlayerDetail struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	FootballTeamID uint   `json:"football_team" gorm:"index;not null"`
	Name           string `json:"name" gorm:"size:100;not null"`
	Position       string `json:"position" gorm:"size:100;not null"`
	NoGoals        int64  `json:"no_goals"`
	NoMatches      int64  `json:"no_matches"`
}

func (PlayerDetail) TableName() string {
	return "player_details"
}
