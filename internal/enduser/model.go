package enduser

// EndUser is a platform member browsing the public site, distinct from the
// admin accounts in the users table.
type EndUser struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"full_name" gorm:"size:255;not null"`
	Email    string `json:"email" gorm:"size:255;not null"`
	Phone    int64  `json:"phone"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

func (EndUser) TableName() string {
	return "end_users"
}

// EndUserDetail is the profile attached to an end user, addressed by the
// owning end user's id on the userprofile endpoints.
type EndUserDetail struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	EndUserID    uint   `json:"end_user" gorm:"uniqueIndex;not null"`
	Address      string `json:"address" gorm:"size:255"`
	City         string `json:"city" gorm:"size:100"`
	FavoriteTeam string `json:"favorite_team" gorm:"size:100"`
	Bio          string `json:"bio" gorm:"type:text"`
}

func (EndUserDetail) TableName() string {
	return "end_user_details"
}
