package pricing

// Pricing is a subscription tier. General and SchoolCorporate flag which
// audience the tier is shown to.
type Pricing struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Amount          int64  `json:"amount" gorm:"not null"`
	Description     string `json:"description" gorm:"type:text"`
	General         bool   `json:"general" gorm:"default:false"`
	SchoolCorporate bool   `json:"school_corporate" gorm:"default:false"`
}

func (Pricing) TableName() string {
	return "pricings"
}
