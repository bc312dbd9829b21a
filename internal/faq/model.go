package faq

type FAQ struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Question string `json:"question" gorm:"size:2000;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
}

func (FAQ) TableName() string {
	return "faqs"
}
