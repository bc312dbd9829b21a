package contact

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"fullname" gorm:"size:255"`
	Phone    int64  `json:"phone" gorm:"not null"`
	Email    string `json:"email" gorm:"size:255;not null"`
	Subject  string `json:"subject" gorm:"size:1000;not null"`
	Message  string `json:"message" gorm:"type:text;not null"`
}

func (Contact) TableName() string {
	return "contacts"
}
