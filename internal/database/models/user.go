package models

// User represents a registered account. LoginID is the human-chosen unique
// identifier used as the token subject; Password holds the bcrypt hash.
type User struct {
	BaseModel
	LoginID  string `json:"login_id" gorm:"uniqueIndex;not null;size:50" validate:"required,min=2,max=50"`
	Password string `json:"-" gorm:"not null;size:100"`
	Name     string `json:"name" gorm:"not null;size:50" validate:"required,min=1,max=50"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
