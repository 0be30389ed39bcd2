package models

import "time"

// User is a credential-store record. UserID is the public identifier the API
// speaks; ID is the table's surrogate key and never leaves the process.
// Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    int       `gorm:"uniqueIndex;not null" json:"user_id"`
	UserName  string    `gorm:"uniqueIndex;size:191;not null" json:"user_name"`
	FirstName string    `gorm:"size:191;not null" json:"first_name"`
	LastName  string    `gorm:"size:191;not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	BirthDate time.Time `json:"birth_date"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Status    bool      `gorm:"default:true" json:"status"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	PageSize  int       `gorm:"default:12" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
