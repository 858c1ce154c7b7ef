package user

import (
	"time"
)

// User is a back-office staff account. Email is the login identity.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(50);not null;default:new_user" json:"role"`

	// Profile completion fields, empty until the user fills them in.
	Mobile  string `gorm:"type:varchar(20)" json:"mobile"`
	Address string `gorm:"type:text" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	Country string `gorm:"type:varchar(100)" json:"country"`
	Pincode string `gorm:"type:varchar(20)" json:"pincode"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// ProfileComplete reports whether the mandatory profile fields are filled.
func (u User) ProfileComplete() bool {
	return u.Mobile != "" && u.Address != ""
}
