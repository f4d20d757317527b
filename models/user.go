package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Username  string    `gorm:"unique;size:150;not null" json:"username"`
	Email     string    `gorm:"unique;size:254;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `gorm:"size:150" json:"firstName"`
	LastName  string    `gorm:"size:150" json:"lastName"`
	Role      int       `gorm:"default:0" json:"role"`
	Profile   *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// IsStaff reports whether the account has unrestricted access.
func (u *User) IsStaff() bool {
	return u.Role == 1
}

// Profile holds the contact data attached to exactly one user. It is created
// together with the user at registration.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
