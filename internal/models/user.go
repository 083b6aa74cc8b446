package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Email    *string `gorm:"size:100;uniqueIndex" json:"email"`
	Username *string `gorm:"size:50;uniqueIndex" json:"username"`
	Phone    string  `gorm:"size:20" json:"phone"`

	Role     string `gorm:"size:20;default:'client'" json:"role"`
	Location string `gorm:"size:5" json:"location"`

	PasswordHash        string `gorm:"size:255" json:"-"`
	ForcePasswordChange bool   `gorm:"default:false" json:"force_password_change"`
	IsActive            bool   `gorm:"default:true" json:"is_active"`

	// BraiderID links a staff account to the braider profile shown to
	// clients. Kept as a plain string: braider profiles predate accounts.
	BraiderID string `gorm:"size:50" json:"braider_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleClient   = "client"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

func (u *User) IsStaff() bool {
	return u.Role == RoleEmployee || u.Role == RoleAdmin
}
