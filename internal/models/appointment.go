package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nil for guest bookings. The customer snapshot below is always filled.
	ClientID *uint `gorm:"index" json:"client_id"`
	Client   *User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	EmployeeID *uint `gorm:"index" json:"employee_id"`
	Employee   *User `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee,omitempty"`

	BraiderID   string `gorm:"size:50;index;not null" json:"braider_id"`
	BraiderName string `gorm:"size:100" json:"braider_name"`

	Date     string `gorm:"size:10;not null" json:"date"`      // YYYY-MM-DD
	TimeSlot string `gorm:"size:10;not null" json:"time_slot"` // H:MM AM/PM

	// Derived from Date+TimeSlot at creation, used for ordering only.
	StartTime time.Time `gorm:"index" json:"start_time"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	ServiceName  string `gorm:"size:100" json:"service_name"`
	ServicePrice int    `json:"service_price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CancelledBy string     `gorm:"size:20" json:"cancelled_by"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
