package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:100" json:"title"`
	Category string `gorm:"size:50" json:"category"`

	ObjectKey string `gorm:"size:255;not null" json:"-"`
	URL       string `gorm:"size:255;not null" json:"url"`

	UploadedBy uint `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
}
