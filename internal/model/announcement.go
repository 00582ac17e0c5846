package model

import "time"

// swagger:model Announcement
type Announcement struct {
	BaseModel
	Title   string    `gorm:"size:255;not null" json:"title"`
	Content string    `gorm:"type:text;not null" json:"content"`
	Date    time.Time `gorm:"index" json:"date"`
}

func (Announcement) TableName() string {
	return "announcements"
}
