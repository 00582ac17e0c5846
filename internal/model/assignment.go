package model

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
)

// swagger:model Assignment
type Assignment struct {
	BaseModel
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Subject     string           `gorm:"size:100" json:"subject"`
	DueDate     string           `gorm:"size:10" json:"dueDate"` // YYYY-MM-DD
	Status      AssignmentStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (Assignment) TableName() string {
	return "assignments"
}
