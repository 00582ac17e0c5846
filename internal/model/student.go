package model

// swagger:model Student
type Student struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	ParentName  string `gorm:"size:100" json:"parentName"`
	ParentEmail string `gorm:"size:100" json:"parentEmail"`
	ParentPhone string `gorm:"size:30" json:"parentPhone"`
}

func (Student) TableName() string {
	return "students"
}
