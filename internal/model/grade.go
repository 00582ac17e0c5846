package model

// Grade 学生在某个作业上的得分，(student, assignment) 组合唯一
// swagger:model Grade
type Grade struct {
	BaseModel
	StudentID    uint `gorm:"uniqueIndex:idx_grade_student_assignment;type:bigint unsigned" json:"studentId"`
	AssignmentID uint `gorm:"uniqueIndex:idx_grade_student_assignment;type:bigint unsigned" json:"assignmentId"`
	Score        int  `gorm:"default:0" json:"score"`
}

func (Grade) TableName() string {
	return "grades"
}
