package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ExamQuestion 单选题，选项下标从0开始
type ExamQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Marks         int      `json:"marks"`
}

type ExamQuestionList []ExamQuestion

func (l ExamQuestionList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ExamQuestionList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("unsupported exam questions type %T", value)
		}
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

// TotalMarks 按题目分值求和，未设置分值的题按1分计
func (l ExamQuestionList) TotalMarks() int {
	total := 0
	for _, q := range l {
		marks := q.Marks
		if marks <= 0 {
			marks = 1
		}
		total += marks
	}
	return total
}

type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *UintList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("unsupported uint list type %T", value)
		}
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

// Exam 限时考试定义。TotalMarks 由服务端根据题目分值重算，
// 客户端提交的总分一律忽略。
// swagger:model Exam
type Exam struct {
	BaseModel
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Questions   ExamQuestionList `gorm:"type:json" json:"questions"`
	Duration    int              `gorm:"default:0" json:"duration"` // 分钟
	TotalMarks  int              `gorm:"default:0" json:"totalMarks"`
	AssignedTo  UintList         `gorm:"type:json" json:"assignedTo"`
	CreatedBy   string           `gorm:"size:100" json:"createdBy"`
}

func (Exam) TableName() string {
	return "exams"
}

// AnswerList 答卷向量，与题目顺序一一对应。
// nil 表示未作答，负数或越界下标永远不会判对。
type AnswerList []*int

func (l AnswerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("unsupported answer list type %T", value)
		}
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

// ExamSubmission 一次考试答卷的不可变记录。TotalMarks 是判分时
// 考试总分的冗余快照，之后修改考试不回溯历史成绩。
// swagger:model ExamSubmission
type ExamSubmission struct {
	UUIDBase
	ExamID      uint       `gorm:"index;type:bigint unsigned" json:"examId"`
	StudentID   uint       `gorm:"index;type:bigint unsigned" json:"studentId"`
	Answers     AnswerList `gorm:"type:json" json:"answers"`
	Score       int        `gorm:"default:0" json:"score"`
	TotalMarks  int        `gorm:"default:0" json:"totalMarks"`
	TimeTaken   int        `gorm:"default:0" json:"timeTaken"` // 秒
	SubmittedAt time.Time  `json:"submittedAt"`
}

func (ExamSubmission) TableName() string {
	return "exam_submissions"
}

// Percentage 按判分时快照的总分计算，保留两位小数
func (s *ExamSubmission) Percentage() float64 {
	if s.TotalMarks <= 0 {
		return 0
	}
	return math.Round(float64(s.Score)/float64(s.TotalMarks)*100*100) / 100
}
