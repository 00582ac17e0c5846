package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// AttendanceRecord 单个学生某日的出勤标记
type AttendanceRecord struct {
	StudentID uint             `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
}

type AttendanceRecordList []AttendanceRecord

func (l AttendanceRecordList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *AttendanceRecordList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("unsupported attendance records type %T", value)
		}
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

// Attendance 按日期归档全班出勤，一天一条记录
// swagger:model Attendance
type Attendance struct {
	BaseModel
	Date    string               `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Records AttendanceRecordList `gorm:"type:json" json:"records"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// AttendanceSummary 某日出勤统计
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

func (a *Attendance) Summary() AttendanceSummary {
	var s AttendanceSummary
	for _, r := range a.Records {
		switch r.Status {
		case Present:
			s.Present++
		case Absent:
			s.Absent++
		case Late:
			s.Late++
		}
	}
	return s
}
