// file: models/solve.go
package models

import (
	"time"
)

// Solve 对应 awdctf_solve 表，记录常规题目的解题得分，
// 是组合队伍总分时的基础分来源（AWD 题目 Value 为 0，不会出现在这里加分）。
type Solve struct {
	ID          uint64    `gorm:"primarykey"`
	ChallengeID uint32    `gorm:"not null;index"`
	UserID      uint32    `gorm:"not null;index"`
	TeamID      uint32    `gorm:"not null;index"`
	Value       int       `gorm:"not null"`
	Date        time.Time `gorm:"not null;index"`
}

func (Solve) TableName() string {
	return "awdctf_solve"
}
