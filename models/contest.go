// file: models/contest.go
package models

import (
	"time"
)

// ContestStatus 是由比赛行推导出的时钟状态，不落库
type ContestStatus string

const (
	ContestStatusPreparing ContestStatus = "preparing"
	ContestStatusRunning   ContestStatus = "running"
	ContestStatusPaused    ContestStatus = "paused"
	ContestStatusEnded     ContestStatus = "ended"
)

// Contest 对应 awdctf_contest 表，约定只使用 ID=1 的一行描述当前比赛。
// 比赛时钟（开始/暂停/结束）由这一行推导。
type Contest struct {
	ID          uint      `gorm:"primarykey" json:"id,omitempty"`
	ContestName string    `gorm:"size:100;not null" json:"contest_name"`
	StartTime   time.Time `gorm:"not null" json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime     time.Time `gorm:"not null" json:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Paused      bool      `gorm:"default:0" json:"paused"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

func (Contest) TableName() string {
	return "awdctf_contest"
}
