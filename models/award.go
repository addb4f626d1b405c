// file: models/award.go
package models

import (
	"time"
)

// AWD 奖励分类与图标。注意：聚合与级联删除都必须使用这两个常量，
// 不允许在别处手写分类字符串，避免写入与删除用的字面量不一致。
const (
	CategoryAttack  = "[AWD] Attack"
	CategoryDefense = "[AWD] Defense"

	IconAttack  = "lightning"
	IconDefense = "shield"
)

// Award 对应 awdctf_award 表，是只增不改的计分流水。
// Name 按题目名（而非题目 ID）关联 Challenge，这是沿袭的设计决策。
type Award struct {
	ID       uint64    `gorm:"primarykey"`
	Name     string    `gorm:"size:100;not null;index"`
	Category string    `gorm:"size:50;not null;index"`
	Value    int       `gorm:"not null"`
	TeamID   uint32    `gorm:"not null;index"`
	Icon     string    `gorm:"size:20"`
	Date     time.Time `gorm:"not null;index"`
}

func (Award) TableName() string {
	return "awdctf_award"
}
