// file: models/challenge.go
package models

import (
	"time"
)

type ChallengeState string

const (
	ChallengeStateVisible ChallengeState = "visible"
	ChallengeStateHidden  ChallengeState = "hidden"
)

// ChallengeTypeAWD 是本平台目前唯一注册的题目类型标识
const ChallengeTypeAWD = "awd_challenge"

// Challenge 对应 awdctf_challenge 表（AWD 攻防题目）。
// Value 固定为 0：AWD 题目不产生静态解题分，所有得分都走奖励流水表。
// Token 在创建时生成一次，之后不可更换，也不会出现在任何读取接口的返回中。
type Challenge struct {
	ID             uint32         `gorm:"primarykey"`
	ChallengeName  string         `gorm:"size:100;unique;not null"`
	Description    string         `gorm:"type:text"`
	ConnectionInfo string         `gorm:"size:255"`
	Category       string         `gorm:"size:50"`
	State          ChallengeState `gorm:"type:enum('visible','hidden');default:'hidden'"`
	Value          int            `gorm:"not null;default:0"`
	DefensePoint   int            `gorm:"not null;default:5"`
	Token          string         `gorm:"size:64;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Challenge) TableName() string {
	return "awdctf_challenge"
}
