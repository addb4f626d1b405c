// file: models/config.go
package models

import (
	"time"
)

// 约定的配置键
const (
	ConfigKeyFreeze = "freeze" // 值为 unix 时间戳字符串，设置后公开查询只统计该时刻之前的奖励
)

// Config 对应 awdctf_config 表，简单的键值配置存储
type Config struct {
	ID        uint32    `gorm:"primarykey"`
	Key       string    `gorm:"column:config_key;size:64;unique;not null"`
	Value     string    `gorm:"column:config_value;size:255"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Config) TableName() string {
	return "awdctf_config"
}
