// file: services/config_service.go
package services

import (
	"AWDCTF/database"
	"AWDCTF/models"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strconv"
	"time"
)

// GetConfig 按键读取配置值，键不存在时返回空串
func GetConfig(key string) (string, error) {
	var cfg models.Config
	err := database.DB.Where("config_key = ?", key).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return cfg.Value, nil
}

// SetConfig 写入或更新配置键值
func SetConfig(key, value string) error {
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value"}),
	}).Create(&models.Config{Key: key, Value: value}).Error
}

// FreezeTime 读取冻结时间。未配置或配置非法时返回 nil（不冻结）。
func FreezeTime() *time.Time {
	val, err := GetConfig(models.ConfigKeyFreeze)
	if err != nil || val == "" {
		return nil
	}
	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(ts, 0)
	return &t
}
