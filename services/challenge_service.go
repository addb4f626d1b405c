// file: services/challenge_service.go
package services

import (
	"AWDCTF/database"
	"AWDCTF/models"
	"AWDCTF/utils"

	"gorm.io/gorm"
)

// CreateAWDChallenge 创建 AWD 题目：基础分固定为 0，
// 并在此刻一次性生成上报 token（之后不可更换）。
func CreateAWDChallenge(challenge *models.Challenge) error {
	token, err := utils.GenerateChallengeToken()
	if err != nil {
		return err
	}
	challenge.Value = 0
	challenge.Token = token
	if challenge.DefensePoint == 0 {
		challenge.DefensePoint = 5
	}
	return database.DB.Create(challenge).Error
}

// DeleteAWDChallenge 删除题目并级联清理它名下的 AWD 奖励流水。
// 清理条件使用与写入相同的分类常量，保证级联不会因字面量不一致而漏删。
func DeleteAWDChallenge(challenge *models.Challenge) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ? AND category IN (?, ?)",
			challenge.ChallengeName, models.CategoryAttack, models.CategoryDefense).
			Delete(&models.Award{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Challenge{}, challenge.ID).Error
	})
}
