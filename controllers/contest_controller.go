// file: controllers/contest_controller.go
package controllers

import (
	"AWDCTF/database"
	"AWDCTF/models"
	"AWDCTF/services"
	"AWDCTF/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GetContestStatus 查询比赛时钟状态和剩余时间
func GetContestStatus(c *gin.Context) {
	var contest models.Contest
	if err := database.DB.First(&contest, 1).Error; err != nil {
		utils.Error(c, 404, "No active contest found")
		return
	}

	now := time.Now()
	var status models.ContestStatus
	var remainingTime string

	switch {
	case contest.Paused:
		status = models.ContestStatusPaused
		remainingTime = contest.EndTime.Sub(now).Round(time.Second).String()
	case now.Before(contest.StartTime):
		status = models.ContestStatusPreparing
		remainingTime = contest.StartTime.Sub(now).Round(time.Second).String()
	case now.After(contest.EndTime):
		status = models.ContestStatusEnded
		remainingTime = "0s"
	default:
		status = models.ContestStatusRunning
		remainingTime = contest.EndTime.Sub(now).Round(time.Second).String()
	}

	utils.Success(c, "success", gin.H{
		"status":         status,
		"now":            now.Format("2006-01-02 15:04:05"),
		"remaining_time": remainingTime,
	})
}

// --- 管理员接口 ---

// UpsertContest 创建或修改比赛信息（含暂停开关）
func UpsertContest(c *gin.Context) {
	var req models.Contest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	// 使用 GORM 的 Upsert 功能，存在则更新，不存在则创建 (ID=1)
	req.ID = 1
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"contest_name", "start_time", "end_time", "paused"}),
	}).Create(&req).Error; err != nil {
		utils.Error(c, 5000, "Failed to create/update contest: "+err.Error())
		return
	}

	utils.Success(c, "Contest created/updated successfully", nil)
}

// SetConfigValue 写入配置项。清空 value 即删除该配置的效果
// （例如把 freeze 置空来解除冻结）。
func SetConfigValue(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	if err := services.SetConfig(key, req.Value); err != nil {
		utils.Error(c, 5000, "Failed to set config: "+err.Error())
		return
	}

	utils.Success(c, "Config updated successfully", gin.H{"key": key})
}
