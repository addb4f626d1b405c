// file: controllers/team_controller.go
package controllers

import (
	"AWDCTF/database"
	"AWDCTF/middlewares"
	"AWDCTF/models"
	"AWDCTF/services"
	"AWDCTF/utils"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// adminView 判断本次查询是否使用管理员视角（绕过冻结时间）。
// 需要显式带上 ?admin=1 且请求方持有管理员 Token。
func adminView(c *gin.Context) bool {
	return c.Query("admin") == "1" && middlewares.IsAdmin(c)
}

// GetTeamScore 查询队伍总分：基础解题分 + AWD 攻防奖励分。
// 冻结时间生效时，公开视角只能看到冻结前的分数快照。
func GetTeamScore(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 404, "队伍不存在")
			return
		}
		utils.Error(c, 5000, "数据库错误")
		return
	}

	score, err := services.TeamScore(team.ID, adminView(c))
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "success", gin.H{
		"team_id":   team.ID,
		"team_name": team.TeamName,
		"score":     score,
	})
}

// GetTeamAwards 查询队伍的攻防奖励历史，攻击与防御各为一条按时间倒序的序列
func GetTeamAwards(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 404, "队伍不存在")
			return
		}
		utils.Error(c, 5000, "数据库错误")
		return
	}

	attack, defense, err := services.TeamAWDAwards(team.ID, adminView(c))
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	type awardInfo struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
		Icon  string `json:"icon"`
		Date  string `json:"date"`
	}
	mapAwards := func(awards []models.Award) []awardInfo {
		out := make([]awardInfo, 0, len(awards))
		for _, a := range awards {
			out = append(out, awardInfo{
				Name:  a.Name,
				Value: a.Value,
				Icon:  a.Icon,
				Date:  a.Date.Format("2006-01-02 15:04:05"),
			})
		}
		return out
	}

	utils.Success(c, "success", gin.H{
		"team_id":   team.ID,
		"team_name": team.TeamName,
		"attack":    mapAwards(attack),
		"defense":   mapAwards(defense),
	})
}
