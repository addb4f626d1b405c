// file: controllers/challenge_controller.go
package controllers

import (
	"AWDCTF/database"
	"AWDCTF/dto"
	"AWDCTF/mappers"
	"AWDCTF/models"
	"AWDCTF/services"
	"AWDCTF/utils"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateChallenge 管理员创建 AWD 题目。
// token 在这里一次性生成，创建响应是它唯一一次对管理员可见的机会。
func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize() // 兼容 camelCase / snake_case

	if req.ChallengeName == "" {
		utils.Error(c, 1001, "缺少必填字段")
		return
	}
	if req.DefensePoint < 0 {
		utils.Error(c, 1001, "defense_point 不能为负数")
		return
	}

	var existing models.Challenge
	if err := database.DB.Where("challenge_name = ?", req.ChallengeName).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "题目名称已存在")
		return
	}

	chal := mappers.MapCreateReqToModel(req)
	if err := services.CreateAWDChallenge(&chal); err != nil {
		utils.Error(c, 5000, "创建题目失败: "+err.Error())
		return
	}

	utils.Success(c, "Challenge created successfully", gin.H{
		"id":    chal.ID,
		"token": chal.Token,
	})
}

// ListChallenges —— 用户可见的题目列表
func ListChallenges(c *gin.Context) {
	var challenges []models.Challenge
	db := database.DB.Model(&models.Challenge{}).
		Where("state = ?", models.ChallengeStateVisible)

	if err := db.Find(&challenges).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, mappers.MapModelToItemResp(ch))
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

// GetChallengeDetail —— 题目详情（不含 token）
func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var chal models.Challenge
	if err := database.DB.First(&chal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 404, "题目不存在")
			return
		}
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var typeData *dto.TypeDataResp
	if ct, ok := services.GetChallengeType(models.ChallengeTypeAWD); ok {
		typeData = &dto.TypeDataResp{
			ID:        ct.ID,
			Name:      ct.Name,
			Templates: ct.Templates,
			Scripts:   ct.Scripts,
		}
	}

	utils.Success(c, "success", mappers.MapModelToDetailResp(chal, typeData))
}

// UpdateChallengeState 管理员切换题目可见性（visible/hidden）
func UpdateChallengeState(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		State string `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}
	if req.State != string(models.ChallengeStateVisible) && req.State != string(models.ChallengeStateHidden) {
		utils.Error(c, 1001, "state 取值无效（visible/hidden）")
		return
	}

	result := database.DB.Model(&models.Challenge{}).Where("id = ?", id).Update("state", req.State)
	if result.Error != nil {
		utils.Error(c, 5000, "数据库错误: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 404, "题目不存在")
		return
	}

	utils.Success(c, "Challenge state updated successfully", nil)
}

// DeleteChallenge 管理员删除题目，同时级联清理该题目名下的 AWD 奖励流水
func DeleteChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var chal models.Challenge
	if err := database.DB.First(&chal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 404, "题目不存在")
			return
		}
		utils.Error(c, 5000, "数据库错误")
		return
	}

	if err := services.DeleteAWDChallenge(&chal); err != nil {
		utils.Error(c, 5000, "删除题目失败: "+err.Error())
		return
	}

	utils.Success(c, "Challenge deleted successfully", nil)
}
