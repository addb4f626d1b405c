// file: controllers/awd_controller.go
package controllers

import (
	"AWDCTF/database"
	"AWDCTF/dto"
	"AWDCTF/services"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AWD 插件接口不走 utils.Response 封装：
// 上报接口固定返回 {"success": bool, "message": string}（HTTP 始终 200），
// 排行榜接口返回裸数组，与外部 agent / 前端脚本约定的格式保持一致。

// AWDScoreboard 单题排行榜，公开接口。
// 每行为 [team_id, team_name, attack, defense, total, last_update_unix]。
func AWDScoreboard(c *gin.Context) {
	chalName := c.Param("chal_name")

	// 1. 尝试从 Redis 获取缓存
	cacheKey := services.ScoreboardCacheKey(chalName)
	if database.RDB != nil {
		if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
			return
		}
	}

	rows, err := services.ChallengeScoreboard(chalName)
	if err != nil {
		c.JSON(http.StatusOK, [][]interface{}{})
		return
	}

	out := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, []interface{}{
			row.TeamID, row.TeamName, row.Attack, row.Defense, row.Score, row.LastUpdate.Unix(),
		})
	}

	// 2. 缓存未命中则回填，短有效期保证准实时性
	if jsonData, err := json.Marshal(out); err == nil && database.RDB != nil {
		database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
	}

	c.JSON(http.StatusOK, out)
}

// AWDUpdate 接收 agent 的攻防上报（GET/POST 均可，JSON body）。
// 该接口只认题目 token，不走会话鉴权，也不做 CSRF 校验。
func AWDUpdate(c *gin.Context) {
	var req dto.ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// 上报体不合法时整份拒绝，不做部分落库
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid report body"})
		return
	}

	if err := services.SubmitReport(req); err != nil {
		msg := "Internal error, report not applied"
		if services.IsReportError(err) {
			msg = err.Error()
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
}
