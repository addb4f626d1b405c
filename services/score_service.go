// file: services/score_service.go
package services

import (
	"AWDCTF/database"
	"AWDCTF/models"
	"time"
)

// ScoreboardRow 是单个题目排行榜的一行聚合结果
type ScoreboardRow struct {
	TeamID     uint32    `json:"team_id"`
	TeamName   string    `json:"team_name"`
	Attack     int       `json:"attack"`
	Defense    int       `json:"defense"`
	Score      int       `json:"score"`
	LastUpdate time.Time `json:"last_update"`
}

// ScoreboardCacheKey 单题排行榜在 Redis 中的缓存键，读写与失效共用
func ScoreboardCacheKey(challengeName string) string {
	return "awd:scoreboard:" + challengeName
}

// ChallengeScoreboard 对指定题目的奖励流水做分组聚合：
// 按队伍分别求攻击分、防御分与总分，取最近一次得分时间，
// 总分降序排列，同分时最近有动作的队伍排在前面。
// 没有对应分类流水的队伍该项求和为 0，而不是缺失。
func ChallengeScoreboard(challengeName string) ([]ScoreboardRow, error) {
	var rows []ScoreboardRow
	err := database.DB.Raw(`
		SELECT a.team_id,
		       t.team_name,
		       SUM(CASE WHEN a.category = ? THEN a.value ELSE 0 END) AS attack,
		       SUM(CASE WHEN a.category = ? THEN a.value ELSE 0 END) AS defense,
		       SUM(a.value) AS score,
		       MAX(a.date) AS last_update
		FROM awdctf_award a
		JOIN awdctf_team t ON t.id = a.team_id
		WHERE a.name = ? AND a.category IN (?, ?)
		GROUP BY a.team_id, t.team_name
		ORDER BY score DESC, last_update DESC`,
		models.CategoryAttack, models.CategoryDefense,
		challengeName,
		models.CategoryAttack, models.CategoryDefense,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TeamScore 组合计算队伍总分：常规解题基础分 + AWD 奖励分。
// 配置了冻结时间且非管理员视角时，两部分都只统计冻结时刻之前的记录，
// 对外展示一个稳定的分数快照；管理员始终看到未过滤的分数。
func TeamScore(teamID uint32, admin bool) (int, error) {
	var freeze *time.Time
	if !admin {
		freeze = FreezeTime()
	}

	var base int
	baseQuery := `SELECT COALESCE(SUM(value), 0) FROM awdctf_solve WHERE team_id = ?`
	baseArgs := []interface{}{teamID}
	if freeze != nil {
		baseQuery += ` AND date < ?`
		baseArgs = append(baseArgs, *freeze)
	}
	if err := database.DB.Raw(baseQuery, baseArgs...).Scan(&base).Error; err != nil {
		return 0, err
	}

	var awd int
	awdQuery := `SELECT COALESCE(SUM(value), 0) FROM awdctf_award WHERE team_id = ? AND category IN (?, ?)`
	awdArgs := []interface{}{teamID, models.CategoryAttack, models.CategoryDefense}
	if freeze != nil {
		awdQuery += ` AND date < ?`
		awdArgs = append(awdArgs, *freeze)
	}
	if err := database.DB.Raw(awdQuery, awdArgs...).Scan(&awd).Error; err != nil {
		return 0, err
	}

	return base + awd, nil
}

// TeamAWDAwards 返回队伍的攻击、防御两条奖励历史（各自按时间倒序），
// 冻结过滤规则与 TeamScore 一致。
func TeamAWDAwards(teamID uint32, admin bool) (attack []models.Award, defense []models.Award, err error) {
	var freeze *time.Time
	if !admin {
		freeze = FreezeTime()
	}

	query := func(category string, out *[]models.Award) error {
		db := database.DB.Where("team_id = ? AND category = ?", teamID, category)
		if freeze != nil {
			db = db.Where("date < ?", *freeze)
		}
		return db.Order("date desc").Find(out).Error
	}

	if err = query(models.CategoryAttack, &attack); err != nil {
		return nil, nil, err
	}
	if err = query(models.CategoryDefense, &defense); err != nil {
		return nil, nil, err
	}
	return attack, defense, nil
}
