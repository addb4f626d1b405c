// file: services/report_service.go
package services

import (
	"AWDCTF/database"
	"AWDCTF/dto"
	"AWDCTF/models"
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

// 上报校验失败的四种结果，错误文案会原样返回给 agent
var (
	ErrCompetitionNotRunning = errors.New("CTF is paused or ended")
	ErrChallengeNotFound     = errors.New("Challenge not found")
	ErrInvalidToken          = errors.New("Invalid token")
	ErrChallengeHidden       = errors.New("Challenge is hidden")
)

// IsReportError 判断是否为上报校验类错误（区别于存储层错误）
func IsReportError(err error) bool {
	return errors.Is(err, ErrCompetitionNotRunning) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrChallengeHidden)
}

// AuthenticateChallenge 用常量时间比较校验题目 token
func AuthenticateChallenge(challenge *models.Challenge, token string) bool {
	return subtle.ConstantTimeCompare([]byte(challenge.Token), []byte(token)) == 1
}

// SubmitReport 处理一次 agent 上报：按顺序校验比赛时钟、题目存在性、
// token、题目可见性，全部通过后在单个事务里把攻防积分追加到奖励流水表。
// 事务要么全部落库要么全部回滚，不会留下半份上报。
// 积分为 0 的攻击项和无法解析的队伍会被静默跳过（容忍 agent 的过期名单）。
func SubmitReport(req dto.ReportReq) error {
	if !CTFRunning() {
		return ErrCompetitionNotRunning
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChallengeNotFound
		}
		return err
	}

	if !AuthenticateChallenge(&challenge, req.Token) {
		return ErrInvalidToken
	}

	if challenge.State != models.ChallengeStateVisible {
		return ErrChallengeHidden
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for teamID, points := range req.Attacks {
			if points == 0 {
				continue
			}
			var team models.Team
			if err := tx.First(&team, teamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			award := models.Award{
				Name:     challenge.ChallengeName,
				Category: models.CategoryAttack,
				Value:    points,
				TeamID:   team.ID,
				Icon:     models.IconAttack,
				Date:     now,
			}
			if err := tx.Create(&award).Error; err != nil {
				return err
			}
			log.Printf("[+] %s attacked %s for %d.", team.TeamName, challenge.ChallengeName, points)
		}

		for _, teamID := range req.Defenses {
			var team models.Team
			if err := tx.First(&team, teamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			award := models.Award{
				Name:     challenge.ChallengeName,
				Category: models.CategoryDefense,
				Value:    challenge.DefensePoint,
				TeamID:   team.ID,
				Icon:     models.IconDefense,
				Date:     now,
			}
			if err := tx.Create(&award).Error; err != nil {
				return err
			}
			log.Printf("[+] %s defensed %s.", team.TeamName, challenge.ChallengeName)
		}

		return nil
	})
	if err != nil {
		return err
	}

	InvalidateScoreboardCache(challenge.ChallengeName)
	return nil
}

// InvalidateScoreboardCache 上报落库后清掉该题目的排行榜缓存
func InvalidateScoreboardCache(challengeName string) {
	if database.RDB == nil {
		return
	}
	if err := database.RDB.Del(database.Ctx, ScoreboardCacheKey(challengeName)).Err(); err != nil {
		log.Printf("Failed to clear scoreboard cache for %s: %v", challengeName, err)
	}
}
