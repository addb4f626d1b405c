// file: services/clock_service.go
package services

import (
	"AWDCTF/database"
	"AWDCTF/models"
	"time"
)

// currentContest 读取约定的 ID=1 比赛行
func currentContest() (*models.Contest, error) {
	var contest models.Contest
	if err := database.DB.First(&contest, 1).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

// CTFStarted 比赛是否已开始
func CTFStarted() bool {
	contest, err := currentContest()
	if err != nil {
		return false
	}
	return !time.Now().Before(contest.StartTime)
}

// CTFEnded 比赛是否已结束
func CTFEnded() bool {
	contest, err := currentContest()
	if err != nil {
		// 没有比赛信息时按已结束处理（拒绝上报）
		return true
	}
	return time.Now().After(contest.EndTime)
}

// CTFPaused 比赛是否处于暂停状态
func CTFPaused() bool {
	contest, err := currentContest()
	if err != nil {
		return true
	}
	return contest.Paused
}

// CTFRunning 组合判断：已开始、未暂停、未结束。
// 只加载一次比赛行，上报校验走这里。
func CTFRunning() bool {
	contest, err := currentContest()
	if err != nil {
		return false
	}
	now := time.Now()
	if now.Before(contest.StartTime) || now.After(contest.EndTime) {
		return false
	}
	return !contest.Paused
}
