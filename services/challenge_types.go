// file: services/challenge_types.go
package services

import (
	"AWDCTF/models"
	"sync"
)

// ChallengeType 描述一种可注册的题目类型及其前端资源
type ChallengeType struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Templates map[string]string `json:"templates"`
	Scripts   map[string]string `json:"scripts"`
}

var (
	typeMu         sync.Mutex
	challengeTypes = make(map[string]ChallengeType)
)

// RegisterChallengeType 注册题目类型，已存在的类型不会被覆盖（重复注册为 no-op）
func RegisterChallengeType(ct ChallengeType) {
	typeMu.Lock()
	defer typeMu.Unlock()
	if _, ok := challengeTypes[ct.ID]; ok {
		return
	}
	challengeTypes[ct.ID] = ct
}

// GetChallengeType 查询已注册的题目类型
func GetChallengeType(id string) (ChallengeType, bool) {
	typeMu.Lock()
	defer typeMu.Unlock()
	ct, ok := challengeTypes[id]
	return ct, ok
}

// RegisterChallengeTypes 在启动时调用一次，注册本平台支持的题目类型
func RegisterChallengeTypes() {
	RegisterChallengeType(ChallengeType{
		ID:   models.ChallengeTypeAWD,
		Name: models.ChallengeTypeAWD,
		Templates: map[string]string{
			"create": "/plugins/awd/assets/create.html",
			"update": "/plugins/awd/assets/update.html",
			"view":   "/plugins/awd/assets/view.html",
		},
		Scripts: map[string]string{
			"create": "/plugins/awd/assets/create.js",
			"update": "/plugins/awd/assets/update.js",
			"view":   "/plugins/awd/assets/view.js",
		},
	})
}
