// file: utils/token_generator.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// ChallengeTokenBytes：题目 token 的随机字节数，128 bit
const ChallengeTokenBytes = 16

// GenerateChallengeToken 生成题目上报用的密钥 token。
// 必须使用密码学随机源：该 token 是外部 agent 上报的唯一凭证。
func GenerateChallengeToken() (string, error) {
	buf := make([]byte, ChallengeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
