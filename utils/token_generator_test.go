// file: utils/token_generator_test.go
package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChallengeToken(t *testing.T) {
	token, err := GenerateChallengeToken()
	require.NoError(t, err)

	// 16 字节随机数 → 32 个 hex 字符
	assert.Len(t, token, ChallengeTokenBytes*2)
	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, ChallengeTokenBytes)
}

func TestGenerateChallengeToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := GenerateChallengeToken()
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}
