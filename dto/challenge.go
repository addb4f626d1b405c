// file: dto/challenge.go
package dto

// ========== 请求 DTO ==========

type CreateChallengeReq struct {
	// 规范字段（snake_case）
	ChallengeName  string `json:"challenge_name"`
	Description    string `json:"description"`
	ConnectionInfo string `json:"connection_info"`
	Category       string `json:"category"`
	State          string `json:"state"` // visible / hidden
	DefensePoint   int    `json:"defense_point"`

	// 仅用于兼容旧客户端（camelCase 变体），别名与上面 tag 不重复
	ChallengeNameCamel  string `json:"challengeName"`
	ConnectionInfoCamel string `json:"connectionInfo"`
	DefensePointCamel   int    `json:"defensePoint"`
}

// Normalize: 将 camelCase 别名归一化到 snake_case
func (r *CreateChallengeReq) Normalize() {
	if r.ChallengeName == "" && r.ChallengeNameCamel != "" {
		r.ChallengeName = r.ChallengeNameCamel
	}
	if r.ConnectionInfo == "" && r.ConnectionInfoCamel != "" {
		r.ConnectionInfo = r.ConnectionInfoCamel
	}
	if r.DefensePoint == 0 && r.DefensePointCamel != 0 {
		r.DefensePoint = r.DefensePointCamel
	}
}

// ========== 响应 DTO ==========

type ChallengeItemResp struct {
	ID            uint32 `json:"id"`
	ChallengeName string `json:"challenge_name"`
	Category      string `json:"category"`
	Value         int    `json:"value"`
	State         string `json:"state"`
}

// TypeDataResp 对应题目类型注册表中的元信息
type TypeDataResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Templates map[string]string `json:"templates"`
	Scripts   map[string]string `json:"scripts"`
}

// ChallengeDetailResp 题目详情，不包含 token
type ChallengeDetailResp struct {
	ID             uint32        `json:"id"`
	ChallengeName  string        `json:"name"`
	Value          int           `json:"value"`
	Description    string        `json:"description"`
	ConnectionInfo string        `json:"connection_info"`
	Category       string        `json:"category"`
	State          string        `json:"state"`
	DefensePoint   int           `json:"defense_point"`
	Type           string        `json:"type"`
	TypeData       *TypeDataResp `json:"type_data,omitempty"`
}
