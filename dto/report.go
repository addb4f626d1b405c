// file: dto/report.go
package dto

// ReportReq 是外部 agent 上报的批量攻防结果。
// attacks 的键为队伍 ID（JSON 对象键，数字字符串），值为该队本轮攻击得分；
// defenses 为本轮守住服务的队伍 ID 列表。
// 绑定失败（缺字段、points 非数字）时整份上报被拒绝，不做部分落库。
type ReportReq struct {
	ID       uint32         `json:"id" binding:"required"`
	Token    string         `json:"token" binding:"required"`
	Attacks  map[uint32]int `json:"attacks"`
	Defenses []uint32       `json:"defenses"`
}
