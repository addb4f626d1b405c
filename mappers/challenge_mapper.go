// file: mappers/challenge_mapper.go
package mappers

import (
	"AWDCTF/dto"
	"AWDCTF/models"
)

func MapCreateReqToModel(req dto.CreateChallengeReq) models.Challenge {
	state := models.ChallengeState(req.State)
	if state != models.ChallengeStateVisible {
		state = models.ChallengeStateHidden
	}
	return models.Challenge{
		ChallengeName:  req.ChallengeName,
		Description:    req.Description,
		ConnectionInfo: req.ConnectionInfo,
		Category:       req.Category,
		State:          state,
		DefensePoint:   req.DefensePoint,
		// Value 与 Token 由 services.CreateAWDChallenge 统一赋值
	}
}

func MapModelToItemResp(ch models.Challenge) dto.ChallengeItemResp {
	return dto.ChallengeItemResp{
		ID:            ch.ID,
		ChallengeName: ch.ChallengeName,
		Category:      ch.Category,
		Value:         ch.Value,
		State:         string(ch.State),
	}
}

func MapModelToDetailResp(ch models.Challenge, typeData *dto.TypeDataResp) dto.ChallengeDetailResp {
	return dto.ChallengeDetailResp{
		ID:             ch.ID,
		ChallengeName:  ch.ChallengeName,
		Value:          ch.Value,
		Description:    ch.Description,
		ConnectionInfo: ch.ConnectionInfo,
		Category:       ch.Category,
		State:          string(ch.State),
		DefensePoint:   ch.DefensePoint,
		Type:           models.ChallengeTypeAWD,
		TypeData:       typeData,
	}
}
