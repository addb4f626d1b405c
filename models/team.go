// file: models/team.go
package models

import (
	"time"
)

type Team struct {
	ID        uint32       `gorm:"primarykey" json:"id"`
	TeamName  string       `gorm:"size:100;unique;not null" json:"team_name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Members   []TeamMember `gorm:"foreignKey:TeamID" json:"members"`
}

func (Team) TableName() string {
	return "awdctf_team"
}
