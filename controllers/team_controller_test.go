// file: controllers/team_controller_test.go
package controllers

import (
	"AWDCTF/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTeamRouter 注册队伍读取路由；role 非空时用打桩中间件模拟已登录角色
func newTeamRouter(role models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/teams")
	if role != "" {
		group.Use(func(c *gin.Context) {
			c.Set("user_role", role)
			c.Next()
		})
	}
	group.GET("/:id/score", GetTeamScore)
	group.GET("/:id/awards", GetTeamAwards)
	return r
}

type scoreResp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		TeamID   uint32 `json:"team_id"`
		TeamName string `json:"team_name"`
		Score    int    `json:"score"`
	} `json:"data"`
}

func TestGetTeamScore_Public(t *testing.T) {
	mock := setupMockDB(t)
	r := newTeamRouter("")

	mock.ExpectQuery("SELECT \\* FROM `awdctf_team`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_name"}).AddRow(1, "team-one"))
	// 公开视角要读取 freeze 配置
	mock.ExpectQuery("SELECT \\* FROM `awdctf_config`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_solve").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(100))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_award").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(45))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/teams/1/score", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp scoreResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 145, resp.Data.Score)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ?admin=1 + 管理员角色时绕过 freeze，不读取配置
func TestGetTeamScore_AdminBypassesFreeze(t *testing.T) {
	mock := setupMockDB(t)
	r := newTeamRouter(models.RoleAdmin)

	mock.ExpectQuery("SELECT \\* FROM `awdctf_team`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_name"}).AddRow(1, "team-one"))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_solve").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(100))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_award").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(60))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/teams/1/score?admin=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp scoreResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 160, resp.Data.Score)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 普通用户即使带 ?admin=1 也不能绕过 freeze
func TestGetTeamScore_NonAdminCannotBypass(t *testing.T) {
	mock := setupMockDB(t)
	r := newTeamRouter(models.RoleUser)

	mock.ExpectQuery("SELECT \\* FROM `awdctf_team`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_name"}).AddRow(1, "team-one"))
	mock.ExpectQuery("SELECT \\* FROM `awdctf_config`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_solve").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(value\\), 0\\) FROM awdctf_award").
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/teams/1/score?admin=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTeamAwards_NotFound(t *testing.T) {
	mock := setupMockDB(t)
	r := newTeamRouter("")

	mock.ExpectQuery("SELECT \\* FROM `awdctf_team`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/teams/99/awards", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 404, resp.Code)
}
