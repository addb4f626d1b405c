// file: services/testutil_test.go
package services

import (
	"AWDCTF/database"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB 把全局 database.DB 替换为 sqlmock 驱动的 GORM 连接
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.DB = gdb
	t.Cleanup(func() { _ = db.Close() })
	return mock
}

// anyTime 匹配任意 time.Time 类型的 SQL 参数
type anyTime struct{}

func (anyTime) Match(v driver.Value) bool {
	_, ok := v.(time.Time)
	return ok
}

// contestRows 构造一行比赛数据
func contestRows(start, end time.Time, paused bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "contest_name", "start_time", "end_time", "paused"}).
		AddRow(1, "AWD Final", start, end, paused)
}

// challengeRows 构造一行题目数据
func challengeRows(id uint32, name, token, state string, defensePoint int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "challenge_name", "state", "value", "defense_point", "token"}).
		AddRow(id, name, state, 0, defensePoint, token)
}

// teamRows 构造一行队伍数据
func teamRows(id uint32, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "team_name"}).AddRow(id, name)
}

// expectRunningContest 让比赛时钟处于进行中
func expectRunningContest(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT \\* FROM `awdctf_contest`").
		WillReturnRows(contestRows(time.Now().Add(-time.Hour), time.Now().Add(time.Hour), false))
}
