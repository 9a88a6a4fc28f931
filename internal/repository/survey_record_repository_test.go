package repository

import (
	"testing"
	"time"

	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.SurveyRecord{}))
	return db
}

func record(sessionID, surveyType string, talented bool) *model.SurveyRecord {
	return &model.SurveyRecord{
		SessionID:     sessionID,
		SurveyType:    surveyType,
		Name:          "student " + sessionID,
		IsTalented:    talented,
		TalentPercent: 40,
		SaveStatus:    "pending",
	}
}

func TestSurveyRecordCreateIsIdempotentPerSession(t *testing.T) {
	repo := NewSurveyRecordRepository(newTestDB(t))

	require.NoError(t, repo.Create(record("s1", "Teachers", false)))
	again := record("s1", "Teachers", true)
	again.TalentPercent = 80
	require.NoError(t, repo.Create(again))

	got, err := repo.FindBySessionID("s1")
	require.NoError(t, err)
	assert.True(t, got.IsTalented)
	assert.Equal(t, 80.0, got.TalentPercent)

	_, total, err := repo.List(model.SurveyRecordFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSurveyRecordUpdateSaveStatus(t *testing.T) {
	repo := NewSurveyRecordRepository(newTestDB(t))
	require.NoError(t, repo.Create(record("s1", "Parents", false)))

	now := time.Now()
	require.NoError(t, repo.UpdateSaveStatus("s1", "saved", "", now))
	got, err := repo.FindBySessionID("s1")
	require.NoError(t, err)
	assert.Equal(t, "saved", got.SaveStatus)
	require.NotNil(t, got.SavedAt)

	require.NoError(t, repo.Create(record("s2", "Parents", false)))
	require.NoError(t, repo.UpdateSaveStatus("s2", "failed", "status 500", now))
	got, err = repo.FindBySessionID("s2")
	require.NoError(t, err)
	assert.Equal(t, "status 500", got.SaveError)
	assert.Nil(t, got.SavedAt)

	err = repo.UpdateSaveStatus("nope", "saved", "", now)
	assert.ErrorIs(t, err, util.ErrRecordNotFound)

	_, err = repo.FindBySessionID("nope")
	assert.ErrorIs(t, err, util.ErrRecordNotFound)
}

func TestSurveyRecordListFilters(t *testing.T) {
	repo := NewSurveyRecordRepository(newTestDB(t))
	require.NoError(t, repo.Create(record("t1", "Teachers", true)))
	require.NoError(t, repo.Create(record("t2", "Teachers", false)))
	require.NoError(t, repo.Create(record("p1", "Parents", true)))

	list, total, err := repo.List(model.SurveyRecordFilter{SurveyType: "Teachers"}, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 1)

	talented := true
	all, err := repo.ListAll(model.SurveyRecordFilter{IsTalented: &talented})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "t1", all[0].SessionID)
	assert.Equal(t, "p1", all[1].SessionID)
}
