package repository

import (
	"errors"
	"time"

	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SurveyRecordRepository struct {
	DB *gorm.DB
}

func NewSurveyRecordRepository(db *gorm.DB) *SurveyRecordRepository {
	return &SurveyRecordRepository{DB: db}
}

// Create inserts the record, or refreshes it when the session was already
// recorded.
func (r *SurveyRecordRepository) Create(record *model.SurveyRecord) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		UpdateAll: true,
	}).Create(record).Error
}

func (r *SurveyRecordRepository) FindBySessionID(sessionID string) (*model.SurveyRecord, error) {
	var rec model.SurveyRecord
	err := r.DB.Where("session_id = ?", sessionID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecordNotFound
	}
	return &rec, err
}

// UpdateSaveStatus records the outcome of the upstream save.
func (r *SurveyRecordRepository) UpdateSaveStatus(sessionID, status, saveErr string, at time.Time) error {
	updates := map[string]interface{}{
		"save_status": status,
		"save_error":  saveErr,
	}
	if saveErr == "" {
		updates["saved_at"] = at
	}
	res := r.DB.Model(&model.SurveyRecord{}).Where("session_id = ?", sessionID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrRecordNotFound
	}
	return nil
}

func (r *SurveyRecordRepository) filtered(filter model.SurveyRecordFilter) *gorm.DB {
	query := r.DB.Model(&model.SurveyRecord{})
	if filter.SurveyType != "" {
		query = query.Where("survey_type = ?", filter.SurveyType)
	}
	if filter.SaveStatus != "" {
		query = query.Where("save_status = ?", filter.SaveStatus)
	}
	if filter.IsTalented != nil {
		query = query.Where("is_talented = ?", *filter.IsTalented)
	}
	return query
}

func (r *SurveyRecordRepository) List(filter model.SurveyRecordFilter, page, limit int) ([]model.SurveyRecord, int64, error) {
	var records []model.SurveyRecord
	var total int64
	query := r.filtered(filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc, id desc").Offset(offset).Limit(limit).Find(&records).Error
	return records, total, err
}

func (r *SurveyRecordRepository) ListAll(filter model.SurveyRecordFilter) ([]model.SurveyRecord, error) {
	var records []model.SurveyRecord
	err := r.filtered(filter).Order("created_at asc, id asc").Find(&records).Error
	return records, err
}
