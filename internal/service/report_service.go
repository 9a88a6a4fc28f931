package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/util"

	"github.com/xuri/excelize/v2"
)

type SummaryFetcher interface {
	Summary(ctx context.Context) (int, []byte, error)
}

// SubmissionReader lists ledger records.
type SubmissionReader interface {
	List(filter model.SurveyRecordFilter, page, limit int) ([]model.SurveyRecord, int64, error)
	ListAll(filter model.SurveyRecordFilter) ([]model.SurveyRecord, error)
}

type ReportService struct {
	summary SummaryFetcher
	ledger  SubmissionReader
}

// NewReportService wires reporting. ledger may be nil when the database is
// disabled.
func NewReportService(summary SummaryFetcher, ledger SubmissionReader) *ReportService {
	return &ReportService{summary: summary, ledger: ledger}
}

// Summary returns the upstream statistics document unchanged.
func (s *ReportService) Summary(ctx context.Context) (json.RawMessage, error) {
	status, body, err := s.summary.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &UpstreamError{Status: status, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("summary is not valid JSON")
	}
	return json.RawMessage(body), nil
}

func (s *ReportService) ListSubmissions(filter model.SurveyRecordFilter, page, limit int) (*util.PageResponse, error) {
	if s.ledger == nil {
		return nil, util.ErrLedgerDisabled
	}
	records, total, err := s.ledger.List(filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &util.PageResponse{List: records, Total: total, Page: page, Limit: limit}, nil
}

var exportHeaders = []string{
	"session_id", "survey_type", "name", "education_grade", "gender", "parent_name",
	"birth_date", "checker_name", "checkup_date", "school_name", "is_talented",
	"talent_percent", "is_disabled", "disability", "disability_percent",
	"save_status", "created_at",
}

// ExportSubmissions renders the matching records as an xlsx workbook.
func (s *ReportService) ExportSubmissions(filter model.SurveyRecordFilter) ([]byte, error) {
	if s.ledger == nil {
		return nil, util.ErrLedgerDisabled
	}
	records, err := s.ledger.ListAll(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, r := range records {
		row := i + 2
		values := []any{
			r.SessionID,
			r.SurveyType,
			r.Name,
			r.EducationGrade,
			r.Gender,
			r.ParentName,
			r.BirthDate,
			r.CheckerName,
			r.CheckupDate,
			r.SchoolName,
			r.IsTalented,
			r.TalentPercent,
			r.IsDisabled,
			r.Disability,
			r.DisabilityPercent,
			r.SaveStatus,
			r.CreatedAt.Format(util.TimeFormat),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "Q", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
