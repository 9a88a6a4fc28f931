package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubSummary struct {
	status int
	body   string
	err    error
}

func (s stubSummary) Summary(ctx context.Context) (int, []byte, error) {
	return s.status, []byte(s.body), s.err
}

type stubLedger struct {
	records []model.SurveyRecord
}

func (l stubLedger) List(filter model.SurveyRecordFilter, page, limit int) ([]model.SurveyRecord, int64, error) {
	return l.records, int64(len(l.records)), nil
}

func (l stubLedger) ListAll(filter model.SurveyRecordFilter) ([]model.SurveyRecord, error) {
	return l.records, nil
}

func TestReportSummary(t *testing.T) {
	ctx := context.Background()

	raw, err := NewReportService(stubSummary{status: 200, body: `{"total":3}`}, nil).Summary(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3}`, string(raw))

	_, err = NewReportService(stubSummary{status: 503, body: "down"}, nil).Summary(ctx)
	assert.ErrorIs(t, err, util.ErrUpstreamRejected)

	_, err = NewReportService(stubSummary{status: 200, body: "<html>"}, nil).Summary(ctx)
	assert.Error(t, err)

	_, err = NewReportService(stubSummary{err: errors.New("dial")}, nil).Summary(ctx)
	assert.Error(t, err)
}

func TestReportLedgerDisabled(t *testing.T) {
	svc := NewReportService(stubSummary{}, nil)
	_, err := svc.ListSubmissions(model.SurveyRecordFilter{}, 1, 10)
	assert.ErrorIs(t, err, util.ErrLedgerDisabled)
	_, err = svc.ExportSubmissions(model.SurveyRecordFilter{})
	assert.ErrorIs(t, err, util.ErrLedgerDisabled)
}

func TestReportExport(t *testing.T) {
	rec := model.SurveyRecord{
		SessionID:     "s1",
		SurveyType:    "Parents",
		Name:          "Omar",
		IsTalented:    true,
		TalentPercent: 73.33,
		Disability:    "ADHD",
		SaveStatus:    "saved",
	}
	rec.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewReportService(stubSummary{}, stubLedger{records: []model.SurveyRecord{rec}})

	page, err := svc.ListSubmissions(model.SurveyRecordFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	data, err := svc.ExportSubmissions(model.SurveyRecordFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "s1", rows[1][0])
	assert.Equal(t, "Omar", rows[1][2])
	assert.Equal(t, "ADHD", rows[1][13])
	assert.Equal(t, "2025-01-02 03:04:05", rows[1][16])

	b, _ := json.Marshal(page)
	assert.Contains(t, string(b), `"sessionId":"s1"`)
}
