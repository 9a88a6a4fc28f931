package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/repository"
	"talent_bridge_backend/internal/service"
	"talent_bridge_backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type okSaver struct{}

func (okSaver) Save(ctx context.Context, p engine.SavePayload) error { return nil }

func assessmentRouter() *gin.Engine {
	svc := service.NewAssessmentService(repository.NewMemorySessionStore(time.Hour), okSaver{}, nil)
	c := NewAssessmentController(svc)
	q := NewQuestionnaireController()

	r := gin.New()
	api := r.Group("/api")
	api.GET("/questionnaires/general", q.General)
	api.GET("/questionnaires/categories", q.Categories)
	api.GET("/questionnaires/categories/:id/questions", q.CategoryQuestions)
	api.POST("/assessments", c.Start)
	api.POST("/assessments/score", c.Score)
	api.GET("/assessments/:id", c.Get)
	api.PUT("/assessments/:id/info", c.SetInfo)
	api.PUT("/assessments/:id/general/:index", c.AnswerGeneral)
	api.PUT("/assessments/:id/category", c.SelectCategory)
	api.PUT("/assessments/:id/disability/:index", c.AnswerDisability)
	api.POST("/assessments/:id/next", c.Next)
	api.POST("/assessments/:id/back", c.Back)
	return r
}

func TestQuestionnaireEndpoints(t *testing.T) {
	r := assessmentRouter()

	var general GeneralSection
	w := do(t, r, http.MethodGet, "/api/questionnaires/general?role=parent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &general)
	assert.Len(t, general.Questions, 15)
	assert.Equal(t, "Parents", general.SurveyType)
	assert.Equal(t, "Always", general.Scale[2].EN)

	w = do(t, r, http.MethodGet, "/api/questionnaires/general?role=student", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var cats []map[string]interface{}
	w = do(t, r, http.MethodGet, "/api/questionnaires/categories", nil)
	decode(t, w, &cats)
	assert.Len(t, cats, 9)

	var section DisabilitySection
	w = do(t, r, http.MethodGet, "/api/questionnaires/categories/not-a-real-id/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &section)
	assert.NotNil(t, section.Questions)
	assert.Empty(t, section.Questions)
	assert.Nil(t, section.Category)
	assert.Contains(t, w.Body.String(), `"questions":[]`)

	w = do(t, r, http.MethodGet, "/api/questionnaires/categories/adhd/questions", nil)
	decode(t, w, &section)
	assert.Len(t, section.Questions, 10)
	require.NotNil(t, section.Category)
	assert.Equal(t, "ADHD", section.Category.PlanName)
}

func TestAssessmentFlowOverHTTP(t *testing.T) {
	r := assessmentRouter()

	var view service.SessionView
	w := do(t, r, http.MethodPost, "/api/assessments", gin.H{"role": "parent"})
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &view)
	id := view.ID
	require.NotEmpty(t, id)
	assert.Equal(t, engine.StageBasic, view.Stage)
	assert.Len(t, view.GeneralAnswers, 15)

	w = do(t, r, http.MethodPost, "/api/assessments/"+id+"/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var ve engine.ValidationError
	decode(t, w, &ve)
	assert.Equal(t, engine.ReasonMissingRequiredField, ve.Reason)
	assert.Contains(t, ve.Fields, "parentName")

	info := engine.Info{StudentName: "Omar", Gender: "male", BirthDate: "2015-01-20", Grade: "4", ParentName: "Khaled"}
	w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/info", info)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/assessments/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 15; i++ {
		w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/general/"+strconv.Itoa(i), gin.H{"answer": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/general/15", gin.H{"answer": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/general/x", gin.H{"answer": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/general/0", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/assessments/"+id+"/next", nil)
	decode(t, w, &view)
	assert.Equal(t, engine.StageDisabilitySelect, view.Stage)
	assert.Equal(t, 3, view.Step)

	w = do(t, r, http.MethodPut, "/api/assessments/"+id+"/category", gin.H{"categoryId": "adhd"})
	require.Equal(t, http.StatusOK, w.Code)
	do(t, r, http.MethodPost, "/api/assessments/"+id+"/next", nil)
	for i := 0; i < 10; i++ {
		do(t, r, http.MethodPut, "/api/assessments/"+id+"/disability/"+strconv.Itoa(i), gin.H{"answer": 1})
	}
	w = do(t, r, http.MethodPost, "/api/assessments/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &view)
	assert.Equal(t, engine.StageResults, view.Stage)
	require.NotNil(t, view.Result)
	assert.Equal(t, 150, view.Result.GeneralScore)
	assert.Equal(t, 50.0, *view.Result.DisabilityPercent)
	assert.Equal(t, "adhd", *view.Result.PlanArtifactID)

	w = do(t, r, http.MethodPost, "/api/assessments/"+id+"/back", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/assessments/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreEndpoint(t *testing.T) {
	r := assessmentRouter()

	general := make([]int, 10)
	w := do(t, r, http.MethodPost, "/api/assessments/score", gin.H{"role": "teacher", "generalAnswers": general})
	require.Equal(t, http.StatusOK, w.Code)
	var result engine.Result
	decode(t, w, &result)
	assert.False(t, result.IsTalented)
	assert.Contains(t, w.Body.String(), `"disabilityPercent":null`)

	general[0] = -1
	w = do(t, r, http.MethodPost, "/api/assessments/score", gin.H{"role": "teacher", "generalAnswers": general})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

type stubForwarder struct {
	status int
	body   string
	err    error
	got    []byte
}

func (s *stubForwarder) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	s.got = body
	return s.status, []byte(s.body), s.err
}

func proxyRouter(f Forwarder) *gin.Engine {
	c := NewSurveyProxyController(f)
	r := gin.New()
	g := r.Group("/api/survey/SurveyResult/Save", security.OpenCORS())
	g.POST("", c.Save)
	g.OPTIONS("", c.Options)
	return r
}

func TestSurveyProxy(t *testing.T) {
	f := &stubForwarder{status: http.StatusOK, body: `{"id":7}`}
	r := proxyRouter(f)

	w := do(t, r, http.MethodPost, "/api/survey/SurveyResult/Save", `{"name":"Sara"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
	assert.JSONEq(t, `{"name":"Sara"}`, string(f.got))

	f.status, f.body = http.StatusBadRequest, "bad payload"
	w = do(t, r, http.MethodPost, "/api/survey/SurveyResult/Save", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"External API error: bad payload"}`, w.Body.String())

	f.status, f.body = http.StatusServiceUnavailable, "maintenance"
	w = do(t, r, http.MethodPost, "/api/survey/SurveyResult/Save", `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	f.status, f.err = 0, errors.New("connection refused")
	w = do(t, r, http.MethodPost, "/api/survey/SurveyResult/Save", `{}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Proxy error: connection refused"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/survey/SurveyResult/Save", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodOptions, "/api/survey/SurveyResult/Save", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

type stubSummary struct {
	status int
	body   string
	err    error
}

func (s stubSummary) Summary(ctx context.Context) (int, []byte, error) {
	return s.status, []byte(s.body), s.err
}

func reportRouter(s service.SummaryFetcher) *gin.Engine {
	c := NewReportController(service.NewReportService(s, nil))
	r := gin.New()
	r.GET("/api/reports/summary", c.Summary)
	r.GET("/api/reports/submissions", c.Submissions)
	r.GET("/api/reports/submissions/export", c.Export)
	return r
}

func TestReportSummaryProxy(t *testing.T) {
	r := reportRouter(stubSummary{status: 200, body: `{"teachers":4,"parents":2}`})
	w := do(t, r, http.MethodGet, "/api/reports/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"teachers":4,"parents":2}`, w.Body.String())

	r = reportRouter(stubSummary{status: 502, body: "bad gateway"})
	w = do(t, r, http.MethodGet, "/api/reports/summary", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch statistics"}`, w.Body.String())
}

func TestSubmissionsWithoutLedger(t *testing.T) {
	r := reportRouter(stubSummary{})
	w := do(t, r, http.MethodGet, "/api/reports/submissions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	w = do(t, r, http.MethodGet, "/api/reports/submissions/export", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPlanDownload(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "ADHD.pdf"), []byte("%PDF-1.4"), 0o644))

	c := NewPlanController(service.NewPlanService(&service.LocalStorageProvider{Root: root}, "ar"))
	r := gin.New()
	r.GET("/api/plans/:category", c.Download)

	w := do(t, r, http.MethodGet, "/api/plans/adhd?locale=en", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ADHD.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())

	w = do(t, r, http.MethodGet, "/api/plans/adhd", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/plans/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", NewHealthController(nil, "memory").HealthCheck)

	w := do(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]interface{}
	decode(t, w, &data)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "disabled", data["components"].(map[string]interface{})["database"])
}
