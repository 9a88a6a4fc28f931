package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/questionnaire"
	"talent_bridge_backend/internal/repository"
	"talent_bridge_backend/internal/util"
	"talent_bridge_backend/pkg/logger"
	"talent_bridge_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// SubmissionLedger records finished sessions locally. It is optional.
type SubmissionLedger interface {
	Create(record *model.SurveyRecord) error
	UpdateSaveStatus(sessionID, status, saveErr string, at time.Time) error
}

// SessionView is the client representation of a session.
type SessionView struct {
	engine.Session
	Step          int   `json:"step"`
	TotalSteps    int   `json:"totalSteps"`
	SaveSucceeded *bool `json:"saveSucceeded"`
}

func NewSessionView(s engine.Session) SessionView {
	step, total := s.Step()
	return SessionView{
		Session:       s,
		Step:          step,
		TotalSteps:    total,
		SaveSucceeded: s.SaveStatus.Succeeded(),
	}
}

type AssessmentService struct {
	store  repository.SessionStore
	saver  SurveySaver
	ledger SubmissionLedger

	now   func() time.Time
	newID func() string

	saves sync.WaitGroup
}

// NewAssessmentService wires the flow. ledger may be nil.
func NewAssessmentService(store repository.SessionStore, saver SurveySaver, ledger SubmissionLedger) *AssessmentService {
	return &AssessmentService{
		store:  store,
		saver:  saver,
		ledger: ledger,
		now:    time.Now,
		newID:  model.GenerateUUID,
	}
}

func (s *AssessmentService) Start(ctx context.Context, role questionnaire.Role) (engine.Session, error) {
	if role != questionnaire.RoleTeacher && role != questionnaire.RoleParent {
		return engine.Session{}, util.ErrInvalidRole
	}
	session := engine.NewSession(s.newID(), role, s.now())
	if err := s.store.Create(ctx, session); err != nil {
		return engine.Session{}, err
	}
	logger.Log.Info("assessment started",
		zap.String("session_id", session.ID),
		zap.String("role", string(role)),
	)
	return session, nil
}

func (s *AssessmentService) Get(ctx context.Context, id string) (engine.Session, error) {
	return s.store.Get(ctx, id)
}

// Apply runs one flow action against the stored session. When the action
// finishes the session, the single background save is started and returned
// as a task; otherwise the task is nil. On error the stored session is left
// as it was.
func (s *AssessmentService) Apply(ctx context.Context, id string, action engine.Action) (engine.Session, *SaveTask, error) {
	var finished bool
	now := s.now()

	next, err := s.store.Update(ctx, id, func(current engine.Session) (engine.Session, error) {
		updated, err := engine.Apply(current, action, now)
		if err != nil {
			return current, err
		}
		finished = !current.Finished() && updated.Finished()
		return updated, nil
	})
	if err != nil {
		return next, nil, err
	}
	if !finished {
		return next, nil, nil
	}

	return next, s.startSave(ctx, next), nil
}

// Evaluate scores a full answer set without a session and without saving.
func (s *AssessmentService) Evaluate(role questionnaire.Role, general []engine.Answer, category string, disability []engine.Answer) (engine.Result, error) {
	if role != questionnaire.RoleTeacher && role != questionnaire.RoleParent {
		return engine.Result{}, util.ErrInvalidRole
	}
	return engine.Evaluate(role, general, category, disability)
}

// WaitForSaves blocks until in-flight saves finish or ctx is done.
func (s *AssessmentService) WaitForSaves(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.saves.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AssessmentService) startSave(ctx context.Context, session engine.Session) *SaveTask {
	task := newSaveTask(session.ID)
	surveyType := session.Role.SurveyType()
	monitoring.ObserveCompleted(surveyType, session.Result.IsTalented)

	payload, _ := engine.BuildSavePayload(session, s.now())
	if s.ledger != nil {
		if err := s.ledger.Create(newSurveyRecord(session.ID, payload)); err != nil {
			logger.Log.Error("failed to record submission", zap.String("session_id", session.ID), zap.Error(err))
		}
	}

	// the save outlives the request that finished the session
	saveCtx := context.WithoutCancel(ctx)

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()

		err := s.saver.Save(saveCtx, payload)
		status := engine.SaveSaved
		saveErr := ""
		if err != nil {
			status = engine.SaveFailed
			saveErr = err.Error()
			logger.Log.Warn("survey save failed", zap.String("session_id", session.ID), zap.Error(err))
		} else {
			logger.Log.Info("survey saved", zap.String("session_id", session.ID))
		}
		monitoring.ObserveSave(surveyType, string(status))

		_, uerr := s.store.Update(saveCtx, session.ID, func(current engine.Session) (engine.Session, error) {
			current.SaveStatus = status
			return current, nil
		})
		if uerr != nil && !errors.Is(uerr, util.ErrSessionNotFound) {
			logger.Log.Error("failed to store save status", zap.String("session_id", session.ID), zap.Error(uerr))
		}

		if s.ledger != nil {
			if lerr := s.ledger.UpdateSaveStatus(session.ID, string(status), saveErr, s.now()); lerr != nil {
				logger.Log.Error("failed to update submission", zap.String("session_id", session.ID), zap.Error(lerr))
			}
		}

		task.resolve(err)
	}()

	return task
}

func newSurveyRecord(sessionID string, p engine.SavePayload) *model.SurveyRecord {
	return &model.SurveyRecord{
		SessionID:         sessionID,
		SurveyType:        p.SurveyType,
		Name:              p.Name,
		EducationGrade:    p.EducationGrade,
		Gender:            p.Gender,
		ParentName:        p.ParentName,
		BirthDate:         p.BirthDate,
		CheckerName:       p.CheckerName,
		CheckupDate:       p.CheckupDate,
		SchoolName:        p.SchoolName,
		IsTalented:        p.IsTalented,
		TalentPercent:     p.TalentPercent,
		IsDisabled:        p.IsDisabled,
		Disability:        p.Disability,
		DisabilityPercent: p.DisabilityPercent,
		SaveStatus:        string(engine.SavePending),
	}
}
