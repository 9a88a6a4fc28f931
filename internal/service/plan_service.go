package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"talent_bridge_backend/internal/questionnaire"
	"talent_bridge_backend/internal/util"
	"talent_bridge_backend/pkg/logger"

	"go.uber.org/zap"
)

var planLocales = map[string]bool{"ar": true, "en": true}

// PlanService resolves the individual plan file for a disability category.
type PlanService struct {
	storage       StorageProvider
	defaultLocale string
}

func NewPlanService(storage StorageProvider, defaultLocale string) *PlanService {
	if !planLocales[defaultLocale] {
		defaultLocale = "ar"
	}
	return &PlanService{storage: storage, defaultLocale: defaultLocale}
}

// Locale normalizes a requested locale, falling back to the default.
func (s *PlanService) Locale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if planLocales[locale] {
		return locale
	}
	return s.defaultLocale
}

// PlanKey is the storage key of a category's plan, e.g. "en/ADHD.pdf".
func PlanKey(categoryID, locale string) string {
	return locale + "/" + questionnaire.PlanName(categoryID) + ".pdf"
}

func (s *PlanService) Locate(ctx context.Context, categoryID, locale string) (PlanLocation, error) {
	if _, ok := questionnaire.LookupCategory(categoryID); !ok {
		return PlanLocation{}, util.ErrPlanNotFound
	}
	return s.storage.Locate(ctx, PlanKey(categoryID, s.Locale(locale)))
}

// Sync uploads every "<locale>/<name>.pdf" file under dir and returns the
// keys written.
func (s *PlanService) Sync(ctx context.Context, dir string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".pdf") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !planLocales[strings.SplitN(key, "/", 2)[0]] {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		if err := s.storage.Upload(ctx, key, f, info.Size(), util.MimePDF); err != nil {
			return err
		}
		logger.Log.Info("plan uploaded", zap.String("key", key))
		keys = append(keys, key)
		return nil
	})
	return keys, err
}
