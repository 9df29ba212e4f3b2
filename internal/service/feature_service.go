//go:generate mockery --name FeatureService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/repository"

	"gorm.io/gorm"
)

var knownFeatures = map[string]bool{
	model.FeatureRewards: true,
	model.FeatureModules: true,
}

// FeatureService は機能の一時停止と自動復旧を扱う
type FeatureService interface {
	IsEnabled(ctx context.Context, name string) (bool, error)
	Shutdown(ctx context.Context, name, reason string, restoreAt *time.Time) (*model.FeatureFlag, error)
	Restore(ctx context.Context, name string) (*model.FeatureFlag, error)
	// RestoreExpired は restore_at を過ぎた機能を復旧し、その件数を返す
	RestoreExpired(ctx context.Context, now time.Time) (int, error)
}

type featureService struct {
	db          *gorm.DB
	featureRepo repository.FeatureRepository
	now         func() time.Time
}

func NewFeatureService(db *gorm.DB, featureRepo repository.FeatureRepository, opts ...Option) FeatureService {
	o := buildOptions(opts)
	return &featureService{
		db:          db,
		featureRepo: featureRepo,
		now:         o.now,
	}
}

// IsEnabled はフラグ未登録なら有効とみなす
func (s *featureService) IsEnabled(ctx context.Context, name string) (bool, error) {
	flag, err := s.featureRepo.FindByName(ctx, s.db, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return true, nil
		}
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check feature state.", "", err)
	}
	return !flag.Disabled, nil
}

func (s *featureService) Shutdown(ctx context.Context, name, reason string, restoreAt *time.Time) (*model.FeatureFlag, error) {
	logger := middleware.GetLogger(ctx).With("feature", name)

	if !knownFeatures[name] {
		return nil, model.NewAppError("NOT_FOUND", "Unknown feature.", "name", model.ErrNotFound)
	}
	if restoreAt != nil && !restoreAt.After(s.now()) {
		return nil, model.NewAppError("INVALID_INPUT", "restore_at must be in the future.", "restore_at", model.ErrInvalidInput)
	}

	flag := &model.FeatureFlag{
		Name:      name,
		Disabled:  true,
		Reason:    reason,
		RestoreAt: restoreAt,
	}
	if err := s.featureRepo.Save(ctx, s.db, flag); err != nil {
		logger.Error("Failed to shut down feature", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to shut down feature.", "", err)
	}
	logger.Warn("Feature shut down", "reason", reason, "restore_at", restoreAt)
	return flag, nil
}

func (s *featureService) Restore(ctx context.Context, name string) (*model.FeatureFlag, error) {
	logger := middleware.GetLogger(ctx).With("feature", name)

	if !knownFeatures[name] {
		return nil, model.NewAppError("NOT_FOUND", "Unknown feature.", "name", model.ErrNotFound)
	}
	flag := &model.FeatureFlag{Name: name, Disabled: false}
	if err := s.featureRepo.Save(ctx, s.db, flag); err != nil {
		logger.Error("Failed to restore feature", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to restore feature.", "", err)
	}
	logger.Info("Feature restored")
	return flag, nil
}

func (s *featureService) RestoreExpired(ctx context.Context, now time.Time) (int, error) {
	logger := middleware.GetLogger(ctx)

	restored := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flags, err := s.featureRepo.FindExpired(ctx, tx, now)
		if err != nil {
			return err
		}
		for _, flag := range flags {
			flag.Disabled = false
			flag.Reason = ""
			flag.RestoreAt = nil
			if err := s.featureRepo.Save(ctx, tx, flag); err != nil {
				return err
			}
			logger.Info("Feature auto-restored", "feature", flag.Name)
			restored++
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to restore expired features", "error", err)
		return 0, err
	}
	return restored, nil
}

// RestoreScheduler は一定間隔で RestoreExpired を呼ぶ。ctx のキャンセルで停止する。
type RestoreScheduler struct {
	features FeatureService
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewRestoreScheduler(features FeatureService, interval time.Duration, logger *slog.Logger, opts ...Option) *RestoreScheduler {
	o := buildOptions(opts)
	if logger == nil {
		logger = slog.Default()
	}
	return &RestoreScheduler{
		features: features,
		interval: interval,
		now:      o.now,
		logger:   logger,
	}
}

// Run はブロックする。ctx がキャンセルされると nil を返す。
func (r *RestoreScheduler) Run(ctx context.Context) error {
	ctx = middleware.WithLogger(ctx, r.logger.With("component", "restore_scheduler"))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Feature restore scheduler started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Feature restore scheduler stopped")
			return nil
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick は一回分の復旧処理。失敗してもスケジューラは止めない。
func (r *RestoreScheduler) Tick(ctx context.Context) int {
	n, err := r.features.RestoreExpired(ctx, r.now())
	if err != nil {
		middleware.GetLogger(ctx).Warn("Feature restore tick failed", "error", err)
		return 0
	}
	return n
}
