//go:generate mockery --name RewardsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crew_academy/internal/config"
	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardsService interface {
	GetUserPoints(ctx context.Context, userID string) (*model.UserPoints, error)
	AwardPoints(ctx context.Context, userID, action string, points int, metadata map[string]interface{}) error
	HandleDailyLogin(ctx context.Context, userID string) error
	HandleLessonWatched(ctx context.Context, userID, moduleID, lessonID string) error
	HandleQuizPass(ctx context.Context, userID, quizID string, score int) error
	HandleModuleComplete(ctx context.Context, userID, moduleID string) error
	HandleMessageSent(ctx context.Context, userID, messageID string) error
	HandleLikeReceived(ctx context.Context, userID, messageID string) error
	HandleReactionSent(ctx context.Context, userID, messageID string) error
	HandleFileUpload(ctx context.Context, userID, fileID string) error
	RecordActivity(ctx context.Context, userID, action, referenceID string) (bool, error)
	DeclareVerifiedCrew(ctx context.Context, userID string) error
	GetLeaderboard(ctx context.Context, limit int) ([]*model.UserPoints, error)
	GetUserPointHistory(ctx context.Context, userID string, limit int) ([]*model.PointEvent, error)
}

type rewardsService struct {
	db         *gorm.DB
	pointsRepo repository.PointsRepository
	eventRepo  repository.PointEventRepository
	notifier   Notifier
	cfg        *config.Config
	loc        *time.Location
	now        func() time.Time
}

func NewRewardsService(
	db *gorm.DB,
	pointsRepo repository.PointsRepository,
	eventRepo repository.PointEventRepository,
	notifier Notifier,
	cfg *config.Config,
	opts ...Option,
) RewardsService {
	o := buildOptions(opts)
	return &rewardsService{
		db:         db,
		pointsRepo: pointsRepo,
		eventRepo:  eventRepo,
		notifier:   notifier,
		cfg:        cfg,
		loc:        cfg.Location(),
		now:        o.now,
	}
}

// awardResult はコミット後の通知判定に使う
type awardResult struct {
	awarded  bool
	oldRank  model.Rank
	newRank  model.Rank
	newTotal int
}

func (s *rewardsService) GetUserPoints(ctx context.Context, userID string) (*model.UserPoints, error) {
	if userID == "" {
		return nil, model.NewAppError("INVALID_INPUT", "user id is required.", "user_id", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	points, err := s.getOrCreate(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to get user points", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get user points.", "", err)
	}
	return points, nil
}

// getOrCreate は初回アクセス時に Student / 0pt のレコードを作る
func (s *rewardsService) getOrCreate(ctx context.Context, db *gorm.DB, userID string) (*model.UserPoints, error) {
	points, err := s.pointsRepo.FindByUserID(ctx, db, userID)
	if err == nil {
		return points, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	fresh := &model.UserPoints{
		UserID:      userID,
		TotalPoints: 0,
		CurrentRank: model.RankStudent,
	}
	if err := s.pointsRepo.CreateIfAbsent(ctx, db, fresh); err != nil {
		return nil, err
	}
	// 同時作成に負けた場合も含め、保存済みの行を読み直す
	return s.pointsRepo.FindByUserID(ctx, db, userID)
}

func (s *rewardsService) AwardPoints(ctx context.Context, userID, action string, points int, metadata map[string]interface{}) error {
	if userID == "" || action == "" {
		return model.NewAppError("INVALID_INPUT", "user id and action are required.", "", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID, "action", action, "points", points)

	var res awardResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		res, txErr = s.awardTx(ctx, tx, userID, action, points, "", metadata)
		return txErr
	})
	if err != nil {
		logger.Error("Failed to award points", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to award points.", "", err)
	}

	s.afterAward(ctx, userID, res)
	return nil
}

// awardTx はトランザクション内で合計加算・階級再計算・イベント追記を行う
func (s *rewardsService) awardTx(ctx context.Context, tx *gorm.DB, userID, action string, points int, referenceID string, metadata map[string]interface{}) (awardResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "action", action)

	before, err := s.getOrCreate(ctx, tx, userID)
	if err != nil {
		return awardResult{}, err
	}
	if before.VerifiedCrew {
		logger.Info("User is verified crew, points are frozen")
		return awardResult{}, nil
	}

	incremented, err := s.pointsRepo.IncrementTotal(ctx, tx, userID, points)
	if err != nil {
		return awardResult{}, err
	}
	if !incremented {
		// 読み取り後に verified_crew へ変わった
		logger.Info("Points were frozen concurrently, skipping award")
		return awardResult{}, nil
	}

	after, err := s.pointsRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		return awardResult{}, err
	}
	newRank := model.CalculateRank(after.TotalPoints)
	if newRank != after.CurrentRank {
		if err := s.pointsRepo.Update(ctx, tx, userID, map[string]interface{}{"current_rank": newRank}); err != nil {
			return awardResult{}, err
		}
	}

	event := &model.PointEvent{
		EventID:     uuid.New(),
		UserID:      userID,
		Action:      action,
		ReferenceID: referenceID,
		Points:      points,
		AwardedAt:   s.now(),
		Metadata:    metadata,
	}
	if err := s.eventRepo.Append(ctx, tx, event); err != nil {
		return awardResult{}, err
	}

	logger.Info("Points awarded", "points", points, "total_points", after.TotalPoints, "rank", newRank)
	return awardResult{
		awarded:  true,
		oldRank:  before.CurrentRank,
		newRank:  newRank,
		newTotal: after.TotalPoints,
	}, nil
}

func (s *rewardsService) afterAward(ctx context.Context, userID string, res awardResult) {
	if !res.awarded || res.newRank.Level() <= res.oldRank.Level() {
		return
	}
	notify(ctx, s.notifier, Notification{
		Type:   NotificationRankUp,
		UserID: userID,
		Payload: map[string]interface{}{
			"old_rank":     res.oldRank,
			"new_rank":     res.newRank,
			"total_points": res.newTotal,
		},
		OccurredAt: s.now(),
	})
}

func (s *rewardsService) HandleDailyLogin(ctx context.Context, userID string) error {
	if userID == "" {
		return model.NewAppError("INVALID_INPUT", "user id is required.", "user_id", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	now := s.now().In(s.loc)
	today := now.Format(model.LoginDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.LoginDateLayout)

	var res awardResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		points, err := s.getOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if points.LastLoginDate == today {
			logger.Debug("Daily login already recorded today", "date", today)
			return nil
		}

		streak := 1
		if points.LastLoginDate == yesterday {
			streak = points.DailyLoginStreak + 1
		}
		if err := s.pointsRepo.Update(ctx, tx, userID, map[string]interface{}{
			"daily_login_streak": streak,
			"last_login_date":    today,
		}); err != nil {
			return err
		}
		logger.Info("Daily login recorded", "date", today, "streak", streak)

		res, err = s.awardTx(ctx, tx, userID, model.ActionDailyLogin, model.PointsDailyLogin, "", map[string]interface{}{
			"streak": streak,
		})
		return err
	})
	if err != nil {
		logger.Error("Failed to handle daily login", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record daily login.", "", err)
	}

	s.afterAward(ctx, userID, res)
	return nil
}

func (s *rewardsService) HandleLessonWatched(ctx context.Context, userID, moduleID, lessonID string) error {
	return s.AwardPoints(ctx, userID, model.ActionLessonWatched, model.PointsLessonWatched, map[string]interface{}{
		"module_id": moduleID,
		"lesson_id": lessonID,
	})
}

// HandleQuizPass は合格点未満なら何もしない
func (s *rewardsService) HandleQuizPass(ctx context.Context, userID, quizID string, score int) error {
	if score < model.QuizPassScore {
		middleware.GetLogger(ctx).Debug("Quiz score below pass mark, no points", "user_id", userID, "quiz_id", quizID, "score", score)
		return nil
	}
	return s.AwardPoints(ctx, userID, model.ActionQuizPassed, model.PointsQuizPassed, map[string]interface{}{
		"quiz_id": quizID,
		"score":   score,
	})
}

func (s *rewardsService) HandleModuleComplete(ctx context.Context, userID, moduleID string) error {
	return s.AwardPoints(ctx, userID, model.ActionModuleCompleted, model.PointsModuleCompleted, map[string]interface{}{
		"module_id": moduleID,
	})
}

func (s *rewardsService) HandleMessageSent(ctx context.Context, userID, messageID string) error {
	return s.AwardPoints(ctx, userID, model.ActionMessageSent, model.PointsMessageSent, map[string]interface{}{
		"message_id": messageID,
	})
}

func (s *rewardsService) HandleLikeReceived(ctx context.Context, userID, messageID string) error {
	return s.AwardPoints(ctx, userID, model.ActionLikeReceived, model.PointsLikeReceived, map[string]interface{}{
		"message_id": messageID,
	})
}

func (s *rewardsService) HandleReactionSent(ctx context.Context, userID, messageID string) error {
	return s.AwardPoints(ctx, userID, model.ActionReactionSent, model.PointsReactionSent, map[string]interface{}{
		"message_id": messageID,
	})
}

func (s *rewardsService) HandleFileUpload(ctx context.Context, userID, fileID string) error {
	return s.AwardPoints(ctx, userID, model.ActionFileUploaded, model.PointsFileUploaded, map[string]interface{}{
		"file_id": fileID,
	})
}

// activityRule はクライアント申告のアクティビティごとの付与ポイントとメタデータのキー
type activityRule struct {
	points int
	refKey string
}

var activityRules = map[string]activityRule{
	model.ActionMessageSent:  {points: model.PointsMessageSent, refKey: "message_id"},
	model.ActionLikeReceived: {points: model.PointsLikeReceived, refKey: "message_id"},
	model.ActionReactionSent: {points: model.PointsReactionSent, refKey: "message_id"},
	model.ActionFileUploaded: {points: model.PointsFileUploaded, refKey: "file_id"},
}

// RecordActivity は (user, action, referenceID) ごとに一度だけポイントを付与する。
// 記録済み・凍結済みで付与しなかった場合は false。Handle* ラッパーは重複排除しない。
func (s *rewardsService) RecordActivity(ctx context.Context, userID, action, referenceID string) (bool, error) {
	rule, ok := activityRules[action]
	if !ok {
		return false, model.NewAppError("INVALID_INPUT", "Unsupported activity.", "action", model.ErrInvalidInput)
	}
	if userID == "" || referenceID == "" {
		return false, model.NewAppError("INVALID_INPUT", "user id and reference id are required.", "", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID, "action", action, "reference_id", referenceID)

	duplicate := false
	var res awardResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.eventRepo.ExistsByReference(ctx, tx, userID, action, referenceID)
		if err != nil {
			return err
		}
		if exists {
			duplicate = true
			return nil
		}
		res, err = s.awardTx(ctx, tx, userID, action, rule.points, referenceID, map[string]interface{}{
			rule.refKey: referenceID,
		})
		return err
	})
	if errors.Is(err, model.ErrConflict) {
		// 同じ参照が並行して記録された。こちらはロールバック済み
		duplicate = true
		err = nil
	}
	if err != nil {
		logger.Error("Failed to record activity", "error", err)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record activity.", "", err)
	}
	if duplicate {
		logger.Info("Activity already recorded, no points awarded")
		return false, nil
	}

	s.afterAward(ctx, userID, res)
	return res.awarded, nil
}

// DeclareVerifiedCrew は取り消し不可。以降のポイント付与は無視される。
func (s *rewardsService) DeclareVerifiedCrew(ctx context.Context, userID string) error {
	if userID == "" {
		return model.NewAppError("INVALID_INPUT", "user id is required.", "user_id", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	newlyDeclared := false
	var total int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		points, err := s.getOrCreate(ctx, tx, userID)
		if err != nil {
			return err
		}
		total = points.TotalPoints
		if points.VerifiedCrew {
			return nil
		}
		if err := s.pointsRepo.Update(ctx, tx, userID, map[string]interface{}{"verified_crew": true}); err != nil {
			return err
		}
		newlyDeclared = true
		return nil
	})
	if err != nil {
		logger.Error("Failed to declare verified crew", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to declare verified crew.", "", err)
	}

	if newlyDeclared {
		logger.Info("User declared verified crew", "total_points", total)
		notify(ctx, s.notifier, Notification{
			Type:       NotificationVerifiedCrew,
			UserID:     userID,
			Payload:    map[string]interface{}{"total_points": total},
			OccurredAt: s.now(),
		})
	}
	return nil
}

func (s *rewardsService) GetLeaderboard(ctx context.Context, limit int) ([]*model.UserPoints, error) {
	if limit <= 0 {
		limit = s.cfg.App.LeaderboardLimit
	}
	leaders, err := s.pointsRepo.FindTop(ctx, s.db, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to get leaderboard", "error", err, "limit", limit)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get leaderboard.", "", err)
	}
	return leaders, nil
}

func (s *rewardsService) GetUserPointHistory(ctx context.Context, userID string, limit int) ([]*model.PointEvent, error) {
	if userID == "" {
		return nil, model.NewAppError("INVALID_INPUT", "user id is required.", "user_id", model.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.cfg.App.HistoryLimit
	}
	events, err := s.eventRepo.FindByUserID(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to get point history", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", fmt.Sprintf("Failed to get point history for %s.", userID), "", err)
	}
	return events, nil
}
