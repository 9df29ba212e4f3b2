//go:generate mockery --name ModuleService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/repository"

	"gorm.io/gorm"
)

type ModuleService interface {
	GetModule(ctx context.Context, moduleID string) (*model.Module, error)
	GetModulesByCategory(ctx context.Context, category model.ModuleCategory) ([]*model.Module, error)
	GetAllModules(ctx context.Context) ([]*model.Module, error)
	SaveModule(ctx context.Context, module *model.Module) error

	GetUserModuleProgress(ctx context.Context, userID, moduleID string) (*model.UserModuleProgress, error)
	InitializeUserModuleProgress(ctx context.Context, userID, moduleID string, isFirstModule bool) (*model.UserModuleProgress, error)
	IsModuleUnlocked(ctx context.Context, userID, moduleID string) (bool, error)
	MarkCourseComplete(ctx context.Context, userID, moduleID, courseID string) (bool, error)
	MarkLessonComplete(ctx context.Context, userID, moduleID, lessonID string) (bool, error)
	CanTakeModuleQuiz(ctx context.Context, userID, moduleID string, requiredCourseIDs []string) (bool, error)
	UpdateQuizResult(ctx context.Context, userID, moduleID string, score int, passed bool) error
	UnlockNextModule(ctx context.Context, userID, currentModuleID string) error
	IsLessonUnlocked(ctx context.Context, userID string, module *model.Module, lessonID string) (bool, error)
	CanWatchNextLesson(ctx context.Context, userID string, module *model.Module, currentLessonID string) (bool, error)
}

type moduleService struct {
	db           *gorm.DB
	moduleRepo   repository.ModuleRepository
	progressRepo repository.ProgressRepository
	notifier     Notifier
	now          func() time.Time
}

func NewModuleService(
	db *gorm.DB,
	moduleRepo repository.ModuleRepository,
	progressRepo repository.ProgressRepository,
	notifier Notifier,
	opts ...Option,
) ModuleService {
	o := buildOptions(opts)
	return &moduleService{
		db:           db,
		moduleRepo:   moduleRepo,
		progressRepo: progressRepo,
		notifier:     notifier,
		now:          o.now,
	}
}

// --- カタログ ---

func (s *moduleService) GetModule(ctx context.Context, moduleID string) (*model.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Module not found.", "module_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to get module", "error", err, "module_id", moduleID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get module.", "", err)
	}
	return module, nil
}

func (s *moduleService) GetModulesByCategory(ctx context.Context, category model.ModuleCategory) ([]*model.Module, error) {
	if !category.Valid() {
		return nil, model.NewAppError("INVALID_INPUT", "Unknown module category.", "category", model.ErrInvalidInput)
	}
	modules, err := s.moduleRepo.FindByCategory(ctx, s.db, category)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to get modules by category", "error", err, "category", category)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get modules.", "", err)
	}
	return modules, nil
}

// GetAllModules は並び替えクエリが失敗した場合、全件取得してメモリ上で並べ替える
func (s *moduleService) GetAllModules(ctx context.Context) ([]*model.Module, error) {
	logger := middleware.GetLogger(ctx)

	modules, err := s.moduleRepo.FindAllOrdered(ctx, s.db)
	if err == nil {
		return modules, nil
	}
	logger.Warn("Ordered module query failed, falling back to in-memory sort", "error", err)

	modules, err = s.moduleRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get modules", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get modules.", "", err)
	}
	sortModules(modules)
	return modules, nil
}

func sortModules(modules []*model.Module) {
	sort.SliceStable(modules, func(i, j int) bool {
		if modules[i].Category != modules[j].Category {
			return modules[i].Category < modules[j].Category
		}
		return modules[i].Order < modules[j].Order
	})
}

func (s *moduleService) SaveModule(ctx context.Context, module *model.Module) error {
	logger := middleware.GetLogger(ctx).With("module_id", module.ID)

	if err := validateModule(module); err != nil {
		logger.Warn("Invalid module definition", "error", err)
		return err
	}
	if err := s.moduleRepo.Save(ctx, s.db, module); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.NewAppError("CONFLICT", "Another module already uses this order in the category.", "order", err)
		}
		logger.Error("Failed to save module", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save module.", "", err)
	}
	logger.Info("Module saved", "category", module.Category, "order", module.Order, "lessons", len(module.Lessons))
	return nil
}

// validateModule: レッスンは 1..n の連番で、イントロは先頭のみ
func validateModule(module *model.Module) error {
	if module.ID == "" {
		return model.NewAppError("INVALID_INPUT", "Module id is required.", "id", model.ErrInvalidInput)
	}
	if !module.Category.Valid() {
		return model.NewAppError("INVALID_INPUT", "Unknown module category.", "category", model.ErrInvalidInput)
	}
	if module.Order < 1 {
		return model.NewAppError("INVALID_INPUT", "Module order must be 1 or greater.", "order", model.ErrInvalidInput)
	}

	seenIDs := make(map[string]bool, len(module.Lessons))
	seenOrders := make(map[int]bool, len(module.Lessons))
	for _, l := range module.Lessons {
		if l.ID == "" || seenIDs[l.ID] {
			return model.NewAppError("INVALID_INPUT", "Lesson ids must be present and unique.", "lessons", model.ErrInvalidInput)
		}
		if l.Order < 1 || l.Order > len(module.Lessons) || seenOrders[l.Order] {
			return model.NewAppError("INVALID_INPUT", fmt.Sprintf("Lesson orders must be 1..%d without gaps.", len(module.Lessons)), "lessons", model.ErrInvalidInput)
		}
		if l.IsIntro != (l.Order == 1) {
			return model.NewAppError("INVALID_INPUT", "Only the first lesson is the intro.", "lessons", model.ErrInvalidInput)
		}
		seenIDs[l.ID] = true
		seenOrders[l.Order] = true
	}
	return nil
}

// --- 進捗 ---

func (s *moduleService) GetUserModuleProgress(ctx context.Context, userID, moduleID string) (*model.UserModuleProgress, error) {
	progress, err := s.progressRepo.FindByUserAndModule(ctx, s.db, userID, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		middleware.GetLogger(ctx).Error("Failed to get module progress", "error", err, "user_id", userID, "module_id", moduleID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to get module progress.", "", err)
	}
	return progress, nil
}

// InitializeUserModuleProgress は既存の進捗を上書きしない
func (s *moduleService) InitializeUserModuleProgress(ctx context.Context, userID, moduleID string, isFirstModule bool) (*model.UserModuleProgress, error) {
	progress, err := s.createProgress(ctx, s.db, userID, moduleID, isFirstModule)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to initialize module progress", "error", err, "user_id", userID, "module_id", moduleID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to initialize module progress.", "", err)
	}
	return progress, nil
}

func (s *moduleService) createProgress(ctx context.Context, db *gorm.DB, userID, moduleID string, unlocked bool) (*model.UserModuleProgress, error) {
	fresh := &model.UserModuleProgress{
		UserID:           userID,
		ModuleID:         moduleID,
		CompletedCourses: []string{},
		CompletedLessons: []string{},
		Unlocked:         unlocked,
	}
	if unlocked {
		now := s.now()
		fresh.UnlockedAt = &now
	}
	if err := s.progressRepo.CreateIfAbsent(ctx, db, fresh); err != nil {
		return nil, err
	}
	return s.progressRepo.FindByUserAndModule(ctx, db, userID, moduleID)
}

// ensureProgress は進捗が無ければ作る。カテゴリ先頭 (order=1) のモジュールだけ解放済みで作成する。
func (s *moduleService) ensureProgress(ctx context.Context, db *gorm.DB, userID, moduleID string) (*model.UserModuleProgress, error) {
	progress, err := s.progressRepo.FindByUserAndModule(ctx, db, userID, moduleID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	module, err := s.moduleRepo.FindByID(ctx, db, moduleID)
	if err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Initializing module progress", "user_id", userID, "module_id", moduleID, "unlocked", module.Order == 1)
	return s.createProgress(ctx, db, userID, moduleID, module.Order == 1)
}

// progressError は NotFound をそのまま返し、それ以外を 500 に包む
func progressError(err error, message string) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", "Module not found.", "module_id", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func (s *moduleService) IsModuleUnlocked(ctx context.Context, userID, moduleID string) (bool, error) {
	progress, err := s.ensureProgress(ctx, s.db, userID, moduleID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to check module unlock", "error", err, "user_id", userID, "module_id", moduleID)
		return false, progressError(err, "Failed to check module unlock.")
	}
	return progress.Unlocked, nil
}

func (s *moduleService) MarkCourseComplete(ctx context.Context, userID, moduleID, courseID string) (bool, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "module_id", moduleID, "course_id", courseID)

	added := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.ensureProgress(ctx, tx, userID, moduleID)
		if err != nil {
			return err
		}
		if progress.HasCompletedCourse(courseID) {
			return nil
		}
		progress.CompletedCourses = append(progress.CompletedCourses, courseID)
		added = true
		return s.progressRepo.Update(ctx, tx, progress)
	})
	if err != nil {
		logger.Error("Failed to mark course complete", "error", err)
		return false, progressError(err, "Failed to mark course complete.")
	}
	if added {
		logger.Info("Course marked complete")
	}
	return added, nil
}

func (s *moduleService) MarkLessonComplete(ctx context.Context, userID, moduleID, lessonID string) (bool, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "module_id", moduleID, "lesson_id", lessonID)

	added := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.ensureProgress(ctx, tx, userID, moduleID)
		if err != nil {
			return err
		}
		if progress.HasCompletedLesson(lessonID) {
			return nil
		}
		progress.CompletedLessons = append(progress.CompletedLessons, lessonID)
		added = true
		return s.progressRepo.Update(ctx, tx, progress)
	})
	if err != nil {
		logger.Error("Failed to mark lesson complete", "error", err)
		return false, progressError(err, "Failed to mark lesson complete.")
	}
	if added {
		logger.Info("Lesson marked complete")
	}
	return added, nil
}

// CanTakeModuleQuiz は進捗が無ければ false (作成はしない)
func (s *moduleService) CanTakeModuleQuiz(ctx context.Context, userID, moduleID string, requiredCourseIDs []string) (bool, error) {
	progress, err := s.progressRepo.FindByUserAndModule(ctx, s.db, userID, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		middleware.GetLogger(ctx).Error("Failed to check quiz eligibility", "error", err, "user_id", userID, "module_id", moduleID)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check quiz eligibility.", "", err)
	}
	for _, courseID := range requiredCourseIDs {
		if !progress.HasCompletedCourse(courseID) {
			return false, nil
		}
	}
	return true, nil
}

// UpdateQuizResult は進捗が無ければ何もしない。合格なら同カテゴリの次モジュールを解放する。
func (s *moduleService) UpdateQuizResult(ctx context.Context, userID, moduleID string, score int, passed bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "module_id", moduleID)

	var unlocked *model.Module
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.progressRepo.FindByUserAndModule(ctx, tx, userID, moduleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("No module progress, quiz result ignored", "score", score)
				return nil
			}
			return err
		}

		now := s.now()
		progress.QuizScore = score
		progress.QuizPassed = passed
		progress.QuizAttempts++
		progress.LastAttemptAt = &now
		if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
			return err
		}
		logger.Info("Quiz result recorded", "score", score, "passed", passed, "attempts", progress.QuizAttempts)

		if !passed {
			return nil
		}
		unlocked, err = s.unlockNextTx(ctx, tx, userID, moduleID)
		return err
	})
	if err != nil {
		logger.Error("Failed to update quiz result", "error", err)
		return progressError(err, "Failed to update quiz result.")
	}

	s.notifyUnlocked(ctx, userID, unlocked)
	return nil
}

func (s *moduleService) UnlockNextModule(ctx context.Context, userID, currentModuleID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "module_id", currentModuleID)

	var unlocked *model.Module
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		unlocked, err = s.unlockNextTx(ctx, tx, userID, currentModuleID)
		return err
	})
	if err != nil {
		logger.Error("Failed to unlock next module", "error", err)
		return progressError(err, "Failed to unlock next module.")
	}

	s.notifyUnlocked(ctx, userID, unlocked)
	return nil
}

// unlockNextTx は同カテゴリ order+1 のモジュールを解放する。次が無ければ nil。
func (s *moduleService) unlockNextTx(ctx context.Context, tx *gorm.DB, userID, currentModuleID string) (*model.Module, error) {
	current, err := s.moduleRepo.FindByID(ctx, tx, currentModuleID)
	if err != nil {
		return nil, err
	}
	next, err := s.moduleRepo.FindByCategoryAndOrder(ctx, tx, current.Category, current.Order+1)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			middleware.GetLogger(ctx).Info("Last module in category, nothing to unlock", "category", current.Category, "order", current.Order)
			return nil, nil
		}
		return nil, err
	}

	progress, err := s.progressRepo.FindByUserAndModule(ctx, tx, userID, next.ID)
	if errors.Is(err, model.ErrNotFound) {
		progress, err = s.createProgress(ctx, tx, userID, next.ID, true)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	progress.Unlocked = true
	progress.UnlockedAt = &now
	if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Next module unlocked", "user_id", userID, "next_module_id", next.ID)
	return next, nil
}

func (s *moduleService) notifyUnlocked(ctx context.Context, userID string, module *model.Module) {
	if module == nil {
		return
	}
	notify(ctx, s.notifier, Notification{
		Type:   NotificationModuleUnlocked,
		UserID: userID,
		Payload: map[string]interface{}{
			"module_id": module.ID,
			"name":      module.Name,
			"category":  module.Category,
			"order":     module.Order,
		},
		OccurredAt: s.now(),
	})
}

// --- レッスン視聴可否 ---

// IsLessonUnlocked: イントロは常に視聴可。それ以外は直前レッスン完了かつモジュールのクイズ合格が条件。
// モジュールに無いレッスンは直前レッスンが無い場合と同じく false。
func (s *moduleService) IsLessonUnlocked(ctx context.Context, userID string, module *model.Module, lessonID string) (bool, error) {
	lesson, ok := module.FindLesson(lessonID)
	if !ok {
		return false, nil
	}
	if lesson.IsIntro {
		return true, nil
	}
	previous, ok := module.LessonAt(lesson.Order - 1)
	if !ok {
		return false, nil
	}

	progress, err := s.progressRepo.FindByUserAndModule(ctx, s.db, userID, module.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		middleware.GetLogger(ctx).Error("Failed to check lesson unlock", "error", err, "user_id", userID, "module_id", module.ID)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check lesson unlock.", "", err)
	}
	return progress.HasCompletedLesson(previous.ID) && progress.QuizPassed, nil
}

func (s *moduleService) CanWatchNextLesson(ctx context.Context, userID string, module *model.Module, currentLessonID string) (bool, error) {
	progress, err := s.progressRepo.FindByUserAndModule(ctx, s.db, userID, module.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		middleware.GetLogger(ctx).Error("Failed to check next lesson", "error", err, "user_id", userID, "module_id", module.ID)
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check next lesson.", "", err)
	}
	if lesson, ok := module.FindLesson(currentLessonID); ok && lesson.IsIntro {
		return true, nil
	}
	return progress.QuizPassed, nil
}
