// internal/handlers/module_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/service"
	"crew_academy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ModuleHandler struct {
	modules service.ModuleService
	rewards service.RewardsService
}

func NewModuleHandler(modules service.ModuleService, rewards service.RewardsService) *ModuleHandler {
	return &ModuleHandler{
		modules: modules,
		rewards: rewards,
	}
}

var errModuleNotFound = model.NewAppError("NOT_FOUND", "Module not found.", "module_id", model.ErrNotFound)

// ListModules は公開中のモジュール一覧を返す。?category= で絞り込み。
func (h *ModuleHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListModules"))

	var (
		modules []*model.Module
		err     error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		modules, err = h.modules.GetModulesByCategory(r.Context(), model.ModuleCategory(category))
	} else {
		modules, err = h.modules.GetAllModules(r.Context())
	}
	if err != nil {
		logger.Error("Error listing modules in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	governor := isGovernor(r)
	visible := make([]*model.Module, 0, len(modules))
	for _, m := range modules {
		if m.Visible || governor {
			visible = append(visible, m)
		}
	}
	webutil.RespondWithJSON(w, http.StatusOK, visible)
}

// loadModule は URL の module_id からモジュールを取得する。非公開モジュールは管理者以外 404。
func (h *ModuleHandler) loadModule(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*model.Module, bool) {
	moduleID := chi.URLParam(r, "module_id")
	module, err := h.modules.GetModule(r.Context(), moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return nil, false
	}
	if !module.Visible && !isGovernor(r) {
		logger.Info("Hidden module requested", slog.String("module_id", moduleID))
		webutil.HandleError(w, logger, errModuleNotFound)
		return nil, false
	}
	return module, true
}

// lessonParam はモジュールに無いレッスンなら 404 を書いて false を返す
func lessonParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, module *model.Module) (string, bool) {
	lessonID := chi.URLParam(r, "lesson_id")
	if _, ok := module.FindLesson(lessonID); !ok {
		logger.Info("Unknown lesson requested", slog.String("module_id", module.ID), slog.String("lesson_id", lessonID))
		webutil.HandleError(w, logger, model.NewAppError("NOT_FOUND", "Lesson not found.", "lesson_id", model.ErrNotFound))
		return "", false
	}
	return lessonID, true
}

// requireUnlocked はモジュール未解放なら 403 を書いて false を返す
func (h *ModuleHandler) requireUnlocked(w http.ResponseWriter, r *http.Request, logger *slog.Logger, userID, moduleID string) bool {
	unlocked, err := h.modules.IsModuleUnlocked(r.Context(), userID, moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return false
	}
	if !unlocked {
		logger.Info("Module is locked for user", slog.String("module_id", moduleID))
		webutil.HandleError(w, logger, model.NewAppError("MODULE_LOCKED", "Pass the previous module's quiz to unlock this module.", "module_id", model.ErrForbidden))
		return false
	}
	return true
}

func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetModule"))

	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, module)
}

// GetModuleProgress は解放状態と進捗を返す (未作成なら初期化される)
func (h *ModuleHandler) GetModuleProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetModuleProgress"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}

	unlocked, err := h.modules.IsModuleUnlocked(r.Context(), userID, module.ID)
	if err != nil {
		logger.Error("Error checking module unlock in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	progress, err := h.modules.GetUserModuleProgress(r.Context(), userID, module.ID)
	if err != nil {
		logger.Error("Error getting module progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.ModuleProgressResponse{
		ModuleID: module.ID,
		Unlocked: unlocked,
		Progress: progress,
	})
}

// CompleteLesson はレッスンを完了にし、初回完了時のみポイントを付与する
func (h *ModuleHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CompleteLesson"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := lessonParam(w, r, logger, module)
	if !ok {
		return
	}
	logger = logger.With(slog.String("module_id", module.ID), slog.String("lesson_id", lessonID))

	if !h.requireUnlocked(w, r, logger, userID, module.ID) {
		return
	}
	lessonUnlocked, err := h.modules.IsLessonUnlocked(r.Context(), userID, module, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !lessonUnlocked {
		logger.Info("Lesson is locked for user")
		webutil.HandleError(w, logger, model.NewAppError("LESSON_LOCKED", "This lesson is not unlocked yet.", "lesson_id", model.ErrForbidden))
		return
	}

	newlyComplete, err := h.modules.MarkLessonComplete(r.Context(), userID, module.ID, lessonID)
	if err != nil {
		logger.Error("Error marking lesson complete in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if newlyComplete {
		// ポイント付与の失敗で完了記録は取り消さない
		if err := h.rewards.HandleLessonWatched(r.Context(), userID, module.ID, lessonID); err != nil {
			logger.Error("Failed to award lesson points", slog.Any("error", err))
		}
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.LessonCompleteResponse{
		LessonID:      lessonID,
		NewlyComplete: newlyComplete,
	})
}

func (h *ModuleHandler) GetLessonAccess(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetLessonAccess"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := lessonParam(w, r, logger, module)
	if !ok {
		return
	}

	unlocked, err := h.modules.IsLessonUnlocked(r.Context(), userID, module, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	canWatchNext, err := h.modules.CanWatchNextLesson(r.Context(), userID, module, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.LessonAccessResponse{
		LessonID:           lessonID,
		Unlocked:           unlocked,
		CanWatchNextLesson: canWatchNext,
	})
}

func (h *ModuleHandler) CompleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CompleteCourse"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}
	courseID := chi.URLParam(r, "course_id")

	if !h.requireUnlocked(w, r, logger, userID, module.ID) {
		return
	}
	newlyComplete, err := h.modules.MarkCourseComplete(r.Context(), userID, module.ID, courseID)
	if err != nil {
		logger.Error("Error marking course complete in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.CourseCompleteResponse{
		CourseID:      courseID,
		NewlyComplete: newlyComplete,
	})
}

// SubmitQuiz はモジュールクイズの結果を記録する。
// 初回合格時のみクイズ合格とモジュール完了のポイントを付与する。
func (h *ModuleHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitQuiz"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	module, ok := h.loadModule(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("module_id", module.ID))

	var req model.SubmitQuizRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid quiz request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	score := *req.Score

	if !h.requireUnlocked(w, r, logger, userID, module.ID) {
		return
	}
	canTake, err := h.modules.CanTakeModuleQuiz(r.Context(), userID, module.ID, req.RequiredCourseIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !canTake {
		logger.Info("Quiz attempted before required courses were completed")
		webutil.HandleError(w, logger, model.NewAppError("COURSES_INCOMPLETE", "Complete the required courses before taking the quiz.", "required_course_ids", model.ErrForbidden))
		return
	}

	prior, err := h.modules.GetUserModuleProgress(r.Context(), userID, module.ID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	passed := score >= model.QuizPassScore
	// 初回合格の判定は UpdateQuizResult と同一トランザクションではない。
	// 同時送信では両方が初回合格となりポイントが二重に付与されうるが、許容している。
	firstPass := passed && !prior.QuizPassed

	if err := h.modules.UpdateQuizResult(r.Context(), userID, module.ID, score, passed); err != nil {
		logger.Error("Error updating quiz result in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if firstPass {
		quizID := module.ID
		if module.QuizID != nil && *module.QuizID != "" {
			quizID = *module.QuizID
		}
		if err := h.rewards.HandleQuizPass(r.Context(), userID, quizID, score); err != nil {
			logger.Error("Failed to award quiz points", slog.Any("error", err))
		}
		if err := h.rewards.HandleModuleComplete(r.Context(), userID, module.ID); err != nil {
			logger.Error("Failed to award module completion points", slog.Any("error", err))
		}
	}

	logger.Info("Quiz submitted", slog.Int("score", score), slog.Bool("passed", passed), slog.Bool("first_pass", firstPass))
	webutil.RespondWithJSON(w, http.StatusOK, &model.SubmitQuizResponse{
		ModuleID: module.ID,
		Score:    score,
		Passed:   passed,
	})
}
