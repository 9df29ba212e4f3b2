// cmd/seed_modules/main.go
//
// モジュールカタログ (YAML) を読み込み、modules テーブルへ upsert する。
//
//	APP_CONFIG_DIR=./configs MODULE_CATALOG=./configs/modules.yaml go run ./cmd/seed_modules
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"crew_academy/internal/config"
	"crew_academy/internal/model"
	"crew_academy/internal/repository"
	"crew_academy/internal/service"

	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "./configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	catalogPath := os.Getenv("MODULE_CATALOG")
	if catalogPath == "" {
		catalogPath = "./configs/modules.yaml"
		logger.Info("MODULE_CATALOG not set, using default", slog.String("path", catalogPath))
	}
	catalog, err := config.LoadModuleCatalog(catalogPath)
	if err != nil {
		logger.Error("Error loading module catalog", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get underlying sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Failed to auto migrate", slog.Any("error", err))
		os.Exit(1)
	}

	// 通知は送らないので notifier は不要
	modules := service.NewModuleService(db, repository.NewGormModuleRepository(), repository.NewGormProgressRepository(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	failed := 0
	for _, entry := range catalog {
		module := toModule(entry)
		if err := modules.SaveModule(ctx, module); err != nil {
			logger.Error("Failed to save module",
				slog.String("module_id", module.ID),
				slog.String("category", string(module.Category)),
				slog.Int("order", module.Order),
				slog.Any("error", err),
			)
			failed++
			continue
		}
		logger.Info("Module saved",
			slog.String("module_id", module.ID),
			slog.String("category", string(module.Category)),
			slog.Int("order", module.Order),
			slog.Int("lessons", len(module.Lessons)),
		)
	}

	logger.Info("Seeding finished", slog.Int("total", len(catalog)), slog.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}

// toModule はカタログの1件をモデルに変換する。visible 未指定は公開扱い。
func toModule(entry config.CatalogModule) *model.Module {
	module := &model.Module{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: entry.Description,
		Category:    model.ModuleCategory(entry.Category),
		Order:       entry.Order,
		Lessons:     make([]model.ModuleLesson, 0, len(entry.Lessons)),
		Visible:     entry.Visible == nil || *entry.Visible,
	}
	if entry.QuizID != "" {
		quizID := entry.QuizID
		module.QuizID = &quizID
	}
	for _, l := range entry.Lessons {
		module.Lessons = append(module.Lessons, model.ModuleLesson{
			ID:       l.ID,
			Title:    l.Title,
			VideoURL: l.VideoURL,
			Duration: l.Duration,
			Order:    l.Order,
			IsIntro:  l.IsIntro,
		})
	}
	return module
}
