package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// CatalogLesson / CatalogModule はモジュールカタログ (YAML) の1件
type CatalogLesson struct {
	ID       string `mapstructure:"id"`
	Title    string `mapstructure:"title"`
	VideoURL string `mapstructure:"video_url"`
	Duration string `mapstructure:"duration"`
	Order    int    `mapstructure:"order"`
	IsIntro  bool   `mapstructure:"is_intro"`
}

type CatalogModule struct {
	ID          string          `mapstructure:"id"`
	Name        string          `mapstructure:"name"`
	Description string          `mapstructure:"description"`
	Category    string          `mapstructure:"category"`
	Order       int             `mapstructure:"order"`
	QuizID      string          `mapstructure:"quiz_id"`
	Visible     *bool           `mapstructure:"visible"`
	Lessons     []CatalogLesson `mapstructure:"lessons"`
}

// LoadModuleCatalog はカタログファイルを読む。グローバルの viper とは別インスタンスを使う。
func LoadModuleCatalog(path string) ([]CatalogModule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read module catalog %s: %w", path, err)
	}

	var modules []CatalogModule
	if err := v.UnmarshalKey("modules", &modules); err != nil {
		return nil, fmt.Errorf("decode module catalog %s: %w", path, err)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("module catalog %s has no modules", path)
	}
	return modules, nil
}
