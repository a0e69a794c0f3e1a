package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile JSON 配置文档。引擎只消费 folder、ignore_patterns、preview 和
// file_types，其余字段原样携带，不做解释。
type Profile struct {
	Folder         string              `mapstructure:"folder"`
	IgnorePatterns []string            `mapstructure:"ignore_patterns"`
	Preview        bool                `mapstructure:"preview"`
	ZoomPercent    int                 `mapstructure:"zoom_percent"`
	FileTypes      map[string][]string `mapstructure:"file_types"`
}

// LoadProfile 从指定路径读取 JSON 配置文档
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文档失败: %w", err)
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("解析配置文档失败: %w", err)
	}

	return &p, nil
}

// DefaultFileTypes 返回默认的分类表：分类名 -> 识别的扩展名（含点，大小写不敏感）
func DefaultFileTypes() map[string][]string {
	return map[string][]string{
		"Images":    {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".heic"},
		"Documents": {".pdf", ".docx", ".doc", ".txt", ".xlsx", ".xls", ".pptx", ".ppt", ".csv", ".md"},
		"Videos":    {".mp4", ".mov", ".avi", ".mkv", ".webm"},
		"Music":     {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
		"Archives":  {".zip", ".rar", ".7z", ".tar", ".gz"},
	}
}
