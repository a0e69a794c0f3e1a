package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/config"
	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/organizer"
)

type OrganizeOptions struct {
	Folder         string
	ProfilePath    string
	IgnorePatterns []string
	DryRun         bool
	Sniff          bool
	Verbose        bool
	LogLevel       string
	LogFile        string
}

// RunOrganize 整理入口：合并配置文档与命令行参数后调用引擎，
// 非预览会话写入会话日志供 undo 使用。
func RunOrganize(opts *OrganizeOptions) (*organizer.Result, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	folder := opts.Folder
	fileTypes := config.DefaultFileTypes()
	ignore := opts.IgnorePatterns
	dryRun := opts.DryRun

	if opts.ProfilePath != "" {
		profile, err := config.LoadProfile(opts.ProfilePath)
		if err != nil {
			return nil, err
		}
		logger.Get().Info().Msgf("已加载配置文档: %s", opts.ProfilePath)

		if len(profile.FileTypes) > 0 {
			fileTypes = profile.FileTypes
		}
		ignore = append(append([]string{}, profile.IgnorePatterns...), ignore...)
		if profile.Preview {
			dryRun = true
		}
		if folder == "" {
			folder = profile.Folder
		}
	}

	if folder == "" {
		return nil, fmt.Errorf("必须指定要整理的文件夹")
	}

	org := organizer.New(afero.NewOsFs())
	res, err := org.Organize(folder, organizer.Options{
		FileTypes:      fileTypes,
		IgnorePatterns: ignore,
		DryRun:         dryRun,
		SniffContent:   opts.Sniff,
	})
	if err != nil {
		return nil, fmt.Errorf("整理文件夹失败: %w", err)
	}

	if !res.DryRun && len(res.Records) > 0 {
		if err := organizer.SaveSession(afero.NewOsFs(), res); err != nil {
			logger.Get().Warn().Err(err).Msg("写入会话日志失败，undo 将不可用")
		}
	}

	return res, nil
}
