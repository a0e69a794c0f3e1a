package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/organizer"
)

type UndoOptions struct {
	Folder   string
	Verbose  bool
	LogLevel string
	LogFile  string
}

// RunUndo 读取最近一次整理会话并逆序恢复，完成后清除会话日志
func RunUndo(opts *UndoOptions) (*internal.UndoStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()

	res, err := organizer.LoadSession(fs, opts.Folder)
	if err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("撤销会话 %s: %d 条移动记录", res.SessionID, len(res.Records))

	stats := organizer.New(fs).Undo(res.Records)

	if err := organizer.ClearSession(fs, opts.Folder); err != nil {
		return nil, fmt.Errorf("清除会话日志失败: %w", err)
	}

	return &stats, nil
}
