package app

import (
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/renamer"
)

type RenameOptions struct {
	Paths    []string
	Prefix   string
	Suffix   string
	DryRun   bool
	Verbose  bool
	LogLevel string
	LogFile  string
}

// RunRename 批量重命名入口
func RunRename(opts *RenameOptions) ([]internal.RenameRecord, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	r := renamer.New(afero.NewOsFs())
	return r.Rename(opts.Paths, opts.Prefix, opts.Suffix, opts.DryRun), nil
}
