package app

import (
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/database"
	"github.com/moyu-x/akovian-organizer/deduplicator"
	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

type DuplicatesOptions struct {
	Folder         string
	IgnorePatterns []string
	DBPath         string // 哈希缓存数据库路径，为空时不使用缓存
	Workers        int
	Verbose        bool
	LogLevel       string
	LogFile        string
}

// RunDuplicates 重复检测入口，可选地挂接哈希缓存数据库
func RunDuplicates(opts *DuplicatesOptions) ([]internal.DuplicateGroup, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	var store *database.Database
	if opts.DBPath != "" {
		var err error
		store, err = database.NewDatabase(opts.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
	}

	dedup := deduplicator.NewDeduplicator(afero.NewOsFs(), store, opts.Workers)
	return dedup.FindDuplicates(opts.Folder, opts.IgnorePatterns)
}
