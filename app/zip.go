package app

import (
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/archiver"
	"github.com/moyu-x/akovian-organizer/logger"
)

type ZipOptions struct {
	Folder   string
	Output   string
	Verbose  bool
	LogLevel string
	LogFile  string
}

// RunZip 归档入口
func RunZip(opts *ZipOptions) error {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return err
	}

	return archiver.ZipFolder(afero.NewOsFs(), opts.Folder, opts.Output)
}
