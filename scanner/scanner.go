package scanner

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

type FileWalker struct {
	fs afero.Fs
}

func NewFileWalker(fs afero.Fs) *FileWalker {
	return &FileWalker{fs: fs}
}

// ListFiles 返回目录的直接子文件，按文件名排序。
// 子目录（包括备份目录）不在结果中。
func (w *FileWalker) ListFiles(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("读取目录失败: %s", dir)
		return nil, err
	}

	files := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry)
	}
	return files, nil
}

// Walk 递归遍历目录并对每个文件调用 callback，始终跳过备份目录子树
func (w *FileWalker) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Get().Debug().Err(err).Msgf("访问路径出错: %s", path)
			return nil
		}

		if info.IsDir() {
			if info.Name() == internal.BackupDirName {
				return filepath.SkipDir
			}
			return nil
		}

		return callback(path, info)
	})
}
