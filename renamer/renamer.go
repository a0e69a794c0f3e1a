// Package renamer 实现批量重命名：新名 = 前缀 + 原主干 + 后缀 + 原扩展名。
package renamer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

type Renamer struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Renamer {
	return &Renamer{fs: fs}
}

// Rename 对显式给出的文件列表批量重命名。
// 目标名已被其他文件占用时追加 _1, _2, ... 直到空闲；
// 目标与源是同一路径（大小写不敏感比较）时不算冲突。
// 预览模式只记录意图。单个文件的错误记录日志后跳过。
func (r *Renamer) Rename(paths []string, prefix, suffix string, dryRun bool) []internal.RenameRecord {
	if dryRun {
		logger.Get().Info().Msg("=== 预览模式，不会实际重命名 ===")
	}

	records := make([]internal.RenameRecord, 0, len(paths))

	for _, p := range paths {
		parent := filepath.Dir(p)
		name := filepath.Base(p)
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)

		newName := prefix + stem + suffix + ext
		newPath := filepath.Join(parent, newName)

		if dryRun {
			records = append(records, internal.RenameRecord{From: p, To: newPath})
			logger.Get().Info().Msgf("[预览] %s -> %s", name, newName)
			continue
		}

		target, err := r.resolveTarget(p, parent, newName)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("解析目标名失败，跳过: %s", name)
			continue
		}

		if err := r.fs.Rename(p, target); err != nil {
			logger.Get().Error().Err(err).Msgf("重命名失败，跳过: %s", name)
			continue
		}

		records = append(records, internal.RenameRecord{From: p, To: target})
		logger.Get().Info().Msgf("已重命名: %s -> %s", name, filepath.Base(target))
	}

	return records
}

func (r *Renamer) resolveTarget(src, parent, newName string) (string, error) {
	ext := filepath.Ext(newName)
	stem := strings.TrimSuffix(newName, ext)

	candidate := filepath.Join(parent, newName)
	for n := 1; ; n++ {
		exists, err := afero.Exists(r.fs, candidate)
		if err != nil {
			return "", err
		}
		if !exists || strings.EqualFold(candidate, src) {
			return candidate, nil
		}
		candidate = filepath.Join(parent, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
}
