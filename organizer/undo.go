package organizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

// Undo 按逆序撤销移动记录。尽力而为：单条记录失败只计数，不中断批次。
// 原路径已被新文件占用时，恢复到带 _restored<n> 后缀的同级名称。
func (o *Organizer) Undo(records []internal.MoveRecord) internal.UndoStats {
	var stats internal.UndoStats

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		if err := o.fs.MkdirAll(filepath.Dir(rec.From), 0755); err != nil {
			stats.Failed++
			logger.Get().Error().Err(err).Msgf("撤销出错: %s", rec.To)
			continue
		}

		exists, err := afero.Exists(o.fs, rec.To)
		if err != nil || !exists {
			stats.Failed++
			logger.Get().Warn().Msgf("撤销失败（文件缺失）: %s", rec.To)
			continue
		}

		target := rec.From
		if occupied, _ := afero.Exists(o.fs, rec.From); occupied {
			target = o.restoredName(rec.From)
			logger.Get().Info().Msgf("原路径已被占用，改为恢复到: %s", filepath.Base(target))
		}

		if err := o.moveFile(rec.To, target); err != nil {
			stats.Failed++
			logger.Get().Error().Err(err).Msgf("撤销出错: %s", rec.To)
			continue
		}

		stats.Restored++
		logger.Get().Info().Msgf("已恢复: %s -> %s", filepath.Base(rec.To), filepath.Base(target))
	}

	logger.Get().Info().Msgf("撤销完成: 恢复 %d 个, 失败 %d 个", stats.Restored, stats.Failed)
	return stats
}

// restoredName 在原始路径主干后追加 _restored1, _restored2, ... 直到空闲
func (o *Organizer) restoredName(orig string) string {
	ext := filepath.Ext(orig)
	base := strings.TrimSuffix(orig, ext)

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_restored%d%s", base, n, ext)
		if exists, _ := afero.Exists(o.fs, candidate); !exists {
			return candidate
		}
	}
}
