package organizer

import (
	"fmt"
	"io"

	"github.com/moyu-x/akovian-organizer/logger"
)

// copyFile 复制文件内容并保留原文件的权限位
func (o *Organizer) copyFile(src, dst string) error {
	sourceFile, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	info, err := o.fs.Stat(src)
	if err != nil {
		return err
	}
	return o.fs.Chmod(dst, info.Mode())
}

// moveFile 优先使用 rename 移动文件，失败（如跨卷）时回退为复制后删除
func (o *Organizer) moveFile(src, dst string) error {
	err := o.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	logger.Get().Debug().Err(err).Msgf("直接重命名失败，尝试复制后删除: %s", src)

	if err := o.copyFile(src, dst); err != nil {
		return err
	}

	if err := o.fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}
	return nil
}
