package organizer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

// 会话日志保存在备份目录下，undo 子命令靠它跨进程拿到上一次的移动记录。
// 预览会话不会写日志。

func sessionPath(root string) string {
	return filepath.Join(root, internal.BackupDirName, internal.SessionFileName)
}

// SaveSession 把整理会话写入备份目录下的会话日志
func SaveSession(fs afero.Fs, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化会话失败: %w", err)
	}

	if err := fs.MkdirAll(res.BackupsDir, 0755); err != nil {
		return fmt.Errorf("创建备份目录失败: %w", err)
	}

	path := sessionPath(res.Root)
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("写入会话日志失败: %w", err)
	}

	logger.Get().Debug().Msgf("会话日志已写入: %s", path)
	return nil
}

// LoadSession 读取 root 下最近一次整理会话
func LoadSession(fs afero.Fs, root string) (*Result, error) {
	data, err := afero.ReadFile(fs, sessionPath(root))
	if err != nil {
		return nil, fmt.Errorf("没有可撤销的整理会话: %w", err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("会话日志损坏: %w", err)
	}

	return &res, nil
}

// ClearSession 删除会话日志，日志不存在时不报错
func ClearSession(fs afero.Fs, root string) error {
	if err := fs.Remove(sessionPath(root)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
