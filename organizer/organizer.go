// Package organizer 实现文件夹整理引擎：按扩展名分类移动文件、移动前备份、
// 记录可撤销的移动记录。所有移动操作串行执行，顺序即记录顺序。
package organizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/config"
	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/scanner"
)

// ErrNotDirectory 整理目标不是文件夹
var ErrNotDirectory = errors.New("路径不是文件夹")

type Options struct {
	FileTypes      map[string][]string // 分类表，nil 时使用默认分类
	IgnorePatterns []string            // 忽略模式（glob，大小写不敏感）
	DryRun         bool                // 预览模式，不做任何文件系统变更
	SniffContent   bool                // 扩展名未命中时按文件内容嗅探分类
}

// Result 一次整理会话的结果对象，undo 以它为输入
type Result struct {
	SessionID  string                `json:"session_id"`
	Root       string                `json:"root"`
	Records    []internal.MoveRecord `json:"records"`
	BackupsDir string                `json:"backups_dir"`
	Skipped    int                   `json:"skipped"`
	DryRun     bool                  `json:"dry_run"`
	StartedAt  time.Time             `json:"started_at"`
}

type Organizer struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Organizer {
	return &Organizer{fs: fs}
}

// Organize 整理 root 的直接子文件。备份目录永远不会被扫描，
// 文件也永远不会被移入备份目录。
func (o *Organizer) Organize(root string, opts Options) (*Result, error) {
	info, err := o.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("目标文件夹不可用: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	fileTypes := opts.FileTypes
	if fileTypes == nil {
		fileTypes = config.DefaultFileTypes()
	}
	categories := sortedCategories(fileTypes)

	res := &Result{
		SessionID:  uuid.NewString(),
		Root:       root,
		BackupsDir: filepath.Join(root, internal.BackupDirName),
		DryRun:     opts.DryRun,
		StartedAt:  time.Now(),
	}

	logger.Get().Info().Msgf("开始整理: %s (会话 %s)", root, res.SessionID)
	if opts.DryRun {
		logger.Get().Info().Msg("=== 预览模式，不会实际移动文件 ===")
	}

	files, err := scanner.NewFileWalker(o.fs).ListFiles(root)
	if err != nil {
		return nil, err
	}

	// 预览模式下没有真实移动，用 reserved 占住已规划的目标名，
	// 保证预览的冲突编号与真实运行一致
	reserved := make(map[string]bool)
	backupsReady := false

	for _, fi := range files {
		name := fi.Name()

		if scanner.Ignored(name, opts.IgnorePatterns) {
			res.Skipped++
			logger.Get().Info().Msgf("跳过（忽略模式命中）: %s", name)
			continue
		}

		src := filepath.Join(root, name)
		category := o.resolveCategory(src, name, fileTypes, categories, opts.SniffContent)
		targetDir := filepath.Join(root, category)
		target := o.resolveTarget(targetDir, name, reserved)

		if opts.DryRun {
			reserved[target] = true
			res.Records = append(res.Records, internal.MoveRecord{From: src, To: target})
			logger.Get().Info().Msgf("[预览] 将移动: %s -> %s/%s", name, category, filepath.Base(target))
			continue
		}

		if !backupsReady {
			if err := o.fs.MkdirAll(res.BackupsDir, 0755); err != nil {
				return res, fmt.Errorf("创建备份目录失败: %w", err)
			}
			backupsReady = true
		}

		backupPath, err := o.backupFile(src, res.BackupsDir)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("备份文件失败，跳过: %s", name)
			continue
		}

		if err := o.fs.MkdirAll(targetDir, 0755); err != nil {
			logger.Get().Error().Err(err).Msgf("创建分类目录失败，跳过: %s", targetDir)
			continue
		}

		if err := o.moveFile(src, target); err != nil {
			logger.Get().Error().Err(err).Msgf("移动文件失败，跳过: %s", name)
			continue
		}

		reserved[target] = true
		res.Records = append(res.Records, internal.MoveRecord{From: src, To: target})
		logger.Get().Info().Msgf("已移动: %s -> %s (备份: %s)", name, category, filepath.Base(backupPath))
	}

	logger.Get().Info().Msgf("整理完成: %d 个文件, 跳过 %d 个", len(res.Records), res.Skipped)
	return res, nil
}

// resolveCategory 按扩展名后缀匹配分类，未命中时可选地按内容嗅探，最终兜底 Others
func (o *Organizer) resolveCategory(path, name string, fileTypes map[string][]string, categories []string, sniff bool) string {
	lower := strings.ToLower(name)
	for _, cat := range categories {
		for _, ext := range fileTypes[cat] {
			if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
				return cat
			}
		}
	}

	if sniff {
		if cat, ok := o.sniffCategory(path); ok {
			logger.Get().Debug().Msgf("按内容嗅探分类: %s -> %s", name, cat)
			return cat
		}
	}

	return internal.OthersCategory
}

// resolveTarget 解决目标名冲突：在原始文件名主干后追加 _1, _2, ... 直到空闲
func (o *Organizer) resolveTarget(dir, name string, reserved map[string]bool) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for n := 1; ; n++ {
		if !reserved[candidate] {
			if exists, _ := afero.Exists(o.fs, candidate); !exists {
				return candidate
			}
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
}

// backupFile 把原文件复制到备份目录，文件名带秒级时间戳前缀。
// 同一秒内出现同名备份时复用冲突编号规则，不会覆盖已有备份。
func (o *Organizer) backupFile(srcPath, backupsDir string) (string, error) {
	stamp := time.Now().Format(internal.BackupStampLayout)
	name := stamp + "__" + filepath.Base(srcPath)

	dst := o.resolveTarget(backupsDir, name, nil)
	if filepath.Base(dst) != name {
		logger.Get().Debug().Msgf("同一秒内的同名备份，顺延编号: %s", filepath.Base(dst))
	}

	if err := o.copyFile(srcPath, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func sortedCategories(fileTypes map[string][]string) []string {
	categories := make([]string, 0, len(fileTypes))
	for cat := range fileTypes {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}
