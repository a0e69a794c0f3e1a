// Package deduplicator 基于内容哈希检测重复文件。
// 分组走三级流水线：先按大小分组，再用 xxHash 预筛，
// 最后用 SHA-256 确认，只有确认组才会出现在结果里。
package deduplicator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/database"
	"github.com/moyu-x/akovian-organizer/hasher"
	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/scanner"
)

type Deduplicator struct {
	fs      afero.Fs
	store   *database.Database // 可选的哈希缓存，nil 时每次都重新计算
	workers int
}

func NewDeduplicator(fs afero.Fs, store *database.Database, workers int) *Deduplicator {
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}
	return &Deduplicator{
		fs:      fs,
		store:   store,
		workers: workers,
	}
}

type candidate struct {
	path string
	info os.FileInfo
}

// FindDuplicates 返回 root 直接子文件中内容完全相同的分组（成员数 >= 2）。
// 空文件、命中忽略模式的文件和备份目录不参与扫描。
// 单个文件的哈希错误只记录日志并跳过，不会中断扫描。
func (d *Deduplicator) FindDuplicates(root string, ignorePatterns []string) ([]internal.DuplicateGroup, error) {
	info, err := d.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("目标文件夹不可用: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s 不是文件夹", root)
	}

	files, err := scanner.NewFileWalker(d.fs).ListFiles(root)
	if err != nil {
		return nil, err
	}

	// 第一级：按文件大小分组，大小唯一的文件不可能有重复
	bySize := make(map[int64][]candidate)
	for _, fi := range files {
		if fi.Size() == 0 {
			continue
		}
		if scanner.Ignored(fi.Name(), ignorePatterns) {
			continue
		}
		bySize[fi.Size()] = append(bySize[fi.Size()], candidate{
			path: filepath.Join(root, fi.Name()),
			info: fi,
		})
	}

	// 第二级：同大小组内用 xxHash 预筛，排除内容明显不同的文件
	var confirm []candidate
	for _, group := range bySize {
		if len(group) < 2 {
			continue
		}

		byQuick := make(map[uint64][]candidate)
		for _, c := range group {
			quick, err := hasher.QuickHash(d.fs, c.path)
			if err != nil {
				logger.Get().Error().Err(err).Msgf("预筛哈希失败，跳过: %s", c.path)
				continue
			}
			byQuick[quick] = append(byQuick[quick], c)
		}

		for _, qg := range byQuick {
			if len(qg) >= 2 {
				confirm = append(confirm, qg...)
			}
		}
	}

	logger.Get().Debug().Msgf("预筛完成: %d 个文件进入内容确认", len(confirm))

	byHash, err := d.confirmHashes(confirm)
	if err != nil {
		return nil, err
	}

	groups := make([]internal.DuplicateGroup, 0, len(byHash))
	for hash, paths := range byHash {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		groups = append(groups, internal.DuplicateGroup{Hash: hash, Paths: paths})
	}

	// 扫描输出要求确定性，按组内首个路径排序
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Paths[0] < groups[j].Paths[0]
	})

	logger.Get().Info().Msgf("重复检测完成: %d 个分组", len(groups))
	return groups, nil
}

// confirmHashes 用 SHA-256 确认候选文件的内容哈希。
// 缓存命中的文件不再读盘，其余交给哈希计算池并行处理。
func (d *Deduplicator) confirmHashes(candidates []candidate) (map[string][]string, error) {
	byHash := make(map[string][]string)

	var pending []candidate
	for _, c := range candidates {
		if d.store == nil {
			pending = append(pending, c)
			continue
		}

		hash, hit, err := d.store.Lookup(c.path, c.info.Size(), c.info.ModTime().Unix())
		if err != nil {
			logger.Get().Error().Err(err).Msgf("查询哈希缓存失败: %s", c.path)
			pending = append(pending, c)
			continue
		}
		if hit {
			byHash[hash] = append(byHash[hash], c.path)
			continue
		}
		pending = append(pending, c)
	}

	if len(pending) == 0 {
		return byHash, nil
	}

	pool := hasher.NewHashPool(d.fs, d.workers)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	mtimes := make(map[string]int64, len(pending))
	go func() {
		for _, c := range pending {
			pool.AddTask(hasher.HashTask{Path: c.path, Size: c.info.Size()})
		}
		pool.Finish()
	}()
	for _, c := range pending {
		mtimes[c.path] = c.info.ModTime().Unix()
	}

	for result := range pool.Results() {
		if result.Error != nil {
			logger.Get().Error().Err(result.Error).Msgf("哈希计算失败，跳过: %s", result.Path)
			continue
		}

		byHash[result.Hash] = append(byHash[result.Hash], result.Path)

		if d.store != nil {
			if err := d.store.Save(result.Path, result.Size, mtimes[result.Path], result.Hash); err != nil {
				logger.Get().Warn().Err(err).Msgf("写入哈希缓存失败: %s", result.Path)
			}
		}
	}

	return byHash, nil
}
