package database

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moyu-x/akovian-organizer/logger"
)

// FileRecord 文件哈希缓存记录。size 和 mtime 未变化时复用已有哈希，避免重复读盘。
type FileRecord struct {
	ID        int64     `gorm:"primaryKey"`
	Path      string    `gorm:"uniqueIndex;not null"`
	FileSize  int64     `gorm:"not null"`
	ModTime   int64     `gorm:"not null"`
	Hash      string    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (FileRecord) TableName() string {
	return "file_hashes"
}

type Database struct {
	db    *gorm.DB
	cache map[string]FileRecord
	mu    sync.RWMutex
}

func NewDatabase(dbPath string) (*Database, error) {
	expandedPath, err := expandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Get().Info().Msgf("初始化哈希缓存数据库，路径: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	dsn := expandedPath + "?_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&FileRecord{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		return nil, err
	}

	return &Database{
		db:    db,
		cache: make(map[string]FileRecord),
	}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Lookup 按路径查询缓存的哈希。size 或 mtime 不一致时视为未命中。
func (d *Database) Lookup(path string, size, mtime int64) (string, bool, error) {
	d.mu.RLock()
	rec, ok := d.cache[path]
	d.mu.RUnlock()

	if !ok {
		err := d.db.Where("path = ?", path).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		if err != nil {
			logger.Get().Error().Err(err).Msgf("查询哈希缓存失败: %s", path)
			return "", false, err
		}

		d.mu.Lock()
		d.cache[path] = rec
		d.mu.Unlock()
	}

	if rec.FileSize != size || rec.ModTime != mtime {
		logger.Get().Trace().Msgf("哈希缓存失效: %s", path)
		return "", false, nil
	}

	logger.Get().Trace().Msgf("命中哈希缓存: %s -> %s", path, rec.Hash)
	return rec.Hash, true, nil
}

// Save 写入或更新一条缓存记录
func (d *Database) Save(path string, size, mtime int64, hash string) error {
	rec := FileRecord{
		Path:      path,
		FileSize:  size,
		ModTime:   mtime,
		Hash:      hash,
		CreatedAt: time.Now(),
	}

	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_size", "mod_time", "hash"}),
	}).Create(&rec).Error
	if err != nil {
		logger.Get().Error().Err(err).Msgf("写入哈希缓存失败: %s", path)
		return err
	}

	d.mu.Lock()
	d.cache[path] = rec
	d.mu.Unlock()

	logger.Get().Debug().Msgf("写入哈希缓存: %s (大小: %d bytes)", path, size)
	return nil
}

func (d *Database) Close() error {
	logger.Get().Debug().Msg("关闭哈希缓存数据库")
	sqlDB, err := d.db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return err
	}
	return sqlDB.Close()
}
