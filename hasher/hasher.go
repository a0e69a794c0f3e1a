package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

// CalculateHash 以固定大小块流式计算文件的 SHA-256，返回十六进制摘要
func CalculateHash(fs afero.Fs, filePath string) (string, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", filePath)

	file, err := fs.Open(filePath)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("无法打开文件: %s", filePath)
		return "", err
	}
	defer file.Close()

	h := sha256.New()
	buf := make([]byte, internal.HashBlockSize)
	if _, err := io.CopyBuffer(h, file, buf); err != nil {
		logger.Get().Error().Err(err).Msgf("计算哈希失败: %s", filePath)
		return "", err
	}

	result := hex.EncodeToString(h.Sum(nil))
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %s", filePath, result)
	return result, nil
}

// QuickHash 流式计算文件的 xxHash64，用作去重的低成本预筛
func QuickHash(fs afero.Fs, filePath string) (uint64, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}
