// Package archiver 把整理后的文件夹打包为 zip。
package archiver

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/logger"
	"github.com/moyu-x/akovian-organizer/scanner"
)

// ZipFolder 递归打包 root 到 output（deflate 压缩）。
// 备份目录子树和输出文件本身不会进入归档。
func ZipFolder(fs afero.Fs, root, output string) error {
	info, err := fs.Stat(root)
	if err != nil {
		return fmt.Errorf("目标文件夹不可用: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s 不是文件夹", root)
	}

	out, err := fs.Create(output)
	if err != nil {
		return fmt.Errorf("创建归档文件失败: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	absOutput := filepath.Clean(output)
	count := 0

	walker := scanner.NewFileWalker(fs)
	err = walker.Walk(root, func(path string, fi os.FileInfo) error {
		if filepath.Clean(path) == absOutput {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(fi)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		file, err := fs.Open(path)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("打开文件失败，跳过: %s", path)
			return nil
		}
		defer file.Close()

		if _, err := io.Copy(w, file); err != nil {
			return fmt.Errorf("写入归档失败: %w", err)
		}

		count++
		return nil
	})
	if err != nil {
		return err
	}

	logger.Get().Info().Msgf("归档完成: %s (%d 个文件)", output, count)
	return nil
}
