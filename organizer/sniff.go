package organizer

import (
	"io"

	"github.com/h2non/filetype"

	"github.com/moyu-x/akovian-organizer/internal"
	"github.com/moyu-x/akovian-organizer/logger"
)

// sniffCategory 读取文件头部并用 filetype 判断内容类型，
// 映射到分类名。无法识别时返回 false，由调用方兜底。
func (o *Organizer) sniffCategory(filePath string) (string, bool) {
	head, err := o.readFileHeader(filePath, internal.FileHeaderSize)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("读取文件头部失败: %s", filePath)
		return "", false
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}

	switch kind.MIME.Type {
	case "image":
		return "Images", true
	case "video":
		return "Videos", true
	case "audio":
		return "Music", true
	}

	switch kind.Extension {
	case "zip", "rar", "7z", "tar", "gz", "xz", "bz2":
		return "Archives", true
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx":
		return "Documents", true
	}

	return "", false
}

func (o *Organizer) readFileHeader(filePath string, size int) ([]byte, error) {
	file, err := o.fs.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, size)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return head[:n], nil
}
