package scanner

import (
	"path"
	"strings"
)

// Ignored 判断文件名是否命中任一忽略模式。
// 模式为 glob 语法（* 与 ?），匹配大小写不敏感，只作用于文件名本身。
func Ignored(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if ok, err := path.Match(strings.ToLower(p), lower); err == nil && ok {
			return true
		}
	}
	return false
}
