package internal

// MoveRecord 一条移动记录：整理操作产生，撤销操作按逆序消费
type MoveRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// UndoStats 撤销统计
type UndoStats struct {
	Restored int
	Failed   int
}

// DuplicateGroup 内容哈希对应的重复文件分组（成员数 >= 2）
type DuplicateGroup struct {
	Hash  string
	Paths []string
}

// RenameRecord 一条重命名记录
type RenameRecord struct {
	From string
	To   string
}
