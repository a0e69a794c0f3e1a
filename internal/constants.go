package internal

const (
	// BackupDirName 备份目录名，整理器永远不会把文件移入该目录，所有扫描也会跳过它
	BackupDirName = "_akovian_backups"

	// OthersCategory 未匹配任何分类的文件归入的目录
	OthersCategory = "Others"

	// SessionFileName 会话日志文件名，保存在备份目录下，供 undo 跨进程使用
	SessionFileName = "last_session.json"

	// BackupStampLayout 备份文件名的时间戳格式（秒级精度）
	BackupStampLayout = "20060102_150405"

	// HashBlockSize 内容哈希的流式读取块大小
	HashBlockSize = 64 * 1024

	// FileHeaderSize 文件类型嗅探所需的文件头部大小（字节）
	FileHeaderSize = 261

	// DefaultWorkers 哈希计算池的默认工作线程数
	DefaultWorkers = 4

	// DefaultBufferSize 任务与结果通道的缓冲区大小
	DefaultBufferSize = 1000

	// DefaultDatabasePath 哈希缓存数据库默认路径
	DefaultDatabasePath = "~/.akovian/hashes.db"
)
