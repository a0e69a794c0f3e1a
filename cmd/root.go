package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "akovian",
	Short: "按扩展名整理文件夹的命令行工具",
	Long: `Akovian Organizer 是一个命令行工具，把文件夹里的文件按扩展名分类整理。

主要功能:
- 按分类表把文件移动到 Images/Documents/Videos 等分类目录
- 移动前自动备份到 _akovian_backups 目录
- 记录移动记录，支持整体撤销上一次整理
- 基于内容哈希（SHA-256）检测重复文件
- 批量添加文件名前缀/后缀
- 把整理结果打包为 zip`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
