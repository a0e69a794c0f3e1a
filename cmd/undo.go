package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/akovian-organizer/app"
	"github.com/moyu-x/akovian-organizer/config"
)

var undoCmd = &cobra.Command{
	Use:   "undo <folder>",
	Short: "撤销上一次整理",
	Long: `按逆序恢复上一次整理会话的移动记录。原路径已被新文件占用时，
恢复到带 _restored<n> 后缀的名称。单条记录失败不会中断整个批次。`,
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	stats, err := app.RunUndo(&app.UndoOptions{
		Folder:   args[0],
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
		LogFile:  cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	fmt.Printf("撤销完成: 恢复 %d 个, 失败 %d 个\n", stats.Restored, stats.Failed)
	return nil
}

func init() {
	undoCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(undoCmd)
}
