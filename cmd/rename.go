package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/akovian-organizer/app"
	"github.com/moyu-x/akovian-organizer/config"
)

var renameCmd = &cobra.Command{
	Use:   "rename <files...>",
	Short: "批量添加文件名前缀/后缀",
	Long: `对显式给出的文件批量重命名：新名 = 前缀 + 原主干 + 后缀 + 原扩展名。
目标名已存在且不是同一文件时，在扩展名前追加 _1, _2, ... 直到空闲。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	prefix, _ := cmd.Flags().GetString("prefix")
	suffix, _ := cmd.Flags().GetString("suffix")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	records, err := app.RunRename(&app.RenameOptions{
		Paths:    args,
		Prefix:   prefix,
		Suffix:   suffix,
		DryRun:   dryRun,
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
		LogFile:  cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Printf("预览完成: %d 个文件将被重命名\n", len(records))
	} else {
		fmt.Printf("重命名完成: %d 个文件\n", len(records))
	}

	return nil
}

func init() {
	renameCmd.Flags().String("prefix", "", "文件名前缀")
	renameCmd.Flags().String("suffix", "", "文件名后缀（在扩展名之前）")
	renameCmd.Flags().Bool("dry-run", false, "预览模式，不实际重命名")
	renameCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(renameCmd)
}
