package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/akovian-organizer/app"
	"github.com/moyu-x/akovian-organizer/config"
)

var dupCmd = &cobra.Command{
	Use:   "dup <folder>",
	Short: "检测内容相同的重复文件",
	Long: `扫描文件夹的直接子文件，流式计算 SHA-256 内容哈希并按哈希分组，
只输出成员数大于 1 的分组。空文件和备份目录不参与扫描。
指定 --db 时启用哈希缓存，未变化的文件在下次扫描时不再读盘。`,
	Args: cobra.ExactArgs(1),
	RunE: runDup,
}

func runDup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	dbPath, _ := cmd.Flags().GetString("db")
	workers, _ := cmd.Flags().GetInt("workers")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if workers <= 0 {
		workers = cfg.Performance.Workers
	}

	groups, err := app.RunDuplicates(&app.DuplicatesOptions{
		Folder:         args[0],
		IgnorePatterns: ignore,
		DBPath:         dbPath,
		Workers:        workers,
		Verbose:        verbose,
		LogLevel:       cfg.Logging.Level,
		LogFile:        cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Println("未发现重复文件")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("=== 哈希: %s ===\n", g.Hash[:12])
		for _, p := range g.Paths {
			fmt.Printf("    %s\n", p)
		}
	}
	fmt.Printf("共 %d 个重复分组\n", len(groups))

	return nil
}

func init() {
	dupCmd.Flags().StringSliceP("ignore", "i", nil, "忽略模式（glob，可重复或逗号分隔）")
	dupCmd.Flags().String("db", "", "哈希缓存数据库路径（为空时不使用缓存）")
	dupCmd.Flags().IntP("workers", "w", 0, "哈希计算的工作线程数（默认取配置）")
	dupCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(dupCmd)
}
