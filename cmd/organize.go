package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/akovian-organizer/app"
	"github.com/moyu-x/akovian-organizer/config"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <folder>",
	Short: "按扩展名分类整理文件夹",
	Long: `整理文件夹的直接子文件：按分类表匹配扩展名，移动到对应的分类目录，
未匹配的文件归入 Others。移动前每个文件都会备份到 _akovian_backups。
忽略模式为 glob 语法（如 *.tmp,Thumbs.db），匹配大小写不敏感。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	folder := ""
	if len(args) > 0 {
		folder = args[0]
	}

	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	sniff, _ := cmd.Flags().GetBool("sniff")
	profile, _ := cmd.Flags().GetString("profile")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.OrganizeOptions{
		Folder:         folder,
		ProfilePath:    profile,
		IgnorePatterns: ignore,
		DryRun:         dryRun,
		Sniff:          sniff,
		Verbose:        verbose,
		LogLevel:       cfg.Logging.Level,
		LogFile:        cfg.Logging.File,
	}

	res, err := app.RunOrganize(opts)
	if err != nil {
		return err
	}

	if res.DryRun {
		fmt.Printf("预览完成: %d 个文件将被移动, %d 个被跳过\n", len(res.Records), res.Skipped)
	} else {
		fmt.Printf("整理完成: %d 个文件已移动, %d 个被跳过\n", len(res.Records), res.Skipped)
		if len(res.Records) > 0 {
			fmt.Printf("备份目录: %s\n", res.BackupsDir)
		}
	}

	return nil
}

func init() {
	organizeCmd.Flags().StringSliceP("ignore", "i", nil, "忽略模式（glob，可重复或逗号分隔）")
	organizeCmd.Flags().Bool("dry-run", false, "预览模式，不实际移动文件")
	organizeCmd.Flags().Bool("sniff", false, "扩展名未命中时按文件内容嗅探分类")
	organizeCmd.Flags().StringP("profile", "p", "", "JSON 配置文档路径")
	organizeCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(organizeCmd)
}
