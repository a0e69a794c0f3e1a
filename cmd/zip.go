package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/akovian-organizer/app"
	"github.com/moyu-x/akovian-organizer/config"
)

var zipCmd = &cobra.Command{
	Use:   "zip <folder> <output.zip>",
	Short: "把文件夹打包为 zip",
	Long:  `递归打包文件夹为 zip 归档（deflate 压缩），跳过 _akovian_backups 备份目录。`,
	Args:  cobra.ExactArgs(2),
	RunE:  runZip,
}

func runZip(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	err = app.RunZip(&app.ZipOptions{
		Folder:   args[0],
		Output:   args[1],
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
		LogFile:  cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	fmt.Printf("归档完成: %s\n", args[1])
	return nil
}

func init() {
	zipCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(zipCmd)
}
