package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/dszqbsm/evocrawler/cmd/crawl"
	"github.com/dszqbsm/evocrawler/version"
	"github.com/spf13/cobra"
)

// 根命令直接执行爬取，不带任何参数运行时使用默认配置；version子命令打印版本信息

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer(cmd.OutOrStdout())
	},
}

func NewRootCmd() *cobra.Command {
	var flags crawl.Flags
	rootCmd := &cobra.Command{
		Use:          "evocrawler",
		Short:        "crawl fut.gg evolutions into a json file.",
		Long:         "crawl the fut.gg evolutions listing, scrape every evolution page and write all records to one json file.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Config(cmd.Flags())
			if err != nil {
				return err
			}
			return crawl.Run(cmd.Context(), cfg)
		},
	}
	flags.Register(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// 收到中断信号时取消上下文，正在进行的请求随之终止
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
