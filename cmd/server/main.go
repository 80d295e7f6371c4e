package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fgblog/config"
	"fgblog/pkg/database"
	"fgblog/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fgblog",
	Short: "FG Blog 后端服务",
	Long: `FG Blog 后端服务：文章、分类、联系留言和公告横幅的 HTTP API。

不带子命令运行时等同于 serve。配置来自 .env、CONFIG_FILE 指定的 YAML 文件和环境变量。`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建缺失的数据表后退出",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	log := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer log.Close()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("创建数据表失败: %w", err)
	}
	log.Info("数据表已就绪", "driver", cfg.Database.Driver)
	return nil
}
