package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fgblog/config"
	"fgblog/internal/api"
	"fgblog/internal/scheduler"
	"fgblog/pkg/async"
	"fgblog/pkg/database"
	"fgblog/pkg/geetest"
	"fgblog/pkg/logger"
	"fgblog/pkg/notify"
	"fgblog/pkg/tracing"

	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	// 初始化日志
	log := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer log.Close()

	shutdownTracing, err := tracing.Init(cfg.Tracing, log)
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	// 初始化数据库连接
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Error("无法连接到数据库", err)
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(cmd.Context(), db); err != nil {
		return fmt.Errorf("创建数据表失败: %w", err)
	}

	// 初始化Redis连接，未配置时不启用缓存
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Error("无法连接到Redis", err)
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		log.Warn("未配置Redis，缓存已禁用，横幅关闭记录仅保存在进程内")
	}

	notifier, err := notify.New(cfg.Notify, log)
	if err != nil {
		return err
	}

	// 创建异步工作器
	worker := async.NewWorker(100, log)
	worker.Start(2)
	defer worker.Stop()

	deps := api.Deps{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Redis:    redisClient,
		Worker:   worker,
		Notifier: notifier,
		Captcha:  geetest.NewClient(cfg.Geetest.CaptchaID, cfg.Geetest.CaptchaKey, cfg.Geetest.APIServer),
	}
	services, err := api.NewServices(deps)
	if err != nil {
		return err
	}

	// 初始化公告调度器
	announcementScheduler, err := scheduler.NewAnnouncementScheduler(services.Announcements, cfg.Cron.WarmAnnouncements, log)
	if err != nil {
		return err
	}
	announcementScheduler.Start()
	defer announcementScheduler.Stop()

	// 创建HTTP服务器
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           api.SetupRouter(deps, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("服务器启动", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("启动服务器失败: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器被强制关闭: %w", err)
	}

	log.Info("服务器已正常退出")
	return nil
}

