package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/config"
	"github.com/sakialabs/RiseUp/internal/server"
	"github.com/sakialabs/RiseUp/internal/util"
)

// riseupd 是 RiseUp REST 契约的内存桩服务器，用于离线开发和集成测试。
// 生产后端是外部协作方，这里只实现契约本身，不落盘任何数据。
func main() {
	seed := flag.Bool("seed", false, "填充演示数据")
	flag.Parse()

	// 初始化配置
	config.Init()
	config.ValidateServer()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("riseupd 启动", zap.String("addr", config.AppConfig.ListenAddr))

	store := server.NewStore()
	if *seed {
		server.Seed(store)
	}

	r := server.NewRouter(store, config.AppConfig.FrontendURL)

	srv := &http.Server{
		Addr:    config.AppConfig.ListenAddr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("监听失败", zap.Error(err))
		}
	}()

	// 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	util.Logger.Info("riseupd 正在关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Error("关闭失败", zap.Error(err))
	}
}
