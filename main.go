// @title Speech Coach 后端 API
// @version 1.0
// @description 口语练习与学习进度服务。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"speech_coach_backend/internal/app"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *migrateOnly {
		cfg.Store.Type = util.StoreDatabase
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 建表在 NewApp 中完成，直接退出
	if *migrateOnly {
		application.Close()
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
