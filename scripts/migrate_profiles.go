// 将 Redis 中的学习档案迁移到数据库
//
// 切换 store.type 从 redis 到 database 前手动执行一次；重复执行会重复插入练习记录。
//
// 用法: go run scripts/migrate_profiles.go [-config configs]

package main

import (
	"context"
	"flag"
	"log"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/repository"
	"speech_coach_backend/pkg/database"
	"speech_coach_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("连接 Redis 失败: %v", err)
	}
	defer rdb.Close()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}

	source := repository.NewRedisProfileRepository(rdb, 0)
	target := repository.NewProfileRepository(db)

	ctx := context.Background()
	migrated := 0
	err = source.ScanSessionIDs(ctx, func(sessionID string) error {
		p, err := source.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		for i := range p.History {
			p.History[i].ID = 0
		}
		if err := target.Put(ctx, p); err != nil {
			return err
		}
		migrated++
		return nil
	})
	if err != nil {
		logger.Log.Fatal("迁移中断", zap.Int("migrated", migrated), zap.Error(err))
	}

	logger.Log.Info("迁移完成", zap.Int("migrated", migrated))
}
