// 手动触发数据库迁移并创建默认管理员账号
//
// 主应用启动时也会执行同样的迁移和种子逻辑，此脚本用于
// 不启动服务器的场景，例如CI环境或数据库初始化。
//
// 用法: go run scripts/seed_admin.go
package main

import (
	"log"
	"os"
	"school_dashboard_backend/internal/config"
	"school_dashboard_backend/pkg/database"
	"school_dashboard_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	if err := database.SeedDefaultAdmin(db, &cfg.Admin); err != nil {
		log.Fatalf("创建默认管理员失败: %v", err)
	}

	log.Println("迁移与种子数据完成")
}
