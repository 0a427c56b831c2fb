// @title SmartCareer AI 后端 API
// @version 1.0
// @description 面向查谟-克什米尔地区学生的AI职业规划后端服务器。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/Shamanthsheni/SmartCareerAI/internal/app"
	"github.com/Shamanthsheni/SmartCareerAI/internal/config"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/configwatcher"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置文件热更新
	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), cfg, func(newCfg interface{}) {
		if c, ok := newCfg.(*config.Config); ok {
			application.ReloadConfig(c)
		}
	})

	application.Run()
}
