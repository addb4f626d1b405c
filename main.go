// file: main.go
package main

import (
	"AWDCTF/database"
	"AWDCTF/routes"
	"AWDCTF/services"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// 加载 .env（不覆盖已设置的环境变量）
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	database.Connect()
	if os.Getenv("AUTO_MIGRATE") == "1" {
		database.MigrateTables()
	}
	database.InitRedis()

	// 题目类型注册只在启动时做一次，重复调用为 no-op
	services.RegisterChallengeTypes()

	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
