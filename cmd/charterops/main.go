package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aviodesk/charterops/internal/base"
	"github.com/aviodesk/charterops/internal/database"
	"github.com/aviodesk/charterops/internal/http_server"
	"github.com/aviodesk/charterops/internal/interfaces"
	"github.com/aviodesk/charterops/internal/interfaces/global"
	"github.com/joho/godotenv"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	// .env is optional, flags still win over the environment
	_ = godotenv.Load()
	flag.Parse()

	if path, ok := os.LookupEnv("CHARTEROPS_CONFIG"); ok && *global.ConfigFilePath == "config.json" {
		*global.ConfigFilePath = path
	}

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperations, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing database, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperations)

	http_server.StartHttpServer(applicationContent)
}
