package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"imujkanovic/expense-tracker/cmd/add"
	"imujkanovic/expense-tracker/cmd/budget"
	"imujkanovic/expense-tracker/cmd/categories"
	"imujkanovic/expense-tracker/cmd/history"
	"imujkanovic/expense-tracker/cmd/interactive"
	"imujkanovic/expense-tracker/cmd/report"
	"imujkanovic/expense-tracker/cmd/reset"
	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/cmd/search"
	"imujkanovic/expense-tracker/cmd/summary"
	"imujkanovic/expense-tracker/cmd/top"
	"imujkanovic/expense-tracker/cmd/total"
	"imujkanovic/expense-tracker/internal/logging"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is used
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	// 3. Initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(total.Cmd)
	root.Cmd.AddCommand(top.Cmd)
	root.Cmd.AddCommand(history.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
	root.Cmd.AddCommand(interactive.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
