package main

import (
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
