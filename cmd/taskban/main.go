package main

import (
	"log"
	"os"

	"github.com/arminhz/taskban/internal/cli"
	"github.com/arminhz/taskban/internal/config"
	"github.com/arminhz/taskban/internal/logging"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/arminhz/taskban/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// Load the data file into the session
	session, err := repository.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load data file: %v", err)
	}

	auth := services.NewAuthService(session.Users(), session, logger)
	projects := services.NewProjectService(session.Projects(), session.Users(), session, logger)
	tasks := services.NewTaskService(session.Projects(), session.Users(), session, logger)

	app := cli.New(os.Stdin, os.Stdout, auth, projects, tasks)
	if err := app.Run(); err != nil {
		log.Fatalf("Unexpected error: %v", err)
	}
}
