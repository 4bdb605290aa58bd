package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arminhz/taskban/internal/cli"
	"github.com/arminhz/taskban/internal/config"
	"github.com/arminhz/taskban/internal/logging"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/arminhz/taskban/internal/services"
)

const usage = `Usage: taskadmin <action> [flags]

Actions:
  create-admin --username <name> --password <password>
  menu
  purge-data
`

func main() {
	cfg := config.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch action := os.Args[1]; action {
	case "create-admin":
		fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
		username := fs.String("username", "", "username for the system administrator")
		password := fs.String("password", "", "password for the system administrator")
		_ = fs.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "Error: Username and password are required for creating an administrator.")
			os.Exit(2)
		}
		admin := cli.NewAdmin(os.Stdin, os.Stdout, nil)
		if err := admin.CreateAdmin(cfg.AdminFile, *username, *password); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "purge-data":
		admin := cli.NewAdmin(os.Stdin, os.Stdout, nil)
		if err := admin.PurgeData(cfg.DataFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "menu":
		logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
		session, err := repository.Open(cfg.DataFile)
		if err != nil {
			log.Fatalf("Failed to load data file: %v", err)
		}
		auth := services.NewAuthService(session.Users(), session, logger)
		admin := cli.NewAdmin(os.Stdin, os.Stdout, auth)
		if err := admin.Run(); err != nil {
			log.Fatalf("Unexpected error: %v", err)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown action %q\n%s", action, usage)
		os.Exit(2)
	}
}
