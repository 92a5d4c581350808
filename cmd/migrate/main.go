package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hafizmfadli/movie-catalog/internal/database"
	"github.com/hafizmfadli/movie-catalog/internal/env"
	"github.com/hafizmfadli/movie-catalog/internal/jsonlog"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	var (
		driver  = flag.String("db-driver", env.String("MOVIES_DB_DRIVER", database.DriverSQLite), "Database driver (sqlite3|postgres)")
		dsn     = flag.String("db-dsn", env.String("MOVIES_DB_DSN", "movies.db"), "Database DSN (SQLite file path or PostgreSQL URL)")
		command = flag.String("cmd", "up", "Migration command: up, down, status, version, reset")
	)
	flag.Parse()

	logger := jsonlog.NewLogger(os.Stdout, jsonlog.LevelInfo)

	db, err := database.Open(database.Config{Driver: *driver, DSN: *dsn})
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db.DB, *driver, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	switch *command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "status":
		err = migrator.Status()
	case "version":
		var version int64
		version, err = migrator.Version()
		if err == nil {
			fmt.Printf("Database version: %d\n", version)
		}
	case "reset":
		err = migrator.Reset()
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		fmt.Println("Available commands: up, down, status, version, reset")
		os.Exit(2)
	}

	if err != nil {
		logger.PrintFatal(err, map[string]string{"cmd": *command})
	}
}
