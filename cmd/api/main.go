package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/database"
	"github.com/hafizmfadli/movie-catalog/internal/env"
	"github.com/hafizmfadli/movie-catalog/internal/jsonlog"
	"github.com/hafizmfadli/movie-catalog/internal/metrics"
	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
)

// Application version number
const version = "1.0.0"

// config struct hold all the configuration settings for out application.
type config struct {

	// the network port that we want the server to listen on
	port int

	// current operating environment for the application (development, staging, production)
	env string

	// db struct field hold the configuration settings for our database connection pool.
	db struct {
		driver       string
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  string
		// apply pending migrations before serving
		migrate bool
	}

	// limiter struct containing fields for the requests per second and burst
	// values, and a boolean field which we can use to enable/disable rate limiting
	// altogether
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
}

// application struct hold the dependencies for our HTTP handlers, helpers, and middleware.
type application struct {
	config  config
	logger  *jsonlog.Logger
	models  data.Models
	metrics *metrics.Metrics
}

func main() {

	var cfg config

	// Initialize a new jsonlog.Logger which writes any messages *at or above* the INFO
	// severity level to the standard out stream
	logger := jsonlog.NewLogger(os.Stdout, jsonlog.LevelInfo)

	// Flag defaults come from the environment, which may be populated from a
	// .env file in the working directory.
	port, err := env.Int("PORT", 4000)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	flag.IntVar(&cfg.port, "port", port, "API server port")
	flag.StringVar(&cfg.env, "env", env.String("MOVIES_ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&cfg.db.driver, "db-driver", env.String("MOVIES_DB_DRIVER", database.DriverSQLite), "Database driver (sqlite3|postgres)")
	flag.StringVar(&cfg.db.dsn, "db-dsn", env.String("MOVIES_DB_DSN", "movies.db"), "Database DSN (SQLite file path or PostgreSQL URL)")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "Database max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "Database max idle connections")
	flag.StringVar(&cfg.db.maxIdleTime, "db-max-idle-time", "15m", "Database max connection idle time")
	flag.BoolVar(&cfg.db.migrate, "db-migrate", true, "Apply pending database migrations at startup")
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if !validator.In(cfg.db.driver, database.DriverSQLite, database.DriverPostgres) {
		logger.PrintFatal(fmt.Errorf("unsupported database driver %q", cfg.db.driver), nil)
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()

	logger.PrintInfo("database connection pool established", map[string]string{
		"driver": cfg.db.driver,
	})

	if cfg.db.migrate {
		migrator, err := database.NewMigrator(db.DB, cfg.db.driver, logger)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
		if err := migrator.Up(); err != nil {
			logger.PrintFatal(err, nil)
		}
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		models:  data.NewModels(db),
		metrics: metrics.New(),
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// openDB returns a sqlx.DB connection pool
func openDB(cfg config) (*sqlx.DB, error) {
	duration, err := time.ParseDuration(cfg.db.maxIdleTime)
	if err != nil {
		return nil, err
	}

	return database.Open(database.Config{
		Driver:       cfg.db.driver,
		DSN:          cfg.db.dsn,
		MaxOpenConns: cfg.db.maxOpenConns,
		MaxIdleConns: cfg.db.maxIdleConns,
		MaxIdleTime:  duration,
	})
}
