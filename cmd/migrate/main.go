package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/siteops/backend/internal/infrastructure/config"
	"github.com/siteops/backend/internal/infrastructure/logger"
	"github.com/siteops/backend/internal/infrastructure/migration"
)

func main() {
	var (
		migrationsPath = flag.String("path", "migrations", "path to migrations directory")
		logLevel       = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	// create and list work on the filesystem only.
	switch command {
	case "create":
		if len(args) < 2 {
			log.Error("Usage: migrate create <name> [description]")
			os.Exit(1)
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		mf, err := migration.CreateMigration(*migrationsPath, args[1], description)
		if err != nil {
			log.Error("Failed to create migration", zap.Error(err))
			os.Exit(1)
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath),
		)
		return

	case "list":
		migrations, err := migration.ListMigrations(*migrationsPath)
		if err != nil {
			log.Error("Failed to list migrations", zap.Error(err))
			os.Exit(1)
		}
		if len(migrations) == 0 {
			log.Info("No migrations found", zap.String("path", *migrationsPath))
			return
		}
		for _, m := range migrations {
			fmt.Println(m)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	m, err := migration.New(db, *migrationsPath, log)
	if err != nil {
		log.Error("Failed to initialize migrator", zap.Error(err))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()

	case "down":
		err = m.Down()

	case "step":
		if len(args) < 2 {
			log.Error("Usage: migrate step <n>")
			os.Exit(1)
		}
		var n int
		n, err = strconv.Atoi(args[1])
		if err != nil {
			log.Error("Invalid step count", zap.String("value", args[1]))
			os.Exit(1)
		}
		err = m.Steps(n)

	case "goto":
		if len(args) < 2 {
			log.Error("Usage: migrate goto <version>")
			os.Exit(1)
		}
		var v uint64
		v, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			log.Error("Invalid version", zap.String("value", args[1]))
			os.Exit(1)
		}
		err = m.GoTo(uint(v))

	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Error("Failed to read version", zap.Error(verr))
			os.Exit(1)
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return

	case "force":
		if len(args) < 2 {
			log.Error("Usage: migrate force <version>")
			os.Exit(1)
		}
		var v int
		v, err = strconv.Atoi(args[1])
		if err != nil {
			log.Error("Invalid version", zap.String("value", args[1]))
			os.Exit(1)
		}
		err = m.Force(v)

	case "drop":
		if len(args) < 2 || args[1] != "-confirm" {
			log.Error("drop destroys all data; run: migrate drop -confirm")
			os.Exit(1)
		}
		err = m.Drop()

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Error("Migration command failed",
			zap.String("command", command),
			zap.Error(err),
		)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command> [args]

Commands:
  create <name> [description]   Create a new up/down migration pair
  list                          List migrations in the migrations directory
  up                            Apply all pending migrations
  down                          Roll back all migrations
  step <n>                      Apply n migrations (negative rolls back)
  goto <version>                Migrate to a specific version
  version                       Show the current migration version
  force <version>               Set the version without running SQL
  drop -confirm                 Drop everything in the database

Flags:
  -path string        path to migrations directory (default "migrations")
  -log-level string   log level (default "info")`)
}
