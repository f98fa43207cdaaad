package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"mozi/proj/internal/config"
)

func main() {
	var cfgPath, migrationsPath, direction string
	flag.StringVar(&cfgPath, "config", "config/local.yml", "path to config file")
	flag.StringVar(&migrationsPath, "path", "migrations", "path to migration files")
	flag.StringVar(&direction, "direction", "up", "migration direction: up or down")
	flag.Parse()
	cfg := config.MustLoad(cfgPath)

	// the pgx driver registers itself under its own url scheme
	dsn := strings.Replace(cfg.DB.Dsn, "postgres://", "pgx5://", 1)
	migrator, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init migrator: %s\n", err)
		os.Exit(1)
	}
	defer migrator.Close()

	switch direction {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q, expected up or down\n", direction)
		os.Exit(1)
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("database is up to date")
			return
		}
		fmt.Fprintf(os.Stderr, "migration failed: %s\n", err)
		os.Exit(1)
	}
	fmt.Println("migrations successfully applied")
}
