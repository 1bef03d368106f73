package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/bukubiz/backend/internal/infrastructure/config"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "migrations directory")
		down    = flag.Bool("down", false, "roll back one migration instead of migrating up")
		steps   = flag.Int("steps", 0, "number of migrations to apply (0 = all)")
		version = flag.Bool("version", false, "print current migration version and exit")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.DBName, cfg.Database.SSLMode,
	)

	m, err := migrate.New("file://"+*dir, dsn)
	if err != nil {
		fail("failed to initialize migrate: %v", err)
	}
	defer m.Close()

	if *version {
		v, dirty, err := m.Version()
		if err != nil {
			fail("failed to read version: %v", err)
		}
		fmt.Printf("version=%d dirty=%v\n", v, dirty)
		return
	}

	switch {
	case *down:
		err = m.Steps(-1)
	case *steps > 0:
		err = m.Steps(*steps)
	default:
		err = m.Up()
	}

	if err != nil && err != migrate.ErrNoChange {
		fail("migration failed: %v", err)
	}
	fmt.Println("migrations applied")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
