package main

import (
	"context"
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

//go:embed seeds/*.json
var seedFiles embed.FS

func main() {
	var (
		dsn       = flag.String("dsn", "", "Database connection string")
		all       = flag.Bool("all", false, "Run all seeders")
		templates = flag.Bool("templates", false, "Seed field placement templates")
		file      = flag.String("file", "", "External seed file (overrides embedded)")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *templates:
		if *file != "" {
			if seeder, ok := getSeeder("templates"); ok {
				seeder.(*TemplateSeeder).SetFile(*file)
			}
		}
		if err := runSeeder(ctx, db, "templates"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("templates seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-templates] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
