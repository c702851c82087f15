// tableimport stores the reference tables in Postgres so they can be used as
// "postgres:<table>" sources.
//
// Usage:
//
//	go run ./cmd/tableimport -dir csv
//	go run ./cmd/tableimport -dir csv -config config/slotview.yaml items flowers
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/udisondev/slotview/internal/config"
	"github.com/udisondev/slotview/internal/db"
	"github.com/udisondev/slotview/internal/source"
)

var allTables = []string{
	source.TableItems,
	source.TableRecipes,
	source.TableFlowers,
	source.TableVariations,
}

func main() {
	dir := flag.String("dir", "csv", "directory with <table>.csv files")
	cfgPath := flag.String("config", "config/slotview.yaml", "config file with database settings")
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = allTables
	}

	if err := run(context.Background(), *cfgPath, *dir, names); err != nil {
		fmt.Fprintf(os.Stderr, "[tableimport] FAILED: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, dir string, names []string) error {
	cfg, err := config.LoadViewer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dsn := cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return err
	}

	database, err := db.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	repo := db.NewTableRepository(database.Pool())

	totalStart := time.Now()
	for _, name := range names {
		start := time.Now()
		src := &source.FileSource{Path: filepath.Join(dir, name+".csv")}

		rows, err := src.Rows(ctx)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := repo.Replace(ctx, name, rows); err != nil {
			return fmt.Errorf("importing %s: %w", name, err)
		}
		fmt.Printf("[tableimport] %s: %d rows (%s)\n", name, len(rows), time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("[tableimport] all done (%s)\n", time.Since(totalStart).Round(time.Millisecond))

	return nil
}
