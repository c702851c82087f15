// slotview decodes inventory memory-patch codes into a named slot grid.
//
// Usage:
//
//	go run ./cmd/slotview codes.txt
//	go run ./cmd/slotview -page 2 -lang eng < codes.txt
//	go run ./cmd/slotview -find PltCeder
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/udisondev/slotview/internal/config"
	"github.com/udisondev/slotview/internal/db"
	"github.com/udisondev/slotview/internal/decoder"
	"github.com/udisondev/slotview/internal/imagename"
	"github.com/udisondev/slotview/internal/layout"
	"github.com/udisondev/slotview/internal/source"
	"github.com/udisondev/slotview/internal/table"
	"github.com/udisondev/slotview/internal/viewer"
)

const ConfigPath = "config/slotview.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("interrupted", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("slotview", flag.ContinueOnError)
	cfgPath := flags.String("config", "", "config file (default "+ConfigPath+" or $SLOTVIEW_CONFIG)")
	page := flags.Int("page", 1, "page to decode (1-based)")
	lang := flags.String("lang", "", "display-language column (overrides config)")
	find := flags.String("find", "", "print catalog names close to this iName and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path := *cfgPath
	if path == "" {
		path = ConfigPath
		if p := os.Getenv("SLOTVIEW_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.LoadViewer(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *lang != "" {
		cfg.Language = *lang
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	set, closeDB, err := openSources(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	tables, report := source.LoadAll(ctx, cfg.LoadTimeout, set)
	cat := tables.Catalog()
	warning := report.Warning(cat)
	if warning != "" {
		slog.Warn("reference data incomplete", "warning", warning, "failures", len(report.Failures))
	}

	if *find != "" {
		for _, s := range cat.Suggest(*find, 10) {
			fmt.Fprintf(stdout, "%s\t(distance %d)\n", s.IName, s.Distance)
		}
		return nil
	}

	store, err := imagename.NewAssetStore(cfg.Assets.Dir, cfg.Assets.Lazy)
	if err != nil {
		return fmt.Errorf("creating asset store: %w", err)
	}

	text, err := readInput(flags.Args(), stdin)
	if err != nil {
		return err
	}

	dec := decoder.New(layout.Build(cfg.Layout), cat)
	sess := viewer.NewSession(dec, store, cfg.Language, warning)
	view, _ := sess.Parse(text, *page-1)

	printView(stdout, view)
	return nil
}

// openSources resolves the configured table locations. A database connection is opened
// only when a location needs it; the returned func closes it.
func openSources(ctx context.Context, cfg config.Viewer) (source.Set, func(), error) {
	locations := []string{cfg.Sources.Items, cfg.Sources.Recipes, cfg.Sources.Flowers, cfg.Sources.Variations}

	var querier source.RowQuerier
	closeDB := func() {}
	for _, loc := range locations {
		if !strings.HasPrefix(loc, source.PostgresPrefix) {
			continue
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			// Postgres tables become failed sources, the rest still load
			slog.Warn("database unavailable", "error", err)
			break
		}
		querier = db.NewTableRepository(database.Pool())
		closeDB = database.Close
		break
	}

	srcs := make([]source.Source, len(locations))
	for i, loc := range locations {
		src, err := source.Open(loc, querier)
		if err != nil {
			// reported by LoadAll like any other failed table
			srcs[i] = brokenSource{location: loc, err: err}
			continue
		}
		srcs[i] = src
	}

	return source.Set{
		Items:      srcs[0],
		Recipes:    srcs[1],
		Flowers:    srcs[2],
		Variations: srcs[3],
	}, closeDB, nil
}

// brokenSource stands in for a location that could not be opened.
type brokenSource struct {
	location string
	err      error
}

func (s brokenSource) Name() string { return s.location }

func (s brokenSource) Rows(context.Context) ([]table.Row, error) { return nil, s.err }

func readInput(args []string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("reading codes: %w", err)
	}
	return string(data), nil
}

func printView(w io.Writer, v viewer.View) {
	if len(v.Pages) > 1 {
		fmt.Fprintf(w, "[%s] (%d/%d)\n", v.Pages[v.Page].Title, v.Page+1, len(v.Pages))
	}
	for i, c := range v.Cells {
		if c.Entry == nil {
			fmt.Fprintf(w, "#%-3d 空\n", i+1)
			continue
		}
		e := c.Entry
		name := e.DisplayName
		if c.Badge != "" {
			name += " [DIY]"
		}
		fields := []string{name, e.IDLine()}
		if line := e.ValueLine(); line != "" {
			fields = append(fields, line)
		}
		fields = append(fields, e.Slot.String(), c.Image)
		fmt.Fprintf(w, "#%-3d %s\n", i+1, strings.Join(fields, "  "))
	}
	fmt.Fprintln(w, v.Stats)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
