package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/slotview/internal/catalog"
	"github.com/udisondev/slotview/internal/table"
)

// Warnings shown next to decode statistics.
const (
	WarnNoData  = "CSV 未加载：请确认 csv/ 目录可访问。"
	WarnTimeout = "CSV 加载超时，请检查是否能访问 csv/ 目录。"
	WarnFailed  = "CSV 加载失败，请检查 csv/ 路径。"
)

// Table names, as used in logs and the reference_rows table.
const (
	TableItems      = "items"
	TableRecipes    = "recipes"
	TableFlowers    = "flowers"
	TableVariations = "variations"
)

// Set is the four reference-table sources. A nil source yields no rows.
type Set struct {
	Items      Source
	Recipes    Source
	Flowers    Source
	Variations Source
}

// Tables holds loaded rows. A table whose source failed is nil.
type Tables struct {
	Items      []table.Row
	Recipes    []table.Row
	Flowers    []table.Row
	Variations []table.Row
}

// Catalog builds the reference catalog from the loaded rows.
func (t Tables) Catalog() *catalog.Catalog {
	return catalog.Load(t.Items, t.Recipes, t.Flowers, t.Variations)
}

// Failure records one source that could not be loaded.
type Failure struct {
	Table  string
	Source string
	Err    error
}

// Optional returns true for tables whose absence is not worth a warning.
func (f Failure) Optional() bool {
	return f.Table == TableVariations
}

// Report lists the sources that failed during LoadAll.
type Report struct {
	Failures []Failure
}

// OK returns true if every source loaded.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Warning returns the message to surface for this load, "" when there is nothing to say.
// An empty catalog always yields WarnNoData; otherwise a failed required table yields
// WarnTimeout if any such failure timed out, else WarnFailed.
func (r Report) Warning(c *catalog.Catalog) string {
	if c == nil || c.Empty() {
		return WarnNoData
	}

	failed, timedOut := false, false
	for _, f := range r.Failures {
		if f.Optional() {
			continue
		}
		failed = true
		if errors.Is(f.Err, ErrTimeout) {
			timedOut = true
		}
	}

	switch {
	case timedOut:
		return WarnTimeout
	case failed:
		return WarnFailed
	default:
		return ""
	}
}

// LoadAll loads the four tables concurrently. Each source gets its own timeout and
// fails independently: a failed source leaves its table nil and is recorded in the
// report. LoadAll itself never fails.
func LoadAll(ctx context.Context, timeout time.Duration, set Set) (Tables, Report) {
	type job struct {
		name string
		src  Source
		dst  *[]table.Row
	}

	var tables Tables
	jobs := []job{
		{TableItems, set.Items, &tables.Items},
		{TableRecipes, set.Recipes, &tables.Recipes},
		{TableFlowers, set.Flowers, &tables.Flowers},
		{TableVariations, set.Variations, &tables.Variations},
	}

	failures := make([]*Failure, len(jobs))

	var g errgroup.Group
	for i, j := range jobs {
		if j.src == nil {
			continue
		}
		g.Go(func() error {
			rows, err := loadOne(ctx, timeout, j.src)
			if err != nil {
				slog.Warn("reference table load failed",
					"table", j.name,
					"source", j.src.Name(),
					"error", err)
				failures[i] = &Failure{Table: j.name, Source: j.src.Name(), Err: err}
				return nil
			}
			*j.dst = rows
			slog.Info("loaded reference table", "table", j.name, "source", j.src.Name(), "count", len(rows))
			return nil
		})
	}
	_ = g.Wait() // goroutines report through failures

	var report Report
	for _, f := range failures {
		if f != nil {
			report.Failures = append(report.Failures, *f)
		}
	}

	return tables, report
}

// loadOne abandons the source when the timeout expires, even if it ignores ctx.
func loadOne(ctx context.Context, timeout time.Duration, src Source) ([]table.Row, error) {
	if timeout <= 0 {
		return src.Rows(ctx)
	}

	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		rows []table.Row
		err  error
	}
	done := make(chan result, 1)
	go func() {
		rows, err := src.Rows(lctx)
		done <- result{rows: rows, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(lctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, src.Name())
		}
		return r.rows, r.err
	case <-lctx.Done():
		if errors.Is(lctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, src.Name())
		}
		return nil, lctx.Err()
	}
}
