package journeymap

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rinasm/journeymap/pkg/render"
)

// Reporter writes a journey map report using provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, TUI, etc).
type Reporter struct {
	Output   io.Writer
	Renderer ContentRenderer
}

// ContentRenderer transforms the report before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the
// core package.
type ContentRenderer func(string) (string, error)

// Run builds the current graph and writes the full markdown report.
func (r *Reporter) Run(ctx context.Context, engine *Engine) error {
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	g, err := engine.Snapshot(ctx)
	if err != nil {
		return err
	}

	report := render.Markdown(g)
	if r.Renderer != nil {
		// Renderer failures fall back to the plain markdown.
		if rendered, rerr := r.Renderer(report); rerr == nil {
			report = rendered
		}
	}

	_, err = fmt.Fprintln(r.Output, strings.TrimSpace(report))
	return err
}
