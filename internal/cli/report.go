package cli

import (
	"context"
	"os"

	"github.com/rinasm/journeymap"
	"github.com/rinasm/journeymap/internal/presentation/tui"
)

// RunReport writes the markdown journey report to stdout. On a terminal the
// report goes through glamour at the real column width; piped or --plain
// output stays raw markdown so it can be committed or rendered elsewhere.
func RunReport(opts Options, plain bool) error {
	logger := CreateLogger(opts.Debug)

	engine, err := CreateEngine(opts, logger)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	reporter := journeymap.Reporter{Output: os.Stdout}
	if !plain && IsTerminal(os.Stdout) {
		reporter.Renderer = tui.NewRenderer(terminalWidth(os.Stdout, 100))
	}

	return reporter.Run(sigCtx, engine)
}
