package batch

import (
	"log/slog"

	"recolor/parallel"
	"recolor/preset"

	"github.com/alecthomas/kong"
)

// Folder layout matches the original tool and is not configurable from the
// command line.
const (
	inputDir   = "input_images"
	outputDir  = "output_images"
	compareDir = "input_output_compare_images"
)

type CLICmd struct {
	Preset string `help:"Color-grading preset to apply (legacy, ares)." required:""`

	Selected preset.Preset `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	p, err := preset.Parse(c.Preset)
	if err != nil {
		return err
	}
	c.Selected = p
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	conf := Config{
		Scan:    inputDir,
		Dest:    outputDir,
		Compare: compareDir,
		Preset:  c.Selected,
	}

	slog.Info("running", "preset", conf.Preset, "scan", conf.Scan)

	res, err := Run(conf, worker, wait)
	if err != nil {
		return err
	}

	for _, f := range res.Failures {
		slog.Warn("skipped", "file", f.Name, "reason", f.Err)
	}
	slog.Info("stats", "processed", res.Processed, "failed", len(res.Failures),
		"total", res.Processed+len(res.Failures))

	// per-file failures were already reported, the batch itself completed
	return nil
}
