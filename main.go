package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"recolor/batch"
	"recolor/parallel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

func main() {
	var cli batch.CLICmd
	kctx := kong.Parse(&cli,
		kong.Name("recolor"),
		kong.Description("Applies a themed color-grading preset to every image in the input folder and writes recolored and side-by-side comparison copies."),
	)

	pool := parallel.Start(0)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
