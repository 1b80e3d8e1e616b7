// Package batch drives the recoloring run: it scans the input folder,
// grades every image with the selected preset and writes the recolored
// output plus a side-by-side comparison. One bad file never aborts the
// batch; configuration errors do.
package batch

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"recolor/grade"
	"recolor/parallel"
	"recolor/preset"
)

type Config struct {
	Scan    string
	Dest    string
	Compare string
	Preset  preset.Preset
}

type Failure struct {
	Name string
	Err  error
}

type Result struct {
	Processed int
	Failures  []Failure
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Run processes every recognized image under conf.Scan. The returned error
// is reserved for configuration failures (unknown preset, unreadable input
// folder); per-file decode and write failures are collected in the Result
// and the batch keeps going.
func Run(conf Config, worker parallel.WorkerFunc, wait parallel.WaitFunc) (Result, error) {
	grader, err := grade.New(conf.Preset)
	if err != nil {
		return Result{}, err
	}

	files, err := os.ReadDir(conf.Scan)
	if err != nil {
		return Result{}, fmt.Errorf("unable to read folder %q: %w", conf.Scan, err)
	}

	if err := os.MkdirAll(conf.Dest, 0o755); err != nil {
		return Result{}, fmt.Errorf("unable to create destination folder %q: %w", conf.Dest, err)
	}
	if err := os.MkdirAll(conf.Compare, 0o755); err != nil {
		return Result{}, fmt.Errorf("unable to create comparison folder %q: %w", conf.Compare, err)
	}

	var processed atomic.Uint64
	var mu sync.Mutex
	var failures []Failure
	for _, file := range files {
		if file.IsDir() || !imageExts[strings.ToLower(filepath.Ext(file.Name()))] {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				if err := processFile(grader, conf, fileName); err != nil {
					slog.Error("could not process image",
						"file", filepath.Join(conf.Scan, fileName), "error", err)
					mu.Lock()
					failures = append(failures, Failure{Name: fileName, Err: err})
					mu.Unlock()
					return
				}
				processed.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	sort.Slice(failures, func(i, j int) bool { return failures[i].Name < failures[j].Name })
	return Result{Processed: int(processed.Load()), Failures: failures}, nil
}

func processFile(grader *grade.Grader, conf Config, fileName string) error {
	src, err := decode(filepath.Join(conf.Scan, fileName))
	if err != nil {
		return err
	}

	graded := grader.Apply(src)

	if err := save(graded, conf.Dest, outputName(fileName)); err != nil {
		return err
	}

	return save(grade.Compare(src, graded), conf.Compare, compareName(fileName))
}

func decode(path string) (image.Image, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return img, nil
}
