package batch

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var encoders = map[string]func(*os.File, image.Image) error{
	".gif": func(f *os.File, img image.Image) error {
		return gif.Encode(f, img, nil)
	},
	".jpg": func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	},
	".png": func(f *os.File, img image.Image) error {
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(f, img)
	},
	".bmp": func(f *os.File, img image.Image) error {
		return bmp.Encode(f, img)
	},
	".tiff": func(f *os.File, img image.Image) error {
		return tiff.Encode(f, img, nil)
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
	encoders[".tif"] = encoders[".tiff"]
}

// outputName keeps the source base filename, swapping the extension to .png
// for formats that can be decoded but not encoded.
func outputName(srcName string) string {
	ext := strings.ToLower(filepath.Ext(srcName))
	if encoders[ext] != nil {
		return srcName
	}
	return srcName[:len(srcName)-len(ext)] + ".png"
}

// compareName names the comparison image after the source; comparisons are
// always PNG.
func compareName(srcName string) string {
	ext := filepath.Ext(srcName)
	return srcName[:len(srcName)-len(ext)] + ".png"
}

// save encodes img into destDir under destName, going through a temporary
// file so an existing output is only replaced by a complete write.
func save(img image.Image, destDir, destName string) (err error) {
	encode := encoders[strings.ToLower(filepath.Ext(destName))]
	if encode == nil {
		return fmt.Errorf("unsupported output format: %s", destName)
	}

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if !canRename {
			os.Remove(outFile.Name())
			return
		}
		if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
			err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
		}
	}()

	if err = encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", destName, err)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
