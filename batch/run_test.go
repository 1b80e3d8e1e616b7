package batch

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"recolor/parallel"
	"recolor/preset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, seed uint8) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: seed + uint8(x*20),
				G: uint8(y * 40),
				B: 255 - seed,
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func testConfig(t *testing.T) Config {
	t.Helper()
	root := t.TempDir()
	conf := Config{
		Scan:    filepath.Join(root, "in"),
		Dest:    filepath.Join(root, "out"),
		Compare: filepath.Join(root, "cmp"),
		Preset:  preset.Legacy,
	}
	require.NoError(t, os.Mkdir(conf.Scan, 0o755))
	return conf
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func runSerial(t *testing.T, conf Config) (Result, error) {
	t.Helper()
	pool := parallel.Start(1)
	return Run(conf, pool.Do, pool.Wait)
}

func TestRunPartialFailureIsolation(t *testing.T) {
	conf := testConfig(t)
	writePNG(t, filepath.Join(conf.Scan, "a.png"), 10)
	writePNG(t, filepath.Join(conf.Scan, "b.png"), 90)
	writePNG(t, filepath.Join(conf.Scan, "c.png"), 170)
	require.NoError(t, os.WriteFile(filepath.Join(conf.Scan, "broken.jpg"), []byte("not an image"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(conf.Scan, "notes.txt"), []byte("ignored"), 0o644))

	res, err := runSerial(t, conf)
	require.NoError(t, err, "one corrupt file must not abort the batch")

	assert.Equal(t, 3, res.Processed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "broken.jpg", res.Failures[0].Name)
	assert.ErrorContains(t, res.Failures[0].Err, "decode")

	assert.ElementsMatch(t, []string{"a.png", "b.png", "c.png"}, listNames(t, conf.Dest))
	assert.ElementsMatch(t, []string{"a.png", "b.png", "c.png"}, listNames(t, conf.Compare))
}

func TestRunUnknownPresetWritesNothing(t *testing.T) {
	conf := testConfig(t)
	writePNG(t, filepath.Join(conf.Scan, "a.png"), 10)
	conf.Preset = preset.Preset(9)

	_, err := runSerial(t, conf)
	require.ErrorIs(t, err, preset.ErrUnknownPreset)

	_, err = os.Stat(conf.Dest)
	assert.True(t, os.IsNotExist(err), "destination folder should not be created")
	_, err = os.Stat(conf.Compare)
	assert.True(t, os.IsNotExist(err), "comparison folder should not be created")
}

func TestRunMissingScanFolder(t *testing.T) {
	conf := testConfig(t)
	conf.Scan = filepath.Join(conf.Scan, "does-not-exist")

	_, err := runSerial(t, conf)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unable to read folder")
}

func TestRunIdempotent(t *testing.T) {
	conf := testConfig(t)
	writePNG(t, filepath.Join(conf.Scan, "a.png"), 42)

	_, err := runSerial(t, conf)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(conf.Dest, "a.png"))
	require.NoError(t, err)
	firstCmp, err := os.ReadFile(filepath.Join(conf.Compare, "a.png"))
	require.NoError(t, err)

	_, err = runSerial(t, conf)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(conf.Dest, "a.png"))
	require.NoError(t, err)
	secondCmp, err := os.ReadFile(filepath.Join(conf.Compare, "a.png"))
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-run should overwrite with identical bytes")
	assert.Equal(t, firstCmp, secondCmp)
}

func TestRunParallel(t *testing.T) {
	conf := testConfig(t)
	names := []string{"a.png", "b.png", "c.png", "d.png", "e.png", "f.png"}
	for i, name := range names {
		writePNG(t, filepath.Join(conf.Scan, name), uint8(i*30))
	}

	pool := parallel.Start(4)
	res, err := Run(conf, pool.Do, pool.Wait)
	require.NoError(t, err)

	assert.Equal(t, len(names), res.Processed)
	assert.Empty(t, res.Failures)
	assert.ElementsMatch(t, names, listNames(t, conf.Dest))
}

func TestRunComparisonDimensions(t *testing.T) {
	conf := testConfig(t)
	writePNG(t, filepath.Join(conf.Scan, "a.png"), 0)

	_, err := runSerial(t, conf)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(conf.Compare, "a.png"))
	require.NoError(t, err)
	defer f.Close()

	imgConf, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 16, imgConf.Width, "comparison is source beside output")
	assert.Equal(t, 6, imgConf.Height)
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"photo.JPG", "photo.JPG"},
		{"photo.jpeg", "photo.jpeg"},
		{"photo.tif", "photo.tif"},
		{"photo.webp", "photo.png"},
		{"archive.tar.gif", "archive.tar.gif"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputName(tt.in), "outputName(%q)", tt.in)
	}
}

func TestCompareName(t *testing.T) {
	assert.Equal(t, "photo.png", compareName("photo.jpg"))
	assert.Equal(t, "photo.png", compareName("photo.png"))
	assert.Equal(t, "a.b.png", compareName("a.b.webp"))
}
