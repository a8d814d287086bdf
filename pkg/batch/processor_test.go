package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/pixmask/pkg/imageio"
	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string) *pixmask.PixelBuffer {
	t.Helper()
	buf := pixmask.NewPixelBuffer(3, 2)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i*31 + 7)
	}
	require.NoError(t, imageio.WriteFile(path, buf, imageio.Options{}))
	return buf
}

func TestProcessor_RoundTrip(t *testing.T) {
	var (
		dir     = t.TempDir()
		outDir  = t.TempDir()
		pngPath = filepath.Join(dir, "a.png")
		bmpPath = filepath.Join(dir, "b.bmp")
		bad     = filepath.Join(dir, "c.png")
		key     = pixmask.Key(5)
		calls   [][2]int
	)
	pngBuf := writeImage(t, pngPath)
	bmpBuf := writeImage(t, bmpPath)
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	log, hook := test.NewNullLogger()
	proc, err := NewProcessor(
		OutputDir(outDir),
		Logger(log),
		OnProgress(func(done, total int) {
			calls = append(calls, [2]int{done, total})
		}),
	)
	require.NoError(t, err)

	report, err := proc.Run(context.Background(), key, Encrypt, []string{pngPath, bad, bmpPath})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, 2, report.Succeeded())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, bad, failed[0].Input)
	assert.ErrorIs(t, failed[0].Err, imageio.ErrDecode)
	assert.ErrorIs(t, report.Err(), imageio.ErrDecode)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
	assert.NotEmpty(t, hook.Entries)

	_, err = os.Stat(filepath.Join(outDir, "c_encrypted.png"))
	assert.True(t, os.IsNotExist(err))

	encPNG := filepath.Join(outDir, "a_encrypted.png")
	masked, err := imageio.ReadFile(encPNG)
	require.NoError(t, err)
	assert.True(t, pixmask.Transform(pngBuf, key).Equal(masked.Pixels))

	report, err = proc.Run(context.Background(), key, Decrypt, []string{encPNG, filepath.Join(outDir, "b_encrypted.bmp")})
	require.NoError(t, err)
	assert.NoError(t, report.Err())

	restored, err := imageio.ReadFile(filepath.Join(outDir, "a_encrypted_decrypted.png"))
	require.NoError(t, err)
	assert.True(t, pngBuf.Equal(restored.Pixels))

	restored, err = imageio.ReadFile(filepath.Join(outDir, "b_encrypted_decrypted.bmp"))
	require.NoError(t, err)
	assert.True(t, bmpBuf.Equal(restored.Pixels))
}

func TestProcessor_NextToInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "img.tiff")
	writeImage(t, in)

	proc, err := NewProcessor()
	require.NoError(t, err)
	report, err := proc.Run(context.Background(), 1, Encrypt, []string{in})
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	assert.FileExists(t, filepath.Join(dir, "img_encrypted.tiff"))
}

func TestProcessor_WarnsAlreadyProcessed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "img_encrypted.png")
	writeImage(t, in)

	log, hook := test.NewNullLogger()
	proc, err := NewProcessor(Logger(log))
	require.NoError(t, err)
	report, err := proc.Run(context.Background(), 9, Encrypt, []string{in})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Warned)
	assert.NoError(t, report.Results[0].Err)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestProcessor_Run_Neg(t *testing.T) {
	proc, err := NewProcessor()
	require.NoError(t, err)

	_, err = proc.Run(context.Background(), 1, Encrypt, nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := proc.Run(ctx, 1, Encrypt, []string{"a.png"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestNewProcessor_Neg(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := map[string]ProcessorOpt{
		"Missing output folder": OutputDir(filepath.Join(dir, "missing")),
		"Output folder is file": OutputDir(file),
		"Quality too low":       JPEGQuality(0),
		"Quality too high":      JPEGQuality(101),
		"Nil logger":            Logger(nil),
	}
	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewProcessor(opt)
			assert.Error(t, err)
		})
	}
}

func TestProcessFile_UnsupportedOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeImage(t, in)

	err := ProcessFile(in, filepath.Join(dir, "out.webp"), 3, imageio.Options{})
	assert.ErrorIs(t, err, imageio.ErrEncode)
	assert.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
	assert.NoFileExists(t, filepath.Join(dir, "out.webp"))
}
