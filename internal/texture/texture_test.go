package texture

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func waitLoads(t *testing.T, l *Library) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx))
}

func TestFallbacksWithoutPaths(t *testing.T) {
	l := NewLibrary(nil, nil)
	l.LoadAll(nil)
	waitLoads(t, l)

	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, l.Resolve(Metal).NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{80, 80, 80, 255}, l.Resolve(Floor).NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{100, 150, 220, 255}, l.Resolve(Skybox).NRGBAAt(0, 0))
	assert.Equal(t, 256, l.Resolve(Head).Bounds().Dx())
}

func TestLoadReplacesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metal.png")
	writePNG(t, path, 4, 4, color.NRGBA{10, 20, 30, 255})

	l := NewLibrary(nil, nil)
	assert.Equal(t, Placeholder, l.Resolve(Metal).NRGBAAt(0, 0))

	l.Load(Metal, path)
	waitLoads(t, l)
	img := l.Resolve(Metal)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(3, 3))
	assert.True(t, l.Repeats(Metal))
}

func TestLoadImageDecodesByExtension(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "a.png")
	writePNG(t, pngPath, 4, 2, color.NRGBA{10, 20, 30, 255})

	img, err := LoadImage(pngPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(3, 1))

	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 100, 50, 255
	}
	jpgPath := filepath.Join(dir, "b.jpg")
	f, err := os.Create(jpgPath)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, src, &jpeg.Options{Quality: 95}))
	require.NoError(t, f.Close())

	img, err = LoadImage(jpgPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	got := img.NRGBAAt(4, 4)
	assert.InDelta(t, 200, got.R, 4)
	assert.InDelta(t, 100, got.G, 4)
	assert.InDelta(t, 50, got.B, 4)
	assert.Equal(t, uint8(255), got.A)

	_, err = LoadImage(filepath.Join(dir, "c.psd"))
	assert.ErrorContains(t, err, "unsupported")
}

func TestFailedLoadKeepsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))

	l := NewLibrary(nil, nil)
	l.Load(Head, bad)
	l.Load(Skybox, filepath.Join(dir, "missing.jpg"))
	waitLoads(t, l)

	assert.Equal(t, Placeholder, l.Resolve(Head).NRGBAAt(0, 0))
	assert.Equal(t, Placeholder, l.Resolve(Skybox).NRGBAAt(0, 0))
}

func TestNonPowerOfTwoClampsExceptFloor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.png")
	writePNG(t, path, 3, 5, color.NRGBA{1, 2, 3, 255})

	l := NewLibrary(nil, nil)
	l.Load(Metal, path)
	l.Load(Floor, path)
	waitLoads(t, l)

	assert.False(t, l.Repeats(Metal))
	assert.True(t, l.Repeats(Floor))
}

func TestIndexResolvesSlotByStem(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "textures")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writePNG(t, filepath.Join(sub, "Floor.png"), 2, 2, color.NRGBA{9, 9, 9, 255})
	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644))

	idx := BuildIndex(dir)
	assert.Equal(t, 1, idx.Len())
	p, ok := idx.ResolvePath(`textures\floor.jpg`)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(sub, "Floor.png"), p)

	l := NewLibrary(idx, nil)
	l.LoadAll(map[string]string{})
	waitLoads(t, l)
	assert.Equal(t, color.NRGBA{9, 9, 9, 255}, l.Resolve(Floor).NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, l.Resolve(Metal).NRGBAAt(0, 0))
}

func TestProceduralHead(t *testing.T) {
	img := ProceduralHead(256)
	assert.Equal(t, skin, img.NRGBAAt(10, 10))
	assert.Equal(t, eye, img.NRGBAAt(90, 102))
	assert.Equal(t, mouth, img.NRGBAAt(128, 154))
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
	assert.True(t, IsPowerOfTwo(image.NewNRGBA(image.Rect(0, 0, 256, 64))))
	assert.False(t, IsPowerOfTwo(image.NewNRGBA(image.Rect(0, 0, 100, 64))))
}

func TestUnknownSlotResolvesPlaceholder(t *testing.T) {
	l := NewLibrary(nil, nil)
	l.Load("cape", "x.png")
	waitLoads(t, l)
	assert.Equal(t, Placeholder, l.Resolve("cape").NRGBAAt(0, 0))
}
