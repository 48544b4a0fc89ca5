package portrait

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portrait.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

var white = MustHex("#FFFFFF")

func TestFrameOpacityZeroIsBackdrop(t *testing.T) {
	p := New(solid(8, 8, color.RGBA{R: 0xff, A: 0xff}))

	frame := p.Frame(4, 2, 0, white)
	require.Len(t, frame, 4)
	for _, line := range frame {
		require.Len(t, line, 4)
		for _, c := range line {
			assert.Equal(t, "#ffffff", c.Hex())
		}
	}
}

func TestFrameOpacityOneIsSource(t *testing.T) {
	p := New(solid(8, 8, color.RGBA{R: 0xff, A: 0xff}))

	for _, line := range p.Frame(4, 2, 1, white) {
		for _, c := range line {
			assert.Equal(t, "#ff0000", c.Hex())
		}
	}
}

func TestFrameHalfOpacityBlends(t *testing.T) {
	p := New(solid(8, 8, color.RGBA{A: 0xff}))

	c := p.Frame(2, 1, 0.5, white)[0][0]
	r, g, b := c.RGB255()
	assert.InDelta(t, 127, int(r), 1)
	assert.InDelta(t, 127, int(g), 1)
	assert.InDelta(t, 127, int(b), 1)
}

func TestFrameTransparentPixelsShowBackdrop(t *testing.T) {
	p := New(image.NewRGBA(image.Rect(0, 0, 4, 4)))

	assert.Equal(t, "#ffffff", p.Frame(2, 1, 1, white)[1][1].Hex())
}

func TestFrameEmptyArea(t *testing.T) {
	p := New(Placeholder())

	assert.Nil(t, p.Frame(0, 3, 1, white))
	assert.Nil(t, p.Frame(3, 0, 1, white))
}

func TestRenderDimensions(t *testing.T) {
	p := New(Placeholder()).WithProfile(termenv.TrueColor)

	lines := p.Render(20, 6, 0.7, white)
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 20, ansi.StringWidth(l))
	}
}

func TestRenderAsciiProfileHasNoColour(t *testing.T) {
	p := New(Placeholder()).WithProfile(termenv.Ascii)

	lines := p.Render(3, 1, 1, white)
	require.Len(t, lines, 1)
	assert.Equal(t, "▀▀▀"+termenv.CSI+"0m", lines[0])
}

func TestRenderReusesScaledPixels(t *testing.T) {
	p := New(Placeholder())

	p.Frame(10, 5, 1, white)
	first := &p.cache[0]
	p.Frame(10, 5, 0.2, white)
	assert.Same(t, first, &p.cache[0])

	p.Frame(12, 5, 1, white)
	assert.Equal(t, 12, p.cacheCols)
}

func TestCoverRect(t *testing.T) {
	tests := []struct {
		name string
		src  image.Rectangle
		w, h int
		want image.Rectangle
	}{
		{"wide source", image.Rect(0, 0, 200, 100), 10, 10, image.Rect(50, 0, 150, 100)},
		{"tall source", image.Rect(0, 0, 100, 200), 10, 10, image.Rect(0, 50, 100, 150)},
		{"same aspect", image.Rect(0, 0, 80, 40), 20, 10, image.Rect(0, 0, 80, 40)},
		{"empty source", image.Rectangle{}, 10, 10, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coverRect(tt.src, tt.w, tt.h))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := writePNG(t, solid(3, 5, color.RGBA{G: 0xff, A: 0xff}))

	img, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 5), img.Bounds().Size())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(context.Background(), "  ")
	assert.Error(t, err)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bogus := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = Load(context.Background(), bogus)
	assert.Error(t, err)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, solid(6, 6, color.RGBA{B: 0xff, A: 0xff}))
	}))
	defer srv.Close()

	img, err := Load(context.Background(), srv.URL+"/me.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(6, 6), img.Bounds().Size())

	_, err = Load(context.Background(), srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "404")
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder()

	assert.Equal(t, image.Pt(64, 64), img.Bounds().Size())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.NotEqual(t, img.At(0, 0), img.At(32, 24), "figure differs from background")
}

func TestMustHex(t *testing.T) {
	assert.Equal(t, "#4a4355", MustHex("#4A4355").Hex())
	assert.Panics(t, func() { MustHex("not a colour") })
}

func TestBlurredFrameDiffersFromSharp(t *testing.T) {
	sharp := New(Placeholder())
	blurred := New(Placeholder()).WithBlur(0.1)

	assert.NotEqual(t, sharp.Frame(20, 10, 1, white), blurred.Frame(20, 10, 1, white))
}

func TestBlurKeepsSolidColour(t *testing.T) {
	p := New(solid(8, 8, color.RGBA{G: 0xff, A: 0xff})).WithBlur(0.2)

	for _, line := range p.Frame(6, 3, 1, white) {
		for _, c := range line {
			r, g, b := c.RGB255()
			assert.InDelta(t, 0, int(r), 1)
			assert.InDelta(t, 255, int(g), 1)
			assert.InDelta(t, 0, int(b), 1)
		}
	}
}

func TestWithBlurDropsCachedPixels(t *testing.T) {
	p := New(Placeholder())
	p.Frame(10, 5, 1, white)
	require.NotNil(t, p.cache)

	p.WithBlur(0.05)
	assert.Nil(t, p.cache)
}

func TestRoundedCornersShowBackdrop(t *testing.T) {
	p := New(solid(8, 8, color.RGBA{R: 0xff, A: 0xff})).WithRoundedCorners(0.25)

	frame := p.Frame(10, 5, 1, white)
	require.Len(t, frame, 10)
	for _, pt := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		assert.Equal(t, "#ffffff", frame[pt.Y][pt.X].Hex(), "corner %v", pt)
	}
	assert.Equal(t, "#ff0000", frame[5][5].Hex())
	assert.Equal(t, "#ff0000", frame[5][0].Hex(), "edges between corners stay")
	assert.Equal(t, "#ff0000", frame[0][5].Hex())
}

func TestOutsideRounded(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 0, 0, true},
		{"bottom right corner", 19, 19, true},
		{"inside arc", 3, 3, false},
		{"top edge", 10, 0, false},
		{"centre", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outsideRounded(tt.x, tt.y, 20, 20, 5))
		})
	}
}
