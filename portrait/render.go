package portrait

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

type pixel struct {
	c colorful.Color
	a float64
}

// Portrait renders one source image at any cell size. The scaled pixels for
// the last requested size are cached, so redrawing at a new opacity is cheap.
type Portrait struct {
	src     image.Image
	profile termenv.Profile

	// blur and radius are fractions of the scaled frame height
	blur   float64
	radius float64

	cacheCols, cacheRows int
	cache                []pixel
}

func New(img image.Image) *Portrait {
	return &Portrait{src: img, profile: lipgloss.ColorProfile()}
}

// WithProfile overrides the terminal colour profile used for escape codes.
func (p *Portrait) WithProfile(profile termenv.Profile) *Portrait {
	p.profile = profile
	return p
}

// WithBlur applies a gaussian blur to the scaled pixels. sigma is a fraction
// of the frame height in pixels, so the look does not change with the
// terminal size.
func (p *Portrait) WithBlur(sigma float64) *Portrait {
	p.blur = max(sigma, 0)
	p.cache = nil
	return p
}

// WithRoundedCorners makes the pixels outside a rounded rectangle
// transparent, so they show the backdrop. radius is a fraction of the frame
// height.
func (p *Portrait) WithRoundedCorners(radius float64) *Portrait {
	p.radius = max(radius, 0)
	p.cache = nil
	return p
}

// Frame returns the blended pixel grid for a cols x rows cell area: rows*2
// pixel rows of cols pixels. Opacity 0 yields the backdrop everywhere.
func (p *Portrait) Frame(cols, rows int, opacity float64, backdrop colorful.Color) [][]colorful.Color {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	px := p.pixels(cols, rows)
	out := make([][]colorful.Color, rows*2)
	for y := range out {
		line := make([]colorful.Color, cols)
		for x := range line {
			src := px[y*cols+x]
			line[x] = blend(backdrop, src, opacity)
		}
		out[y] = line
	}
	return out
}

// Render draws the portrait as rows lines of cols half-block cells.
func (p *Portrait) Render(cols, rows int, opacity float64, backdrop colorful.Color) []string {
	return p.Canvas(cols, rows, opacity, backdrop).Lines()
}

func (p *Portrait) renderLine(top, bottom []colorful.Color) string {
	var b strings.Builder
	lastFG, lastBG := "", ""
	for x := range top {
		fg, bg := top[x].Hex(), bottom[x].Hex()
		if fg != lastFG {
			b.WriteString(colorSeq(p.profile, fg, false))
			lastFG = fg
		}
		if bg != lastBG {
			b.WriteString(colorSeq(p.profile, bg, true))
			lastBG = bg
		}
		b.WriteString(halfBlock)
	}
	b.WriteString(termenv.CSI + "0m")
	return b.String()
}

func (p *Portrait) pixels(cols, rows int) []pixel {
	if p.cache != nil && p.cacheCols == cols && p.cacheRows == rows {
		return p.cache
	}
	w, h := cols, rows*2
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), p.src, coverRect(p.src.Bounds(), w, h), draw.Src, nil)

	var scaled image.Image = dst
	if sigma := p.blur * float64(h); sigma > 0 {
		scaled = imaging.Blur(dst, sigma)
	}
	r := p.radius * float64(h)

	px := make([]pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r > 0 && outsideRounded(x, y, w, h, r) {
				continue
			}
			src := scaled.At(x, y)
			c, _ := colorful.MakeColor(src)
			_, _, _, a := src.RGBA()
			px[y*w+x] = pixel{c: c, a: float64(a) / 0xffff}
		}
	}
	p.cacheCols, p.cacheRows, p.cache = cols, rows, px
	return px
}

// outsideRounded reports whether pixel (x, y) falls in a corner cut away by
// a w x h rounded rectangle with corner radius r. Half-block pixels are
// roughly square, so both axes use the same scale.
func outsideRounded(x, y, w, h int, r float64) bool {
	fx := float64(x) + 0.5
	fy := float64(y) + 0.5
	fw := float64(w)
	fh := float64(h)
	r = math.Min(r, math.Min(fw, fh)/2)

	var dx, dy float64
	switch {
	case fx < r:
		dx = r - fx
	case fx > fw-r:
		dx = fx - (fw - r)
	default:
		return false
	}
	switch {
	case fy < r:
		dy = r - fy
	case fy > fh-r:
		dy = fy - (fh - r)
	default:
		return false
	}
	return dx*dx+dy*dy > r*r
}

// coverRect crops src to the aspect ratio of a w x h target, centred, the
// way an image set to "cover" fills its box.
func coverRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return src
	}
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := src.Min.X + (sw-cw)/2
		return image.Rect(x0, src.Min.Y, x0+cw, src.Max.Y)
	}
	ch := sw * h / w
	y0 := src.Min.Y + (sh-ch)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+ch)
}

func blend(backdrop colorful.Color, px pixel, opacity float64) colorful.Color {
	t := opacity * px.a
	switch {
	case t <= 0:
		return backdrop
	case t >= 1:
		return px.c
	}
	return backdrop.BlendRgb(px.c, t).Clamped()
}

func colorSeq(profile termenv.Profile, hex string, bg bool) string {
	c := profile.Color(hex)
	if c == nil {
		return ""
	}
	seq := c.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// MustHex parses a #rrggbb colour and panics if it is malformed. It is meant
// for package-level colour constants.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Placeholder is drawn when no portrait could be loaded: a plain silhouette
// on the drawer palette.
func Placeholder() image.Image {
	const size = 64
	top := MustHex("#4A4355")
	bottom := MustHex("#362F41")
	figure := MustHex("#D1E2E5")

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		bgc := top.BlendRgb(bottom, float64(y)/float64(size-1))
		for x := 0; x < size; x++ {
			c := bgc
			if inHead(x, y) || inShoulders(x, y) {
				c = figure
			}
			r, g, b := c.RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

func inHead(x, y int) bool {
	dx, dy := x-32, y-24
	return dx*dx+dy*dy <= 12*12
}

func inShoulders(x, y int) bool {
	dx, dy := float64(x-32)/24, float64(y-64)/20
	return dx*dx+dy*dy <= 1
}
