package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"wrapped/internal/domain/slide"
)

// Text sizes in points, relative to the half-resolution base canvas.
const (
	sizeHero  = 72
	sizeTitle = 34
	sizeBody  = 22
	sizeSmall = 15
)

// Renderer composes shareable PNG cards entirely server-side. One instance
// is shared by all request handlers; the face cache is guarded internally.
type Renderer struct {
	mu    sync.Mutex
	src   *opentype.Font // nil when falling back to the builtin bitmap font
	faces map[float64]font.Face
}

// NewRenderer loads the display font from fontPath. An empty path (or an
// unreadable file) degrades to the builtin bitmap font rather than failing:
// a plain card still beats no card.
func NewRenderer(fontPath string) (*Renderer, error) {
	r := &Renderer{faces: make(map[float64]font.Face)}
	if fontPath == "" {
		return r, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	r.src = parsed
	return r, nil
}

func (r *Renderer) face(size float64) font.Face {
	if r.src == nil {
		return basicfont.Face7x13
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	r.faces[size] = f
	return f
}

// canvas is one in-progress card at base resolution.
type canvas struct {
	img *image.RGBA
	r   *Renderer
}

// newCanvas allocates a base-resolution canvas filled with the vertical
// gradient for the given background token. Unknown tokens fall back to the
// dark gradient.
func (r *Renderer) newCanvas(w, h int, background string) *canvas {
	pair, ok := slide.Gradients[background]
	if !ok {
		pair = slide.Gradients[slide.BgDark]
	}
	top := parseHex(pair[0])
	bottom := parseHex(pair[1])

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		line := lerpColor(top, bottom, t)
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, line)
		}
	}
	return &canvas{img: img, r: r}
}

func (c *canvas) width() int  { return c.img.Bounds().Dx() }
func (c *canvas) height() int { return c.img.Bounds().Dy() }

// fillRect blends a (possibly translucent) colour over a region.
func (c *canvas) fillRect(rect image.Rectangle, col color.Color) {
	xdraw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, xdraw.Over)
}

func (c *canvas) textWidth(text string, size float64) int {
	d := font.Drawer{Face: c.r.face(size)}
	return d.MeasureString(text).Ceil()
}

func (c *canvas) lineHeight(size float64) int {
	return c.r.face(size).Metrics().Height.Ceil()
}

// drawText draws a single line with its baseline at y, starting at x.
func (c *canvas) drawText(text string, x, y int, size float64, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.r.face(size),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// centerText draws a single line horizontally centered, baseline at y.
func (c *canvas) centerText(text string, y int, size float64, col color.Color) {
	x := (c.width() - c.textWidth(text, size)) / 2
	if x < 0 {
		x = 0
	}
	c.drawText(text, x, y, size, col)
}

// centerWrapped word-wraps text to maxWidth, draws the lines centered
// starting at baseline y, and returns the baseline just below the last line.
func (c *canvas) centerWrapped(text string, y int, size float64, maxWidth int, col color.Color) int {
	lh := c.lineHeight(size)
	for _, line := range c.wrap(text, size, maxWidth) {
		c.centerText(line, y, size, col)
		y += lh
	}
	return y
}

// wrap splits text into lines that fit maxWidth. A single word wider than
// the limit gets its own line rather than being broken mid-word.
func (c *canvas) wrap(text string, size float64, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if c.textWidth(candidate, size) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// encode upscales the base canvas to the exact target dimensions and returns
// the finished PNG. The whole image is encoded to memory first so callers
// never stream a partial file.
func (c *canvas) encode(w, h int) ([]byte, error) {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	colWhite    = color.RGBA{255, 255, 255, 255}
	colFaint    = color.RGBA{255, 255, 255, 200}
	colBoxWhite = color.RGBA{255, 255, 255, 38} // translucent panel over the gradient
)

func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 255}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		rgb[i] = hexByte(s[i*2])<<4 | hexByte(s[i*2+1])
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}
}

func hexByte(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}
