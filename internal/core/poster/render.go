package poster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"math/rand"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Poster canvas size in pixels.
const (
	Width  = 400
	Height = 600
)

const (
	borderWidth = 8
	textMargin  = 24
	lineHeight  = 16
)

// Renderer draws posters procedurally. It needs no external service.
type Renderer struct{}

// NewRenderer returns a procedural poster renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the poster and encodes it as PNG.
func (r *Renderer) Render(ctx context.Context, spec domain.PosterSpec, rng *rand.Rand) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	cs := spec.ColorScheme

	switch spec.Genre {
	case domain.GenreHorror:
		drawNoisyGradient(img, cs.Background, color.RGBA{A: 255}, rng)
	case domain.GenreRomance:
		drawRadial(img, cs.Accent, cs.Primary)
	case domain.GenreSciFi:
		drawLinear(img, cs.Primary, cs.Text)
		drawGrid(img, cs.Secondary, cs.Accent, rng)
	case domain.GenreAdventure:
		drawDiagonal(img, cs.Accent, cs.Primary)
		drawPeaks(img, cs.Text, rng)
	case domain.GenreComedy:
		drawLinear(img, cs.Background, cs.Accent)
		drawCircles(img, []domain.RGB{cs.Primary, cs.Secondary, cs.Accent}, rng)
	default:
		drawLinear(img, cs.Primary, cs.Secondary)
	}

	drawFrame(img, cs.Accent)

	textColor := rgba(cs.Text)
	if spec.Genre == domain.GenreHorror || spec.Genre == domain.GenreSciFi {
		textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	y := Height - 150
	for _, line := range wrap(strings.ToUpper(spec.Title), Width-2*textMargin) {
		drawCentered(img, line, y, textColor)
		y += lineHeight + 4
	}
	y += lineHeight
	for _, line := range wrap(spec.Tagline, Width-2*textMargin) {
		drawCentered(img, line, y, textColor)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("poster: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func rgba(c domain.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{R: lerp(a.R, b.R, t), G: lerp(a.G, b.G, t), B: lerp(a.B, b.B, t), A: 255}
}

func drawLinear(img *image.RGBA, top, bottom domain.RGB) {
	a, b := rgba(top), rgba(bottom)
	for y := 0; y < Height; y++ {
		c := mix(a, b, float64(y)/float64(Height-1))
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawNoisyGradient(img *image.RGBA, top domain.RGB, bottom color.RGBA, rng *rand.Rand) {
	a := rgba(top)
	for y := 0; y < Height; y++ {
		base := mix(a, bottom, float64(y)/float64(Height-1))
		for x := 0; x < Width; x++ {
			n := rng.Intn(31) - 15
			img.SetRGBA(x, y, color.RGBA{R: clampByte(int(base.R) + n), G: clampByte(int(base.G) + n), B: clampByte(int(base.B) + n), A: 255})
		}
	}
}

func drawRadial(img *image.RGBA, inner, outer domain.RGB) {
	a, b := rgba(inner), rgba(outer)
	cx, cy := float64(Width)/2, float64(Height)/2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			img.SetRGBA(x, y, mix(a, b, d/maxDist))
		}
	}
}

func drawDiagonal(img *image.RGBA, from, to domain.RGB) {
	a, b := rgba(from), rgba(to)
	span := float64(Width + Height - 2)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, mix(a, b, float64(x+y)/span))
		}
	}
}

func drawGrid(img *image.RGBA, line, mark domain.RGB, rng *rand.Rand) {
	const step = 40
	lc, mc := rgba(line), rgba(mark)
	for x := 0; x < Width; x += step {
		for y := 0; y < Height; y++ {
			img.SetRGBA(x, y, lc)
		}
	}
	for y := 0; y < Height; y += step {
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, lc)
		}
	}
	// circuit nodes on random intersections
	for i := 0; i < 12; i++ {
		x := rng.Intn(Width/step) * step
		y := rng.Intn(Height/step) * step
		fillRect(img, image.Rect(x-3, y-3, x+4, y+4), mc)
	}
}

func drawPeaks(img *image.RGBA, c domain.RGB, rng *rand.Rand) {
	fill := rgba(c)
	base := Height - 180
	x := -40
	for x < Width {
		w := 120 + rng.Intn(80)
		h := 100 + rng.Intn(120)
		fillTriangle(img, image.Pt(x, base), image.Pt(x+w, base), image.Pt(x+w/2, base-h), fill)
		x += w * 2 / 3
	}
	fillRect(img, image.Rect(0, base, Width, Height), fill)
}

func drawCircles(img *image.RGBA, palette []domain.RGB, rng *rand.Rand) {
	for i := 0; i < 14; i++ {
		c := rgba(palette[rng.Intn(len(palette))])
		cx, cy := rng.Intn(Width), rng.Intn(Height-200)
		r := 12 + rng.Intn(40)
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(img.Bounds()) {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

func drawFrame(img *image.RGBA, c domain.RGB) {
	fc := rgba(c)
	b := img.Bounds()
	fillRect(img, image.Rect(0, 0, b.Dx(), borderWidth), fc)
	fillRect(img, image.Rect(0, b.Dy()-borderWidth, b.Dx(), b.Dy()), fc)
	fillRect(img, image.Rect(0, 0, borderWidth, b.Dy()), fc)
	fillRect(img, image.Rect(b.Dx()-borderWidth, 0, b.Dx(), b.Dy()), fc)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// fillTriangle fills a triangle with a flat base from a to b and apex p.
func fillTriangle(img *image.RGBA, a, b, p image.Point, c color.RGBA) {
	for y := p.Y; y <= a.Y; y++ {
		t := float64(y-p.Y) / float64(a.Y-p.Y)
		x0 := int(float64(p.X) + (float64(a.X)-float64(p.X))*t)
		x1 := int(float64(p.X) + (float64(b.X)-float64(p.X))*t)
		fillRect(img, image.Rect(x0, y, x1+1, y+1), c)
	}
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

var face = basicfont.Face7x13

func textWidth(s string) int {
	return font.MeasureString(face, s).Round()
}

func drawCentered(img *image.RGBA, s string, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P((Width-textWidth(s))/2, y),
	}
	d.DrawString(s)
}

// wrap breaks s into lines no wider than maxWidth pixels.
func wrap(s string, maxWidth int) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if cur != "" && textWidth(next) > maxWidth {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
