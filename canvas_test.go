package sketch

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"
)

func mustCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return c
}

// redAt reports whether the pixel at (x, y) is saturated red.
func redAt(t *testing.T, img image.Image, x, y int) bool {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xc000 && g < 0x4000 && b < 0x4000
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative width", -1, 100},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); err == nil {
				t.Errorf("New(%d, %d) succeeded, want error", tt.w, tt.h)
			}
		})
	}
}

func TestDrawRectCornerMode(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	c.SetBackground(RGB(1, 1, 1))
	c.SetTransformMode(Corner)
	c.SetFill(RGB(1, 0, 0))
	c.Translate(50, 50)
	c.DrawRect(0, 0, 20, 20)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	if !redAt(t, img, 60, 60) {
		t.Error("pixel inside translated rect not red")
	}
	if redAt(t, img, 10, 10) {
		t.Error("pixel at untranslated origin is red")
	}
}

func TestCenterModeRotatesInPlace(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	c.SetBackground(RGB(1, 1, 1))
	c.SetFill(RGB(1, 0, 0))
	c.Rotate(45)
	// In Center mode the square spins about its own center (50, 50),
	// so that point stays covered no matter the angle.
	c.DrawRect(40, 40, 20, 20)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if !redAt(t, c.Image(), 50, 50) {
		t.Error("center pixel lost after in-place rotation")
	}
}

func TestCornerModeRotatesAboutOrigin(t *testing.T) {
	c := mustCanvas(t, 200, 200)
	c.SetBackground(RGB(1, 1, 1))
	c.SetTransformMode(Corner)
	c.SetFill(RGB(1, 0, 0))
	c.Rotate(90)
	// Rotating 90 degrees about the canvas origin sends (x, y) to
	// (-y, x): the square lands outside the visible canvas.
	c.DrawRect(100, 100, 20, 20)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if redAt(t, c.Image(), 110, 110) {
		t.Error("corner-mode rotation left the square in place")
	}
}

func TestScaleZeroVanishes(t *testing.T) {
	// A zero scale is legal: primitives collapse to a point and simply
	// draw nothing, leaving the background untouched.
	for _, mode := range []TransformMode{Center, Corner} {
		t.Run(mode.String(), func(t *testing.T) {
			c := mustCanvas(t, 100, 100)
			c.SetBackground(RGB(1, 1, 1))
			c.SetTransformMode(mode)
			c.SetFill(RGB(1, 0, 0))
			c.Scale(0, 0)
			c.DrawRect(30, 30, 40, 40)
			c.DrawStar(50, 50, 5, 30, 0)
			c.DrawOval(20, 20, 60, 60)
			if err := c.Err(); err != nil {
				t.Fatalf("zero scale recorded an error: %v", err)
			}

			img := c.Image()
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					if redAt(t, img, x, y) {
						t.Fatalf("degenerate primitive left a pixel at (%d, %d)", x, y)
					}
				}
			}
		})
	}
}

func TestPushPopRestoresState(t *testing.T) {
	c := mustCanvas(t, 50, 50)
	c.SetFill(RGB(0, 0, 1))
	c.SetTransformMode(Corner)
	c.SetRotationUnit(Radians)
	c.Translate(10, 10)
	before := c.Transform()

	c.Push()
	c.SetFill(RGB(1, 0, 0))
	c.SetTransformMode(Center)
	c.SetRotationUnit(Percent)
	c.Translate(99, 99)
	c.Scale(3, 3)
	c.Pop()

	if got := c.Transform(); got != before {
		t.Errorf("transform not restored: %+v != %+v", got, before)
	}
	if c.cur.fill != RGB(0, 0, 1) {
		t.Errorf("fill not restored: %+v", c.cur.fill)
	}
	if c.cur.tmode != Corner || c.cur.unit != Radians {
		t.Errorf("modes not restored: %v, %v", c.cur.tmode, c.cur.unit)
	}
}

func TestWithScopesTransforms(t *testing.T) {
	c := mustCanvas(t, 50, 50)
	c.With(func() {
		c.Translate(30, 30)
		c.Rotate(180)
	})
	if !c.Transform().IsIdentity() {
		t.Error("With leaked transform changes")
	}
	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
}

func TestPopEmptyStackIsSticky(t *testing.T) {
	c := mustCanvas(t, 50, 50)
	c.Pop()
	if c.Err() == nil {
		t.Fatal("pop on empty stack not recorded")
	}
	// Later drawing is a no-op and the error survives to SavePNG.
	c.SetFill(RGB(1, 0, 0))
	c.DrawRect(0, 0, 50, 50)
	if err := c.SavePNG("should-not-exist.png"); err == nil {
		t.Error("SavePNG succeeded on a failed canvas")
	}
	if redAt(t, c.Image(), 25, 25) {
		t.Error("drawing happened after sticky error")
	}
}

func TestDrawStarInvalid(t *testing.T) {
	tests := []struct {
		name   string
		draw   func(*Canvas)
		substr string
	}{
		{"too few points", func(c *Canvas) { c.DrawStar(0, 0, 2, 50, 20) }, "at least 3 points"},
		{"zero radius", func(c *Canvas) { c.DrawStar(0, 0, 5, 0, 0) }, "outer radius"},
		{"tiny polygon", func(c *Canvas) { c.DrawPolygon(2, 0, 0, 10, 0) }, "at least 3 sides"},
		{"flat arrow", func(c *Canvas) { c.DrawArrow(0, 0, 0, ArrowNormal) }, "arrow width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCanvas(t, 50, 50)
			tt.draw(c)
			err := c.Err()
			if err == nil {
				t.Fatal("invalid primitive not rejected")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestDrawStarFillsCenter(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	c.SetBackground(RGB(1, 1, 1))
	c.SetFill(RGB(1, 0, 0))
	c.DrawStar(50, 50, 5, 40, 15)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if !redAt(t, c.Image(), 50, 50) {
		t.Error("star center not filled")
	}
	if redAt(t, c.Image(), 5, 5) {
		t.Error("far corner filled")
	}
}

func TestStrokeOnly(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	c.SetBackground(RGB(1, 1, 1))
	c.NoFill()
	c.SetStroke(RGB(1, 0, 0))
	c.SetStrokeWidth(4)
	c.DrawRect(20, 20, 60, 60)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if !redAt(t, c.Image(), 20, 50) {
		t.Error("stroked edge not drawn")
	}
	if redAt(t, c.Image(), 50, 50) {
		t.Error("interior filled despite NoFill")
	}
}

func TestDebugLogsPerPrimitive(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	c := mustCanvas(t, 100, 100)
	c.SetFill(RGB(1, 0, 0))
	c.DrawRect(10, 10, 20, 20)
	c.DrawStar(50, 50, 5, 20, 0)
	c.DrawOval(10, 60, 30, 20)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, op := range []string{"op=rect", "op=star", "op=oval"} {
		if !strings.Contains(out, op) {
			t.Errorf("debug output missing %q: %s", op, out)
		}
	}
}

func TestTextWidth(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	w := c.TextWidth("hello")
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if w <= 0 {
		t.Errorf("TextWidth = %v, want > 0", w)
	}
	if wide := c.TextWidth("hello hello"); wide <= w {
		t.Errorf("longer string not wider: %v <= %v", wide, w)
	}
}

func TestDrawTextRenders(t *testing.T) {
	c := mustCanvas(t, 200, 100)
	c.SetBackground(RGB(1, 1, 1))
	c.SetFill(RGB(0, 0, 0))
	c.SetFontSize(48)
	c.DrawText("X", 50, 70)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	// Some pixel in the glyph box must be dark.
	img := c.Image()
	dark := false
	for y := 20; y < 80 && !dark; y++ {
		for x := 40; x < 120; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0x4000 && g < 0x4000 && b < 0x4000 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("no glyph pixels rendered")
	}
}
