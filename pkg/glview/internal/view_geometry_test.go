package internal

import (
	"math"
	"testing"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func newTestView(frameW, frameH float32) *GLView {
	v := newGLView(ViewOptions{})
	v.SetFrameSize(frameW, frameH)
	return v
}

func TestSetFrameSizeSeedsDesignResolution(t *testing.T) {
	v := newTestView(960, 640)
	if v.DesignResolutionSize() != (Size{Width: 960, Height: 640}) {
		t.Fatalf("design resolution should default to the frame, got %+v", v.DesignResolutionSize())
	}

	v.SetFrameSize(1920, 1080)
	if v.DesignResolutionSize() != (Size{Width: 960, Height: 640}) {
		t.Fatalf("design resolution must only be seeded once, got %+v", v.DesignResolutionSize())
	}
	if v.FrameSize() != (Size{Width: 1920, Height: 1080}) {
		t.Fatalf("unexpected frame size %+v", v.FrameSize())
	}
}

func TestDesignResolutionPolicies(t *testing.T) {
	tests := []struct {
		policy         constants.ResolutionPolicy
		scaleX, scaleY float32
		design         Size
		viewport       Rect
	}{
		{constants.ResolutionPolicyExactFit, 2, 1.5, Size{480, 320}, NewRect(0, 0, 960, 480)},
		{constants.ResolutionPolicyNoBorder, 2, 2, Size{480, 320}, NewRect(0, -80, 960, 640)},
		{constants.ResolutionPolicyShowAll, 1.5, 1.5, Size{480, 320}, NewRect(120, 0, 720, 480)},
		{constants.ResolutionPolicyFixedHeight, 1.5, 1.5, Size{640, 320}, NewRect(0, 0, 960, 480)},
		{constants.ResolutionPolicyFixedWidth, 2, 2, Size{480, 240}, NewRect(0, 0, 960, 480)},
	}

	for _, tt := range tests {
		v := newTestView(960, 480)
		v.SetDesignResolutionSize(480, 320, tt.policy)

		sx, sy := v.Scale()
		if !approx(sx, tt.scaleX) || !approx(sy, tt.scaleY) {
			t.Fatalf("%v: scale = (%v, %v), want (%v, %v)", tt.policy, sx, sy, tt.scaleX, tt.scaleY)
		}
		if v.DesignResolutionSize() != tt.design {
			t.Fatalf("%v: design = %+v, want %+v", tt.policy, v.DesignResolutionSize(), tt.design)
		}
		if v.ViewPortRect() != tt.viewport {
			t.Fatalf("%v: viewport = %+v, want %+v", tt.policy, v.ViewPortRect(), tt.viewport)
		}
	}
}

func TestSetDesignResolutionIgnoresZero(t *testing.T) {
	v := newTestView(960, 640)
	v.SetDesignResolutionSize(0, 320, constants.ResolutionPolicyShowAll)
	if v.ResolutionPolicy() != constants.ResolutionPolicyUnknown {
		t.Fatalf("zero design size must be ignored")
	}
}

func TestViewportAndScissorInPoints(t *testing.T) {
	v := newTestView(960, 480)
	v.SetDesignResolutionSize(480, 320, constants.ResolutionPolicyShowAll)

	v.refreshViewport()
	if got, want := v.DefaultViewport(), (Viewport{X: 120, Y: 0, W: 720, H: 480}); got != want {
		t.Fatalf("default viewport = %+v, want %+v", got, want)
	}

	v.SetScissorInPoints(10, 20, 100, 50)
	r := v.ScissorRect()
	if !approx(r.Origin.X, 10) || !approx(r.Origin.Y, 20) || !approx(r.Size.Width, 100) || !approx(r.Size.Height, 50) {
		t.Fatalf("scissor round trip = %+v", r)
	}
}

func TestViewportAccountsForRetinaAndZoom(t *testing.T) {
	v := newTestView(480, 320)
	v.retinaFactor = 2
	v.frameZoomFactor = 0.5

	v.SetViewPortInPoints(0, 0, 480, 320)
	if got, want := v.DefaultViewport(), (Viewport{W: 480, H: 320}); got != want {
		t.Fatalf("viewport = %+v, want %+v", got, want)
	}

	v.frameZoomFactor = 2
	v.SetViewPortInPoints(10, 10, 100, 100)
	if got, want := v.DefaultViewport(), (Viewport{X: 40, Y: 40, W: 400, H: 400}); got != want {
		t.Fatalf("viewport = %+v, want %+v", got, want)
	}
}

func TestCursorAndTouchConversion(t *testing.T) {
	v := newTestView(960, 480)
	v.SetDesignResolutionSize(480, 320, constants.ResolutionPolicyShowAll)

	x, y := v.cursorToView(120, 480)
	if !approx(x, 0) || !approx(y, 0) {
		t.Fatalf("bottom-left of viewport should be (0,0), got (%v,%v)", x, y)
	}
	x, y = v.cursorToView(840, 0)
	if !approx(x, 480) || !approx(y, 320) {
		t.Fatalf("top-right of viewport should be (480,320), got (%v,%v)", x, y)
	}

	x, y = v.touchToView(120, 0)
	if !approx(x, 0) || !approx(y, 0) {
		t.Fatalf("touch origin is top-left, got (%v,%v)", x, y)
	}
	x, y = v.touchToView(480, 240)
	if !approx(x, 240) || !approx(y, 160) {
		t.Fatalf("touch center = (%v,%v), want (240,160)", x, y)
	}
}

func TestRetinaWindowSize(t *testing.T) {
	v := newTestView(960, 640)

	w, h := v.retinaWindowSize(960, 640, 1920, 1280)
	if !v.IsRetinaDisplay() || v.RetinaFactor() != 2 {
		t.Fatalf("expected retina monitor with factor 2, got %v %d", v.IsRetinaDisplay(), v.RetinaFactor())
	}
	if w != 960 || h != 640 {
		t.Fatalf("window size = %dx%d, want 960x640", w, h)
	}

	v.isRetinaEnabled = true
	w, h = v.retinaWindowSize(960, 640, 1920, 1280)
	if v.RetinaFactor() != 1 || w != 480 || h != 320 {
		t.Fatalf("retina enabled: factor %d size %dx%d", v.RetinaFactor(), w, h)
	}

	v.isRetinaEnabled = false
	v.retinaFactor = 2
	w, h = v.retinaWindowSize(960, 640, 960, 640)
	if v.IsRetinaDisplay() || v.RetinaFactor() != 1 {
		t.Fatalf("leaving a retina monitor must reset the factor, got %d", v.RetinaFactor())
	}
	if w != 960 || h != 640 {
		t.Fatalf("window size = %dx%d, want 960x640", w, h)
	}
}

func TestRetinaWindowSizeWithZoom(t *testing.T) {
	v := newTestView(400, 300)
	v.frameZoomFactor = 2
	w, h := v.retinaWindowSize(800, 600, 800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("window size = %dx%d, want 800x600", w, h)
	}
}

func TestReconcileFrameSize(t *testing.T) {
	frame := Size{Width: 960, Height: 640}

	if got := reconcileFrameSize(frame, 960, 640, 960, 640, 1); got != frame {
		t.Fatalf("matching window must keep the frame, got %+v", got)
	}
	got := reconcileFrameSize(frame, 1920, 1280, 1600, 1280, 2)
	if got != (Size{Width: 800, Height: 640}) {
		t.Fatalf("expected width adjusted to 800, got %+v", got)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 100, 50)
	if !r.ContainsPoint(Vec2{10, 10}) || !r.ContainsPoint(Vec2{110, 60}) {
		t.Fatalf("edges must be inside")
	}
	if r.ContainsPoint(Vec2{9, 30}) || r.ContainsPoint(Vec2{50, 61}) {
		t.Fatalf("outside points reported inside")
	}
	if !(Rect{}).IsZero() || r.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
