package internal

import (
	"math"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
)

// Vec2 is a point in view or window coordinates.
type Vec2 struct {
	X, Y float32
}

// Size is a width/height pair in points.
type Size struct {
	Width, Height float32
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Vec2
	Size   Size
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{Origin: Vec2{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) IsZero() bool {
	return r.Origin == Vec2{} && r.Size.IsZero()
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// Viewport is a rectangle in framebuffer pixels.
type Viewport struct {
	X, Y int32
	W, H uint32
}

// SetFrameSize sets the frame size in points and resizes the window to match.
// The design resolution defaults to the first frame size.
func (v *GLView) SetFrameSize(width, height float32) {
	v.screenSize = Size{Width: width, Height: height}
	if v.designResolutionSize.IsZero() {
		v.designResolutionSize = v.screenSize
	}
	v.updateFrameSize()
}

// FrameSize returns the frame size in points.
func (v *GLView) FrameSize() Size {
	return v.screenSize
}

// DesignResolutionSize returns the size the game is laid out in.
func (v *GLView) DesignResolutionSize() Size {
	return v.designResolutionSize
}

func (v *GLView) ResolutionPolicy() constants.ResolutionPolicy {
	return v.resolutionPolicy
}

// SetDesignResolutionSize sets the logical resolution and how it is fitted
// into the frame. Zero sizes are ignored.
func (v *GLView) SetDesignResolutionSize(width, height float32, policy constants.ResolutionPolicy) {
	if width <= 0 || height <= 0 {
		return
	}
	v.designResolutionSize = Size{Width: width, Height: height}
	v.resolutionPolicy = policy
	v.updateDesignResolutionSize()
}

func (v *GLView) updateDesignResolutionSize() {
	screen, design := v.screenSize, v.designResolutionSize
	if screen.Width <= 0 || screen.Height <= 0 || design.Width <= 0 || design.Height <= 0 {
		return
	}

	scaleX := screen.Width / design.Width
	scaleY := screen.Height / design.Height

	switch v.resolutionPolicy {
	case constants.ResolutionPolicyNoBorder:
		scaleX = max(scaleX, scaleY)
		scaleY = scaleX
	case constants.ResolutionPolicyShowAll:
		scaleX = min(scaleX, scaleY)
		scaleY = scaleX
	case constants.ResolutionPolicyFixedHeight:
		scaleX = scaleY
		design.Width = float32(math.Ceil(float64(screen.Width / scaleX)))
	case constants.ResolutionPolicyFixedWidth:
		scaleY = scaleX
		design.Height = float32(math.Ceil(float64(screen.Height / scaleY)))
	}

	v.scaleX, v.scaleY = scaleX, scaleY
	v.designResolutionSize = design

	vpW := design.Width * scaleX
	vpH := design.Height * scaleY
	v.viewPortRect = NewRect((screen.Width-vpW)/2, (screen.Height-vpH)/2, vpW, vpH)
}

// ViewPortRect returns the area of the frame the design resolution occupies.
func (v *GLView) ViewPortRect() Rect {
	return v.viewPortRect
}

// Scale returns the design-to-frame scale factors.
func (v *GLView) Scale() (x, y float32) {
	return v.scaleX, v.scaleY
}

// pixelScale is the factor from frame points to framebuffer pixels.
func (v *GLView) pixelScale() float32 {
	return float32(v.retinaFactor) * v.frameZoomFactor
}

// SetViewPortInPoints converts a rectangle in design points to the default
// viewport in framebuffer pixels.
func (v *GLView) SetViewPortInPoints(x, y, w, h float32) {
	v.defaultViewport = v.pointsToPixels(x, y, w, h)
}

// DefaultViewport returns the viewport last set by SetViewPortInPoints.
func (v *GLView) DefaultViewport() Viewport {
	return v.defaultViewport
}

// SetScissorInPoints converts a rectangle in design points to the scissor
// rectangle in framebuffer pixels.
func (v *GLView) SetScissorInPoints(x, y, w, h float32) {
	v.scissorRect = v.pointsToPixels(x, y, w, h)
}

// ScissorRect returns the scissor rectangle converted back to design points.
func (v *GLView) ScissorRect() Rect {
	s := v.pixelScale()
	r := v.scissorRect
	return NewRect(
		(float32(r.X)-v.viewPortRect.Origin.X*s)/(v.scaleX*s),
		(float32(r.Y)-v.viewPortRect.Origin.Y*s)/(v.scaleY*s),
		float32(r.W)/(v.scaleX*s),
		float32(r.H)/(v.scaleY*s),
	)
}

func (v *GLView) pointsToPixels(x, y, w, h float32) Viewport {
	s := v.pixelScale()
	return Viewport{
		X: int32(x*v.scaleX*s + v.viewPortRect.Origin.X*s),
		Y: int32(y*v.scaleY*s + v.viewPortRect.Origin.Y*s),
		W: uint32(w * v.scaleX * s),
		H: uint32(h * v.scaleY * s),
	}
}

// refreshViewport resets the default viewport to cover the design resolution.
func (v *GLView) refreshViewport() {
	v.SetViewPortInPoints(0, 0, v.designResolutionSize.Width, v.designResolutionSize.Height)
}

// cursorToView converts window coordinates to view coordinates with the
// origin at the bottom-left of the viewport.
func (v *GLView) cursorToView(x, y float32) (float32, float32) {
	vp := v.viewPortRect
	return (x - vp.Origin.X) / v.scaleX, (vp.Origin.Y + vp.Size.Height - y) / v.scaleY
}

// touchToView converts window coordinates to design coordinates with the
// origin at the top-left of the viewport.
func (v *GLView) touchToView(x, y float32) (float32, float32) {
	vp := v.viewPortRect
	return (x - vp.Origin.X) / v.scaleX, (y - vp.Origin.Y) / v.scaleY
}

// retinaWindowSize decides the retina factor from the window size and its
// drawable size, and returns the window size the frame needs.
func (v *GLView) retinaWindowSize(winW, winH, drawableW, drawableH int32) (int32, int32) {
	if drawableW == 2*winW && drawableH == 2*winH {
		if v.isRetinaEnabled {
			v.retinaFactor = 1
		} else {
			v.retinaFactor = 2
		}
		v.isInRetinaMonitor = true
		s := float32(v.retinaFactor) * v.frameZoomFactor
		return int32(v.screenSize.Width / 2 * s), int32(v.screenSize.Height / 2 * s)
	}

	if v.isInRetinaMonitor {
		v.retinaFactor = 1
	}
	v.isInRetinaMonitor = false
	s := v.pixelScale()
	return int32(v.screenSize.Width * s), int32(v.screenSize.Height * s)
}

// reconcileFrameSize adjusts the requested frame when the window manager
// created a window of a different size than asked for.
func reconcileFrameSize(frame Size, neededW, neededH, realW, realH int32, zoom float32) Size {
	if realW != neededW {
		frame.Width = float32(realW) / zoom
	}
	if realH != neededH {
		frame.Height = float32(realH) / zoom
	}
	return frame
}
