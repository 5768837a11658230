package internal

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// SVGIconSize is the edge length SVG icons are rasterized at.
const SVGIconSize = 256

var errNoIcon = errors.New("no usable icon")

// SetIcon uses the first of paths that can be decoded as the window icon.
func (v *GLView) SetIcon(paths ...string) error {
	if v.window == nil {
		return ErrNotInitialized
	}
	if len(paths) == 0 {
		return errNoIcon
	}
	var errs []error
	for _, path := range paths {
		surface, err := v.iconSurface(path)
		if err != nil {
			GetInternalLogger().Debug("Skipping window icon", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		v.window.SetIcon(surface)
		return nil
	}
	return fmt.Errorf("%w: %w", errNoIcon, errors.Join(errs...))
}

// SetDefaultIcon applies the icons named in the view configuration. SDL has
// no way to restore the platform icon, so without configured icons this
// only logs.
func (v *GLView) SetDefaultIcon() {
	if len(v.defaultIcons) == 0 {
		GetInternalLogger().Debug("No default window icon configured")
		return
	}
	if err := v.SetIcon(v.defaultIcons...); err != nil {
		GetInternalLogger().Warn("Failed to set default window icon", "error", err)
	}
}

func (v *GLView) iconSurface(path string) (*sdl.Surface, error) {
	if s := v.icons.Get(path); s != nil {
		return s, nil
	}
	s, err := LoadIconSurface(path)
	if err != nil {
		return nil, err
	}
	v.icons.Set(path, s)
	return s, nil
}

// LoadIconSurface decodes PNG/JPG through SDL_image and rasterizes SVG.
func LoadIconSurface(path string) (*sdl.Surface, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		rgba, err := RasterizeSVGFile(path, SVGIconSize, SVGIconSize)
		if err != nil {
			return nil, err
		}
		return surfaceFromRGBA(rgba)
	}
	s, err := img.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}
	return s, nil
}

func RasterizeSVGFile(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return RasterizeSVG(f, width, height)
}

// RasterizeSVG renders an SVG document into a width x height RGBA image.
func RasterizeSVG(r io.Reader, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return rgba, nil
}

// surfaceFromRGBA copies an image into a new ABGR8888 surface, which has
// the same byte order as image.RGBA.
func surfaceFromRGBA(rgba *image.RGBA) (*sdl.Surface, error) {
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, NewPlatformError("create_surface", err)
	}

	if err := surface.Lock(); err != nil {
		surface.Free()
		return nil, NewPlatformError("lock_surface", err)
	}
	copyRows(surface.Pixels(), int(surface.Pitch), rgba.Pix, rgba.Stride, w*4, h)
	surface.Unlock()
	return surface, nil
}

func copyRows(dst []byte, dstPitch int, src []byte, srcStride, rowBytes, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstPitch:y*dstPitch+rowBytes], src[y*srcStride:y*srcStride+rowBytes])
	}
}
