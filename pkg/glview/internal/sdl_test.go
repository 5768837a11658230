package internal

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/glview/pkg/glview/event"
)

// stubSDL replaces the SDL entry points used by Init and restores them and
// the package state when the test ends.
func stubSDL(t *testing.T, create func(ViewConfig, ViewOptions) (*GLView, error)) *int {
	t.Helper()

	shutdowns := 0
	prevInit, prevCreate, prevShutdown := initSubsystems, createView, shutdownSDL
	initSubsystems = func() error { return nil }
	createView = create
	shutdownSDL = func() { shutdowns++ }

	t.Cleanup(func() {
		initSubsystems, createView, shutdownSDL = prevInit, prevCreate, prevShutdown
		view, controllers, dispatcher = nil, nil, nil
	})
	return &shutdowns
}

func TestInitFailureLeavesNoState(t *testing.T) {
	errCreate := errors.New("no display")
	shutdowns := stubSDL(t, func(ViewConfig, ViewOptions) (*GLView, error) {
		return nil, errCreate
	})

	err := Init(DefaultConfig(), &event.Recorder{})
	if !errors.Is(err, errCreate) {
		t.Fatalf("expected view creation error, got %v", err)
	}
	if *shutdowns != 1 {
		t.Fatalf("expected SDL to be shut down once, got %d", *shutdowns)
	}
	if GetView() != nil || GetControllers() != nil || GetDispatcher() != nil {
		t.Fatalf("failed Init left state behind: view=%v controllers=%v dispatcher=%v",
			GetView(), GetControllers(), GetDispatcher())
	}
}

func TestInitSubsystemFailureLeavesNoState(t *testing.T) {
	stubSDL(t, func(ViewConfig, ViewOptions) (*GLView, error) {
		t.Fatalf("view must not be created when SDL fails to start")
		return nil, nil
	})
	initSubsystems = func() error { return NewPlatformError("init_sdl", errors.New("no video device")) }

	if err := Init(DefaultConfig(), nil); err == nil {
		t.Fatalf("expected an error")
	}
	if GetControllers() != nil || GetDispatcher() != nil {
		t.Fatalf("failed Init left state behind")
	}
}

func TestInitPublishesStateOnSuccess(t *testing.T) {
	var got ViewOptions
	stubSDL(t, func(vc ViewConfig, opts ViewOptions) (*GLView, error) {
		got = opts
		v := newGLView(opts)
		v.SetFrameSize(vc.Width, vc.Height)
		return v, nil
	})

	cfg := DefaultConfig()
	cfg.Controller.Discover = false
	cfg.View.DesignWidth, cfg.View.DesignHeight = 480, 320
	rec := &event.Recorder{}

	if err := Init(cfg, rec); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if GetView() == nil || GetControllers() == nil || GetDispatcher() != rec {
		t.Fatalf("Init did not publish its state")
	}
	if got.Controllers != GetControllers() || got.Dispatcher != rec {
		t.Fatalf("view was built with different collaborators")
	}
	if GetView().DesignResolutionSize() != (Size{Width: 480, Height: 320}) {
		t.Fatalf("design resolution not applied: %+v", GetView().DesignResolutionSize())
	}
}
