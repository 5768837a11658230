package glview_test

import (
	"log"

	"github.com/BrandonKowalski/glview/pkg/glview"
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/event"
)

// Example shows a minimal main loop: events go to a Bus, controller input
// is logged, and the loop ends when the window is closed.
func Example() {
	bus := event.NewBus()

	bus.AddListener(event.KindController, func(e event.Event) {
		ce := e.(event.ControllerEvent)
		if ce.Type == event.ControllerKeyDown {
			log.Printf("%s pressed %s", ce.DeviceName, glview.ControllerKeyLabel(ce.Key))
		}
	})
	bus.AddCustomListener(constants.EventWindowResized, func(event.Event) {
		size := glview.GetView().FrameSize()
		log.Printf("resized to %vx%v", size.Width, size.Height)
	})

	cfg := glview.DefaultConfig()
	cfg.View.Name = "Example"
	cfg.View.DesignWidth, cfg.View.DesignHeight = 480, 320
	cfg.View.Policy = constants.ResolutionPolicyShowAll.String()

	if err := glview.Init(glview.Options{Config: &cfg, Dispatcher: bus}); err != nil {
		log.Fatal(err)
	}
	defer glview.Close()

	view := glview.GetView()
	for !view.WindowShouldClose() {
		view.PollEvents()
		// draw the frame
		view.SwapBuffers()
	}
}
