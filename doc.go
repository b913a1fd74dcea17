// Package gui is a retained-mode GUI toolkit for Go, rendered on the GPU.
//
// # Overview
//
// A GUI owns a window and a renderer and displays a Layout: an ordered,
// swappable collection of components. Components are created, added to a
// layout, and the layout is handed to the GUI. The event loop sleeps
// until the platform delivers an event and redraws on demand:
//
//	g, err := gui.New(
//		gui.WithTitle("hello"),
//		gui.WithSize(800, 600),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	label, err := gui.NewLabel("Hello, world!", 100, 120, 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	layout := gui.NewLayout()
//	layout.AddTextComponent(label)
//
//	g.SetLayout(layout)
//	log.Fatal(g.Run())
//
// # Architecture
//
// The toolkit is split into four layers:
//
//   - The root package holds the component model: Component, TextComponent,
//     Layout, and the built-in Label, Button and Panel components.
//   - Package window abstracts the platform window and its event stream.
//   - Package render owns the frame loop. Each frame it applies any pending
//     layout swap, acquires a surface texture, records one render pass in
//     component order (painter's algorithm), and presents.
//   - Package internal/gpu holds the two fixed GPU pipelines (solid quads
//     and atlas-textured glyphs) built on the wgpu HAL.
//
// Layout swaps requested mid-frame take effect at the next frame boundary,
// so a frame never mixes components from two layouts.
package gui
