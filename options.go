package gui

import "github.com/gogpu/gui/window"

// ScreenMode selects how the window occupies the screen.
type ScreenMode = window.ScreenMode

const (
	ScreenModeWindowed   = window.ScreenModeWindowed
	ScreenModeFullscreen = window.ScreenModeFullscreen
	ScreenModeBorderless = window.ScreenModeBorderless
)

type config struct {
	window window.Config
	clear  RGBA
}

func defaultConfig() config {
	return config{
		window: window.Config{
			Title:       "gui",
			Width:       800,
			Height:      600,
			Resizable:   true,
			VSync:       true,
			Decorations: true,
		},
		clear: Black,
	}
}

// Option configures a GUI at construction.
type Option func(*config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.window.Title = title }
}

// WithSize sets the initial window size in pixels.
func WithSize(width, height uint32) Option {
	return func(c *config) {
		c.window.Width = width
		c.window.Height = height
	}
}

// WithClearColor sets the background color frames clear to.
func WithClearColor(color RGBA) Option {
	return func(c *config) { c.clear = color }
}

// WithResizable controls whether the window can be resized.
func WithResizable(resizable bool) Option {
	return func(c *config) { c.window.Resizable = resizable }
}

// WithVSync controls presentation synchronization.
func WithVSync(vsync bool) Option {
	return func(c *config) { c.window.VSync = vsync }
}

// WithDecorations controls the window title bar and borders.
func WithDecorations(decorations bool) Option {
	return func(c *config) { c.window.Decorations = decorations }
}

// WithScreenMode selects windowed, fullscreen or borderless mode.
func WithScreenMode(mode ScreenMode) Option {
	return func(c *config) { c.window.ScreenMode = mode }
}
