package text

// Face pairs a font source with a pixel size. A nil Source selects the
// renderer's default font.
type Face struct {
	Source *FontSource
	Size   float64
}
