package x11wire

// Window is a 32-bit value representing a window resource ID.
type Window uint32

// Drawable is a 32-bit value representing a drawable (window or pixmap) resource ID.
type Drawable uint32

// Font is a 32-bit value representing a font resource ID.
type Font uint32

// Pixmap is a 32-bit value representing a pixmap resource ID.
type Pixmap uint32

// Cursor is a 32-bit value representing a cursor resource ID.
type Cursor uint32

// Colormap is a 32-bit value representing a colormap resource ID.
type Colormap uint32

// GContext is a 32-bit value representing a graphics context resource ID.
type GContext uint32

// Atom is a 32-bit value representing an atom identifier. Zero is the
// protocol's "None" sentinel.
type Atom uint32

// VisualID is a 32-bit value representing a visual ID.
type VisualID uint32

// Timestamp is a 32-bit value representing a timestamp in milliseconds.
type Timestamp uint32

// Rectangle specifies a rectangular area, as used by SetClipRectangles and
// similar requests.
type Rectangle struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// Opcodes pairs a request's major opcode with its minor opcode (used by
// extension dispatch and by error reporting).
type Opcodes struct {
	Major ReqCode
	Minor uint8
}
