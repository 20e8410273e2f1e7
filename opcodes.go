package x11wire

// ReqCode identifies a request variant by its major opcode.
type ReqCode uint8

// X11 core protocol request opcodes. Opcode 0 and opcodes 120..126 and
// 128..255 are not assigned by the core protocol; extension opcodes
// beyond the dispatch hook in DecodeRequest are out of scope.
const (
	CreateWindow            = ReqCode(1)
	ChangeWindowAttributes  = ReqCode(2)
	GetWindowAttributes     = ReqCode(3)
	DestroyWindow           = ReqCode(4)
	DestroySubwindows       = ReqCode(5)
	ChangeSaveSet           = ReqCode(6)
	ReparentWindow          = ReqCode(7)
	MapWindow               = ReqCode(8)
	MapSubwindows           = ReqCode(9)
	UnmapWindow             = ReqCode(10)
	UnmapSubwindows         = ReqCode(11)
	ConfigureWindow         = ReqCode(12)
	CirculateWindow         = ReqCode(13)
	GetGeometry             = ReqCode(14)
	QueryTree               = ReqCode(15)
	InternAtom              = ReqCode(16)
	GetAtomName             = ReqCode(17)
	ChangeProperty          = ReqCode(18)
	DeleteProperty          = ReqCode(19)
	GetProperty             = ReqCode(20)
	ListProperties          = ReqCode(21)
	SetSelectionOwner       = ReqCode(22)
	GetSelectionOwner       = ReqCode(23)
	ConvertSelection        = ReqCode(24)
	SendEvent               = ReqCode(25)
	GrabPointer             = ReqCode(26)
	UngrabPointer           = ReqCode(27)
	GrabButton              = ReqCode(28)
	UngrabButton            = ReqCode(29)
	ChangeActivePointerGrab = ReqCode(30)
	GrabKeyboard            = ReqCode(31)
	UngrabKeyboard          = ReqCode(32)
	GrabKey                 = ReqCode(33)
	UngrabKey               = ReqCode(34)
	AllowEvents             = ReqCode(35)
	GrabServer              = ReqCode(36)
	UngrabServer            = ReqCode(37)
	QueryPointer            = ReqCode(38)
	GetMotionEvents         = ReqCode(39)
	TranslateCoords         = ReqCode(40)
	WarpPointer             = ReqCode(41)
	SetInputFocus           = ReqCode(42)
	GetInputFocus           = ReqCode(43)
	QueryKeymap             = ReqCode(44)
	OpenFont                = ReqCode(45)
	CloseFont               = ReqCode(46)
	QueryFont               = ReqCode(47)
	QueryTextExtents        = ReqCode(48)
	ListFonts               = ReqCode(49)
	ListFontsWithInfo       = ReqCode(50)
	SetFontPath             = ReqCode(51)
	GetFontPath             = ReqCode(52)
	CreatePixmap            = ReqCode(53)
	FreePixmap              = ReqCode(54)
	CreateGC                = ReqCode(55)
	ChangeGCOpcode          = ReqCode(56)
	CopyGCOpcode            = ReqCode(57)
	SetDashes               = ReqCode(58)
	SetClipRectangles       = ReqCode(59)
	FreeGCOpcode            = ReqCode(60)
	ClearArea               = ReqCode(61)
	CopyArea                = ReqCode(62)
	CopyPlane               = ReqCode(63)
	PolyPoint               = ReqCode(64)
	PolyLine                = ReqCode(65)
	PolySegment             = ReqCode(66)
	PolyRectangle           = ReqCode(67)
	PolyArc                 = ReqCode(68)
	FillPoly                = ReqCode(69)
	PolyFillRectangle       = ReqCode(70)
	PolyFillArc             = ReqCode(71)
	PutImage                = ReqCode(72)
	GetImage                = ReqCode(73)
	PolyText8               = ReqCode(74)
	PolyText16              = ReqCode(75)
	ImageText8              = ReqCode(76)
	ImageText16             = ReqCode(77)
	CreateColormap          = ReqCode(78)
	FreeColormap            = ReqCode(79)
	CopyColormapAndFree     = ReqCode(80)
	InstallColormap         = ReqCode(81)
	UninstallColormap       = ReqCode(82)
	ListInstalledColormaps  = ReqCode(83)
	AllocColor              = ReqCode(84)
	AllocNamedColor         = ReqCode(85)
	AllocColorCells         = ReqCode(86)
	AllocColorPlanes        = ReqCode(87)
	FreeColors              = ReqCode(88)
	StoreColors             = ReqCode(89)
	StoreNamedColor         = ReqCode(90)
	QueryColors             = ReqCode(91)
	LookupColor             = ReqCode(92)
	CreateCursor            = ReqCode(93)
	CreateGlyphCursor       = ReqCode(94)
	FreeCursor              = ReqCode(95)
	RecolorCursor           = ReqCode(96)
	QueryBestSize           = ReqCode(97)
	QueryExtension          = ReqCode(98)
	ListExtensions          = ReqCode(99)
	ChangeKeyboardMapping   = ReqCode(100)
	GetKeyboardMapping      = ReqCode(101)
	ChangeKeyboardControl   = ReqCode(102)
	GetKeyboardControl      = ReqCode(103)
	Bell                    = ReqCode(104)
	ChangePointerControl    = ReqCode(105)
	GetPointerControl       = ReqCode(106)
	SetScreenSaver          = ReqCode(107)
	GetScreenSaver          = ReqCode(108)
	ChangeHosts             = ReqCode(109)
	ListHosts               = ReqCode(110)
	SetAccessControl        = ReqCode(111)
	SetCloseDownMode        = ReqCode(112)
	KillClient              = ReqCode(113)
	RotateProperties        = ReqCode(114)
	ForceScreenSaver        = ReqCode(115)
	SetPointerMapping       = ReqCode(116)
	GetPointerMapping       = ReqCode(117)
	SetModifierMapping      = ReqCode(118)
	GetModifierMapping      = ReqCode(119)
	NoOperation             = ReqCode(127)
)

// IsSupportedOpcode reports whether code is one of the core protocol's
// assigned request opcodes (1..119, 127).
func IsSupportedOpcode(code ReqCode) bool {
	return (code >= 1 && code <= 119) || code == NoOperation
}
