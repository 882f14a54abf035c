package argio

import (
	"strconv"
	"strings"
)

type colorSpace uint8

const (
	spaceBasic colorSpace = iota + 1
	spaceRGB
)

// ColorSpec is a foreground colour, either one of the 16 basic ANSI colours
// or a 24-bit RGB value.
type ColorSpec struct {
	space   colorSpace
	index   int
	r, g, b uint8
}

// Bright variants of the basic palette.
var (
	BrightRed     = basic(9)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{space: spaceBasic, index: i} }

// Truecolor returns a 24-bit RGB colour. Terminals below truecolor level
// render it unstyled.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{space: spaceRGB, r: r, g: g, b: b} }

// sgr returns the SGR parameter for c at the given colour level, or "" when
// the terminal cannot show it.
func (c ColorSpec) sgr(level int) string {
	switch c.space {
	case spaceBasic:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case spaceRGB:
		if level < 3 {
			return ""
		}
		return "38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	}
	return ""
}

// Style combines a foreground colour with bold or faint intensity.
type Style struct {
	fg          *ColorSpec
	bold, faint bool
}

func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }

// Sprint styles text for io's output writer, or returns it unchanged when
// that writer has no colour.
func (s *Style) Sprint(io *IOManager, text string) string {
	return s.sprint(io.ColorLevel(), text)
}

func (s *Style) sprint(level int, text string) string {
	if level == 0 {
		return text
	}
	codes := make([]string, 0, 3)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.fg != nil {
		if c := s.fg.sgr(level); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// Theme maps log levels to colours.
type Theme struct {
	Debug, Info, Warning, Error ColorSpec
}

// DefaultTheme picks RGB colours on truecolor terminals and the bright basic
// palette everywhere else.
func DefaultTheme(io *IOManager) Theme { return defaultTheme(io.ColorLevel()) }

func defaultTheme(level int) Theme {
	if level == 3 {
		return Theme{
			Debug:   Truecolor(189, 147, 249),
			Info:    Truecolor(139, 233, 253),
			Warning: Truecolor(255, 184, 108),
			Error:   Truecolor(255, 85, 85),
		}
	}
	return Theme{
		Debug:   BrightMagenta,
		Info:    BrightCyan,
		Warning: BrightYellow,
		Error:   BrightRed,
	}
}
