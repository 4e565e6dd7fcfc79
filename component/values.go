package component

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned by the Parse* helpers for malformed input.
var ErrInvalidValue = errors.New("invalid value")

// Alignment places a child inside its layout slot. It combines one vertical
// and one horizontal bit.
type Alignment uint8

const (
	alignLeft Alignment = 1 << iota
	alignRight
	alignCenter
	alignTop
	alignBottom
	alignMiddle
)

const (
	TopLeft      = alignTop | alignLeft
	TopCenter    = alignTop | alignCenter
	TopRight     = alignTop | alignRight
	MiddleLeft   = alignMiddle | alignLeft
	MiddleCenter = alignMiddle | alignCenter
	MiddleRight  = alignMiddle | alignRight
	BottomLeft   = alignBottom | alignLeft
	BottomCenter = alignBottom | alignCenter
	BottomRight  = alignBottom | alignRight
)

var alignmentWords = map[string]Alignment{
	"left":   alignLeft,
	"right":  alignRight,
	"center": alignCenter,
	"top":    alignTop,
	"bottom": alignBottom,
	"middle": alignMiddle,
}

// ParseAlignment accepts "middle_center", "MIDDLE_CENTER", "middle center"
// or "middle-center". A missing axis defaults to top or left.
func ParseAlignment(s string) (Alignment, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(fields) == 0 || len(fields) > 2 {
		return 0, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
	}
	var a Alignment
	for _, f := range fields {
		bit, ok := alignmentWords[f]
		if !ok {
			return 0, fmt.Errorf("%w: unknown alignment word %q", ErrInvalidValue, f)
		}
		if a&bit != 0 || (a.vertical() != 0 && bit.vertical() != 0) || (a.horizontal() != 0 && bit.horizontal() != 0) {
			return 0, fmt.Errorf("%w: alignment %q sets an axis twice", ErrInvalidValue, s)
		}
		a |= bit
	}
	if a.vertical() == 0 {
		a |= alignTop
	}
	if a.horizontal() == 0 {
		a |= alignLeft
	}
	return a, nil
}

func (a Alignment) vertical() Alignment   { return a & (alignTop | alignBottom | alignMiddle) }
func (a Alignment) horizontal() Alignment { return a & (alignLeft | alignRight | alignCenter) }

func (a Alignment) IsTop() bool    { return a&alignTop != 0 }
func (a Alignment) IsMiddle() bool { return a&alignMiddle != 0 }
func (a Alignment) IsBottom() bool { return a&alignBottom != 0 }
func (a Alignment) IsLeft() bool   { return a&alignLeft != 0 }
func (a Alignment) IsCenter() bool { return a&alignCenter != 0 }
func (a Alignment) IsRight() bool  { return a&alignRight != 0 }

func (a Alignment) String() string {
	var v, h string
	for word, bit := range alignmentWords {
		switch bit {
		case a.vertical():
			v = word
		case a.horizontal():
			h = word
		}
	}
	if v == "" || h == "" {
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
	return v + "_" + h
}

// Unit is the measuring unit of a Size.
type Unit int

const (
	UnitUndefined Unit = iota
	UnitPixels
	UnitPercentage
	UnitEm
	UnitPoints
)

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPixels},
	{"%", UnitPercentage},
	{"em", UnitEm},
	{"pt", UnitPoints},
}

// Size is a dimension such as a width, height or an offset.
type Size struct {
	Value float64
	Unit  Unit
}

// Full is 100%.
var Full = Size{Value: 100, Unit: UnitPercentage}

// Undefined lets the component size itself.
var Undefined = Size{Value: -1, Unit: UnitUndefined}

// Pixels is a shorthand for a pixel size.
func Pixels(v float64) Size { return Size{Value: v, Unit: UnitPixels} }

// Percentage is a shorthand for a relative size.
func Percentage(v float64) Size { return Size{Value: v, Unit: UnitPercentage} }

// ParseSize reads "120px", "50%", "2.5em", "10pt", a bare number (pixels),
// or "" / "-1" / "auto" for an undefined size.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "-1" || s == "auto" {
		return Undefined, nil
	}
	unit := UnitPixels
	num := s
	for _, u := range unitSuffixes {
		if strings.HasSuffix(s, u.suffix) {
			unit = u.unit
			num = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: size %q", ErrInvalidValue, s)
	}
	if v < 0 {
		return Undefined, nil
	}
	return Size{Value: v, Unit: unit}, nil
}

// IsDefined reports whether the size carries a value.
func (s Size) IsDefined() bool { return s.Unit != UnitUndefined && s.Value >= 0 }

func (s Size) String() string {
	if !s.IsDefined() {
		return ""
	}
	num := strconv.FormatFloat(s.Value, 'f', -1, 64)
	for _, u := range unitSuffixes {
		if u.unit == s.Unit {
			return num + u.suffix
		}
	}
	return num
}

// ResourceKind tells where a Resource is served from.
type ResourceKind int

const (
	ThemeResource ResourceKind = iota + 1
	ExternalResource
	FileResource
)

// Resource is an icon or image reference.
type Resource struct {
	Kind     ResourceKind
	Location string
}

// ParseResource maps "theme://icons/ok.png", "https://..." and "file://..."
// to resources.
func ParseResource(s string) (Resource, error) {
	switch {
	case strings.HasPrefix(s, "theme://"):
		return Resource{Kind: ThemeResource, Location: strings.TrimPrefix(s, "theme://")}, nil
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return Resource{Kind: ExternalResource, Location: s}, nil
	case strings.HasPrefix(s, "file://"):
		return Resource{Kind: FileResource, Location: strings.TrimPrefix(s, "file://")}, nil
	}
	return Resource{}, fmt.Errorf("%w: resource %q needs a theme://, file:// or http(s):// prefix", ErrInvalidValue, s)
}

func (r Resource) String() string {
	switch r.Kind {
	case ThemeResource:
		return "theme://" + r.Location
	case FileResource:
		return "file://" + r.Location
	}
	return r.Location
}

// Position places a child inside an AbsoluteLayout.
type Position struct {
	Top, Right, Bottom, Left Size
	ZIndex                   int
}

// ParsePosition reads a CSS-like declaration list such as
// "top: 10px; left: 25%; z-index: 2". Offsets that are not mentioned stay
// undefined.
func ParsePosition(s string) (Position, error) {
	p := Position{Top: Undefined, Right: Undefined, Bottom: Undefined, Left: Undefined, ZIndex: -1}
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			return Position{}, fmt.Errorf("%w: position declaration %q", ErrInvalidValue, decl)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "z-index" {
			z, err := strconv.Atoi(value)
			if err != nil {
				return Position{}, fmt.Errorf("%w: z-index %q", ErrInvalidValue, value)
			}
			p.ZIndex = z
			continue
		}
		size, err := ParseSize(value)
		if err != nil {
			return Position{}, err
		}
		switch key {
		case "top":
			p.Top = size
		case "right":
			p.Right = size
		case "bottom":
			p.Bottom = size
		case "left":
			p.Left = size
		default:
			return Position{}, fmt.Errorf("%w: unknown position property %q", ErrInvalidValue, key)
		}
	}
	return p, nil
}

func (p Position) String() string {
	var parts []string
	for _, side := range []struct {
		name string
		size Size
	}{{"top", p.Top}, {"right", p.Right}, {"bottom", p.Bottom}, {"left", p.Left}} {
		if side.size.IsDefined() {
			parts = append(parts, side.name+": "+side.size.String())
		}
	}
	if p.ZIndex >= 0 {
		parts = append(parts, "z-index: "+strconv.Itoa(p.ZIndex))
	}
	return strings.Join(parts, "; ")
}

// ContentMode controls how a Label renders its value.
type ContentMode int

const (
	ContentText ContentMode = iota
	ContentPreformatted
	ContentHTML
)

func (m ContentMode) String() string {
	switch m {
	case ContentText:
		return "TEXT"
	case ContentPreformatted:
		return "PREFORMATTED"
	case ContentHTML:
		return "HTML"
	}
	return fmt.Sprintf("ContentMode(%d)", int(m))
}

// EnumValues lists every ContentMode; layouts refer to them by name.
func (ContentMode) EnumValues() []ContentMode {
	return []ContentMode{ContentText, ContentPreformatted, ContentHTML}
}

// Resolution is the finest date part a DateField lets the user pick.
type Resolution int

const (
	ResolutionDay Resolution = iota
	ResolutionMonth
	ResolutionYear
	ResolutionMinute
)

func (r Resolution) String() string {
	switch r {
	case ResolutionDay:
		return "DAY"
	case ResolutionMonth:
		return "MONTH"
	case ResolutionYear:
		return "YEAR"
	case ResolutionMinute:
		return "MINUTE"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

func (Resolution) EnumValues() []Resolution {
	return []Resolution{ResolutionDay, ResolutionMonth, ResolutionYear, ResolutionMinute}
}
