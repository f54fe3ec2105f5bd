package inputs

import "fmt"

type buttonKind uint8

const (
	buttonLeft buttonKind = iota
	buttonRight
	buttonMiddle
	buttonCustom
)

// MouseButton identifies a pointer button. The three named buttons are
// package values; anything else is a caller-defined custom code.
type MouseButton struct {
	kind buttonKind
	code uint8
}

var (
	ButtonLeft   = MouseButton{kind: buttonLeft}
	ButtonRight  = MouseButton{kind: buttonRight}
	ButtonMiddle = MouseButton{kind: buttonMiddle}
)

// MaxCustomButton is the largest custom code that AsU8 encodes without
// colliding with a named button.
const MaxCustomButton = 252

// CustomButton returns the custom button with the given code.
func CustomButton(code uint8) MouseButton {
	return MouseButton{kind: buttonCustom, code: code}
}

// Custom returns the custom code and true if b is a custom button.
func (b MouseButton) Custom() (uint8, bool) {
	return b.code, b.kind == buttonCustom
}

// AsU8 encodes the button as a single byte: Left=0, Right=1, Middle=2 and
// custom code c as c+3. The addition wraps, so codes above MaxCustomButton
// alias the named buttons (custom 253 encodes as 0, same as Left).
func (b MouseButton) AsU8() uint8 {
	switch b.kind {
	case buttonLeft:
		return 0
	case buttonRight:
		return 1
	case buttonMiddle:
		return 2
	default:
		return b.code + 3
	}
}

func (b MouseButton) String() string {
	switch b.kind {
	case buttonLeft:
		return "Left"
	case buttonRight:
		return "Right"
	case buttonMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("Custom(%d)", b.code)
	}
}

// WheelDirection is the direction of a vertical wheel step.
type WheelDirection int8

const (
	WheelUp   WheelDirection = 1
	WheelDown WheelDirection = -1
)

// WheelDirectionFromDelta flattens a signed wheel delta. A zero delta has no
// direction and reports false.
func WheelDirectionFromDelta(delta int) (WheelDirection, bool) {
	switch {
	case delta > 0:
		return WheelUp, true
	case delta < 0:
		return WheelDown, true
	default:
		return 0, false
	}
}

func (d WheelDirection) String() string {
	switch d {
	case WheelUp:
		return "Up"
	case WheelDown:
		return "Down"
	default:
		return fmt.Sprintf("WheelDirection(%d)", int8(d))
	}
}
