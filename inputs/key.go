// Package inputs defines the platform-neutral input vocabulary shared by all
// window backends.
package inputs

import "fmt"

// Key is a platform-neutral key identifier. The numeric values follow the
// Win32 virtual-key layout so that table-driven backends can index by them.
type Key uint8

const (
	KeyUnidentified Key = 0x00

	KeyBackSpace Key = 0x08
	KeyTab       Key = 0x09
	KeyClear     Key = 0x0C
	KeyEnter     Key = 0x0D
	KeyShift     Key = 0x10
	KeyCtrl      Key = 0x11
	KeyMenu      Key = 0x12
	KeyPause     Key = 0x13
	KeyCaps      Key = 0x14
	KeyEsc       Key = 0x1B

	KeyConvert    Key = 0x1C
	KeyNonConvert Key = 0x1D
	KeyAccept     Key = 0x1E
	KeyModeChange Key = 0x1F

	KeySpace    Key = 0x20
	KeyPrior    Key = 0x21
	KeyNext     Key = 0x22
	KeyEnd      Key = 0x23
	KeyHome     Key = 0x24
	KeyLeft     Key = 0x25
	KeyUp       Key = 0x26
	KeyRight    Key = 0x27
	KeyDown     Key = 0x28
	KeySelect   Key = 0x29
	KeyPrint    Key = 0x2A
	KeyExecute  Key = 0x2B
	KeySnapshot Key = 0x2C
	KeyInsert   Key = 0x2D
	KeyDelete   Key = 0x2E
	KeyHelp     Key = 0x2F

	KeyDigit0 Key = 0x30
	KeyDigit1 Key = 0x31
	KeyDigit2 Key = 0x32
	KeyDigit3 Key = 0x33
	KeyDigit4 Key = 0x34
	KeyDigit5 Key = 0x35
	KeyDigit6 Key = 0x36
	KeyDigit7 Key = 0x37
	KeyDigit8 Key = 0x38
	KeyDigit9 Key = 0x39

	KeyA Key = 0x41
	KeyB Key = 0x42
	KeyC Key = 0x43
	KeyD Key = 0x44
	KeyE Key = 0x45
	KeyF Key = 0x46
	KeyG Key = 0x47
	KeyH Key = 0x48
	KeyI Key = 0x49
	KeyJ Key = 0x4A
	KeyK Key = 0x4B
	KeyL Key = 0x4C
	KeyM Key = 0x4D
	KeyN Key = 0x4E
	KeyO Key = 0x4F
	KeyP Key = 0x50
	KeyQ Key = 0x51
	KeyR Key = 0x52
	KeyS Key = 0x53
	KeyT Key = 0x54
	KeyU Key = 0x55
	KeyV Key = 0x56
	KeyW Key = 0x57
	KeyX Key = 0x58
	KeyY Key = 0x59
	KeyZ Key = 0x5A

	KeyLWin  Key = 0x5B
	KeyRWin  Key = 0x5C
	KeyApps  Key = 0x5D
	KeySleep Key = 0x5F

	KeyNum0      Key = 0x60
	KeyNum1      Key = 0x61
	KeyNum2      Key = 0x62
	KeyNum3      Key = 0x63
	KeyNum4      Key = 0x64
	KeyNum5      Key = 0x65
	KeyNum6      Key = 0x66
	KeyNum7      Key = 0x67
	KeyNum8      Key = 0x68
	KeyNum9      Key = 0x69
	KeyMultiply  Key = 0x6A
	KeyAdd       Key = 0x6B
	KeySeparator Key = 0x6C
	KeySubtract  Key = 0x6D
	KeyDecimal   Key = 0x6E
	KeyDivide    Key = 0x6F

	KeyF1  Key = 0x70
	KeyF2  Key = 0x71
	KeyF3  Key = 0x72
	KeyF4  Key = 0x73
	KeyF5  Key = 0x74
	KeyF6  Key = 0x75
	KeyF7  Key = 0x76
	KeyF8  Key = 0x77
	KeyF9  Key = 0x78
	KeyF10 Key = 0x79
	KeyF11 Key = 0x7A
	KeyF12 Key = 0x7B
	KeyF13 Key = 0x7C
	KeyF14 Key = 0x7D
	KeyF15 Key = 0x7E
	KeyF16 Key = 0x7F
	KeyF17 Key = 0x80
	KeyF18 Key = 0x81
	KeyF19 Key = 0x82
	KeyF20 Key = 0x83
	KeyF21 Key = 0x84
	KeyF22 Key = 0x85
	KeyF23 Key = 0x86
	KeyF24 Key = 0x87

	KeyNumLock  Key = 0x90
	KeyScroll   Key = 0x91
	KeyNumEqual Key = 0x92

	KeyLShift Key = 0xA0
	KeyRShift Key = 0xA1
	KeyLCtrl  Key = 0xA2
	KeyRCtrl  Key = 0xA3
	KeyLAlt   Key = 0xA4
	KeyRAlt   Key = 0xA5

	KeyVolumeMute Key = 0xAD
	KeyVolumeDown Key = 0xAE
	KeyVolumeUp   Key = 0xAF

	KeyMediaNext  Key = 0xB0
	KeyMediaPause Key = 0xB1
	KeyMediaPrev  Key = 0xB2
	KeyMediaStop  Key = 0xB3

	KeySemicolon Key = 0xBA
	KeyPlus      Key = 0xBB
	KeyComma     Key = 0xBC
	KeyMinus     Key = 0xBD
	KeyPeriod    Key = 0xBE
	KeySlash     Key = 0xBF
	KeyGrave     Key = 0xC0

	KeyBracket Key = 0xE2

	KeyPageDown Key = 0xE3
	KeyPageUp   Key = 0xE4
)

var keyNames = map[Key]string{
	KeyUnidentified: "Unidentified",
	KeyBackSpace:    "BackSpace",
	KeyTab:          "Tab",
	KeyClear:        "Clear",
	KeyEnter:        "Enter",
	KeyShift:        "Shift",
	KeyCtrl:         "Ctrl",
	KeyMenu:         "Menu",
	KeyPause:        "Pause",
	KeyCaps:         "Caps",
	KeyEsc:          "Esc",
	KeyConvert:      "Convert",
	KeyNonConvert:   "NonConvert",
	KeyAccept:       "Accept",
	KeyModeChange:   "ModeChange",
	KeySpace:        "Space",
	KeyPrior:        "Prior",
	KeyNext:         "Next",
	KeyEnd:          "End",
	KeyHome:         "Home",
	KeyLeft:         "Left",
	KeyUp:           "Up",
	KeyRight:        "Right",
	KeyDown:         "Down",
	KeySelect:       "Select",
	KeyPrint:        "Print",
	KeyExecute:      "Execute",
	KeySnapshot:     "Snapshot",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyHelp:         "Help",
	KeyLWin:         "LWin",
	KeyRWin:         "RWin",
	KeyApps:         "Apps",
	KeySleep:        "Sleep",
	KeyMultiply:     "Multiply",
	KeyAdd:          "Add",
	KeySeparator:    "Separator",
	KeySubtract:     "Subtract",
	KeyDecimal:      "Decimal",
	KeyDivide:       "Divide",
	KeyNumLock:      "NumLock",
	KeyScroll:       "Scroll",
	KeyNumEqual:     "NumEqual",
	KeyLShift:       "LShift",
	KeyRShift:       "RShift",
	KeyLCtrl:        "LCtrl",
	KeyRCtrl:        "RCtrl",
	KeyLAlt:         "LAlt",
	KeyRAlt:         "RAlt",
	KeyVolumeMute:   "VolumeMute",
	KeyVolumeDown:   "VolumeDown",
	KeyVolumeUp:     "VolumeUp",
	KeyMediaNext:    "MediaNext",
	KeyMediaPause:   "MediaPause",
	KeyMediaPrev:    "MediaPrev",
	KeyMediaStop:    "MediaStop",
	KeySemicolon:    "Semicolon",
	KeyPlus:         "Plus",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyGrave:        "Grave",
	KeyBracket:      "Bracket",
	KeyPageDown:     "PageDown",
	KeyPageUp:       "PageUp",
}

// Valid reports whether k is one of the named keys.
func (k Key) Valid() bool {
	switch {
	case k >= KeyDigit0 && k <= KeyDigit9,
		k >= KeyA && k <= KeyZ,
		k >= KeyNum0 && k <= KeyNum9,
		k >= KeyF1 && k <= KeyF24:
		return true
	}
	_, ok := keyNames[k]
	return ok
}

func (k Key) String() string {
	switch {
	case k >= KeyDigit0 && k <= KeyDigit9:
		return fmt.Sprintf("Digit%d", k-KeyDigit0)
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyNum0 && k <= KeyNum9:
		return fmt.Sprintf("Num%d", k-KeyNum0)
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%02X)", uint8(k))
}
