package x11

import (
	"github.com/1broseidon/nativewin/inputs"
	"github.com/BurntSushi/xgb/xproto"
)

// keycodeTable maps X keycodes (evdev scancode + 8, as delivered by the
// evdev and xfree86 keyboard drivers) to neutral keys. Codes without a
// neutral counterpart are left at the zero value, inputs.KeyUnidentified.
var keycodeTable = [256]inputs.Key{
	9:  inputs.KeyEsc,
	10: inputs.KeyDigit1,
	11: inputs.KeyDigit2,
	12: inputs.KeyDigit3,
	13: inputs.KeyDigit4,
	14: inputs.KeyDigit5,
	15: inputs.KeyDigit6,
	16: inputs.KeyDigit7,
	17: inputs.KeyDigit8,
	18: inputs.KeyDigit9,
	19: inputs.KeyDigit0,
	20: inputs.KeyMinus,
	21: inputs.KeyPlus,
	22: inputs.KeyBackSpace,
	23: inputs.KeyTab,
	24: inputs.KeyQ,
	25: inputs.KeyW,
	26: inputs.KeyE,
	27: inputs.KeyR,
	28: inputs.KeyT,
	29: inputs.KeyY,
	30: inputs.KeyU,
	31: inputs.KeyI,
	32: inputs.KeyO,
	33: inputs.KeyP,
	36: inputs.KeyEnter,
	37: inputs.KeyLCtrl,
	38: inputs.KeyA,
	39: inputs.KeyS,
	40: inputs.KeyD,
	41: inputs.KeyF,
	42: inputs.KeyG,
	43: inputs.KeyH,
	44: inputs.KeyJ,
	45: inputs.KeyK,
	46: inputs.KeyL,
	47: inputs.KeySemicolon,
	49: inputs.KeyGrave,
	50: inputs.KeyLShift,
	52: inputs.KeyZ,
	53: inputs.KeyX,
	54: inputs.KeyC,
	55: inputs.KeyV,
	56: inputs.KeyB,
	57: inputs.KeyN,
	58: inputs.KeyM,
	59: inputs.KeyComma,
	60: inputs.KeyPeriod,
	61: inputs.KeySlash,
	62: inputs.KeyRShift,
	63: inputs.KeyMultiply,
	64: inputs.KeyLAlt,
	65: inputs.KeySpace,
	66: inputs.KeyCaps,
	67: inputs.KeyF1,
	68: inputs.KeyF2,
	69: inputs.KeyF3,
	70: inputs.KeyF4,
	71: inputs.KeyF5,
	72: inputs.KeyF6,
	73: inputs.KeyF7,
	74: inputs.KeyF8,
	75: inputs.KeyF9,
	76: inputs.KeyF10,
	77: inputs.KeyNumLock,
	78: inputs.KeyScroll,
	79: inputs.KeyNum7,
	80: inputs.KeyNum8,
	81: inputs.KeyNum9,
	82: inputs.KeySubtract,
	83: inputs.KeyNum4,
	84: inputs.KeyNum5,
	85: inputs.KeyNum6,
	86: inputs.KeyAdd,
	87: inputs.KeyNum1,
	88: inputs.KeyNum2,
	89: inputs.KeyNum3,
	90: inputs.KeyNum0,
	91: inputs.KeyDecimal,
	94: inputs.KeyBracket, // ISO <> key, VK_OEM_102 on Win32
	95: inputs.KeyF11,
	96: inputs.KeyF12,
	100: inputs.KeyConvert,    // Henkan
	102: inputs.KeyNonConvert, // Muhenkan
	104: inputs.KeyEnter,      // KP_Enter
	105: inputs.KeyRCtrl,
	106: inputs.KeyDivide,
	107: inputs.KeySnapshot,
	108: inputs.KeyRAlt,
	110: inputs.KeyHome,
	111: inputs.KeyUp,
	112: inputs.KeyPrior,
	113: inputs.KeyLeft,
	114: inputs.KeyRight,
	115: inputs.KeyEnd,
	116: inputs.KeyDown,
	117: inputs.KeyNext,
	118: inputs.KeyInsert,
	119: inputs.KeyDelete,
	121: inputs.KeyVolumeMute,
	122: inputs.KeyVolumeDown,
	123: inputs.KeyVolumeUp,
	125: inputs.KeyNumEqual,
	127: inputs.KeyPause,
	129: inputs.KeySeparator, // KP_Separator
	133: inputs.KeyLWin,
	134: inputs.KeyRWin,
	135: inputs.KeyApps,
	146: inputs.KeyHelp,
	150: inputs.KeySleep,
	171: inputs.KeyMediaNext,
	172: inputs.KeyMediaPause,
	173: inputs.KeyMediaPrev,
	174: inputs.KeyMediaStop,
	191: inputs.KeyF13,
	192: inputs.KeyF14,
	193: inputs.KeyF15,
	194: inputs.KeyF16,
	195: inputs.KeyF17,
	196: inputs.KeyF18,
	197: inputs.KeyF19,
	198: inputs.KeyF20,
	199: inputs.KeyF21,
	200: inputs.KeyF22,
	201: inputs.KeyF23,
	202: inputs.KeyF24,
}

// TranslateKeycode maps an X keycode to a neutral key.
func TranslateKeycode(code xproto.Keycode) inputs.Key {
	return keycodeTable[code]
}

// KeycodeTable returns a copy of the keycode translation table.
func KeycodeTable() [256]inputs.Key {
	return keycodeTable
}

// Core pointer buttons as numbered by the X server.
const (
	buttonLeft       xproto.Button = 1
	buttonMiddle     xproto.Button = 2
	buttonRight      xproto.Button = 3
	buttonWheelUp    xproto.Button = 4
	buttonWheelDown  xproto.Button = 5
	buttonWheelLeft  xproto.Button = 6
	buttonWheelRight xproto.Button = 7
	// Buttons 8 and up are extra buttons (8 = back, 9 = forward).
	buttonFirstExtra xproto.Button = 8
)

// translateButton maps an X button to a neutral button. ok is false for the
// wheel pseudo-buttons, which are reported separately.
func translateButton(detail xproto.Button) (button inputs.MouseButton, ok bool) {
	switch {
	case detail == buttonLeft:
		return inputs.ButtonLeft, true
	case detail == buttonMiddle:
		return inputs.ButtonMiddle, true
	case detail == buttonRight:
		return inputs.ButtonRight, true
	case detail >= buttonFirstExtra:
		return inputs.CustomButton(uint8(detail - buttonFirstExtra)), true
	default:
		return inputs.MouseButton{}, false
	}
}

// wheelDirection reports the vertical wheel direction encoded by a button
// press. Horizontal wheel buttons are not vertical steps and report false.
func wheelDirection(detail xproto.Button) (inputs.WheelDirection, bool) {
	switch detail {
	case buttonWheelUp:
		return inputs.WheelDirectionFromDelta(1)
	case buttonWheelDown:
		return inputs.WheelDirectionFromDelta(-1)
	default:
		return 0, false
	}
}
