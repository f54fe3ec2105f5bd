package inputs

import "testing"

func TestMouseButtonAsU8_NamedButtons(t *testing.T) {
	cases := []struct {
		button MouseButton
		want   uint8
	}{
		{ButtonLeft, 0},
		{ButtonRight, 1},
		{ButtonMiddle, 2},
	}
	for _, tc := range cases {
		if got := tc.button.AsU8(); got != tc.want {
			t.Fatalf("%s.AsU8() = %d, want %d", tc.button, got, tc.want)
		}
	}
}

func TestMouseButtonAsU8_CustomIsInjectiveUpToBoundary(t *testing.T) {
	seen := map[uint8]MouseButton{
		ButtonLeft.AsU8():   ButtonLeft,
		ButtonRight.AsU8():  ButtonRight,
		ButtonMiddle.AsU8(): ButtonMiddle,
	}
	for c := 0; c <= MaxCustomButton; c++ {
		b := CustomButton(uint8(c))
		v := b.AsU8()
		if v != uint8(c+3) {
			t.Fatalf("Custom(%d).AsU8() = %d, want %d", c, v, c+3)
		}
		if prev, ok := seen[v]; ok {
			t.Fatalf("Custom(%d) collides with %s at %d", c, prev, v)
		}
		seen[v] = b
	}
}

func TestMouseButtonAsU8_WrapsPastBoundary(t *testing.T) {
	if got := CustomButton(253).AsU8(); got != ButtonLeft.AsU8() {
		t.Fatalf("Custom(253).AsU8() = %d, want wrap to %d", got, ButtonLeft.AsU8())
	}
	if got := CustomButton(255).AsU8(); got != ButtonMiddle.AsU8() {
		t.Fatalf("Custom(255).AsU8() = %d, want wrap to %d", got, ButtonMiddle.AsU8())
	}
	// The values still compare distinct even when their encodings collide.
	if CustomButton(253) == ButtonLeft {
		t.Fatalf("Custom(253) must not equal Left")
	}
}

func TestMouseButtonCustom(t *testing.T) {
	if _, ok := ButtonLeft.Custom(); ok {
		t.Fatalf("Left reported as custom")
	}
	code, ok := CustomButton(7).Custom()
	if !ok || code != 7 {
		t.Fatalf("Custom(7).Custom() = (%d, %v)", code, ok)
	}
}

func TestWheelDirectionFromDelta(t *testing.T) {
	if _, ok := WheelDirectionFromDelta(0); ok {
		t.Fatalf("zero delta must have no direction")
	}
	if d, ok := WheelDirectionFromDelta(120); !ok || d != WheelUp {
		t.Fatalf("positive delta = (%v, %v), want Up", d, ok)
	}
	if d, ok := WheelDirectionFromDelta(-1); !ok || d != WheelDown {
		t.Fatalf("negative delta = (%v, %v), want Down", d, ok)
	}
}

func TestKeyString(t *testing.T) {
	cases := map[Key]string{
		KeyA:            "A",
		KeyZ:            "Z",
		KeyDigit7:       "Digit7",
		KeyNum3:         "Num3",
		KeyF12:          "F12",
		KeyF24:          "F24",
		KeyEsc:          "Esc",
		KeyUnidentified: "Unidentified",
		Key(0xFF):       "Key(0xFF)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Key(0x%02X).String() = %q, want %q", uint8(k), got, want)
		}
	}
}

func TestKeyValid(t *testing.T) {
	for _, k := range []Key{KeyA, KeyF24, KeyNum0, KeyPageUp, KeyUnidentified} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	for _, k := range []Key{0x01, 0x3A, 0xFF} {
		if k.Valid() {
			t.Fatalf("Key(0x%02X) should not be valid", uint8(k))
		}
	}
}
