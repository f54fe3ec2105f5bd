// Package win32 implements the window backend on top of the Win32 API.
//
// Message and key translation live in files without a build constraint so
// they can be exercised on any host; the window itself is Windows-only.
package win32

import "github.com/1broseidon/nativewin/inputs"

// vkTable maps virtual-key codes to neutral keys. The neutral key space uses
// the virtual-key numbering, so every code with a neutral name maps to
// itself and the rest map to inputs.KeyUnidentified.
var vkTable = func() (t [256]inputs.Key) {
	for vk := range t {
		if k := inputs.Key(vk); k.Valid() {
			t[vk] = k
		}
	}
	return t
}()

// TranslateVirtualKey maps a virtual-key code to a neutral key. Values
// outside the byte range are unidentified.
func TranslateVirtualKey(vk uintptr) inputs.Key {
	if vk > 0xFF {
		return inputs.KeyUnidentified
	}
	return vkTable[vk]
}

// VirtualKeyTable returns a copy of the virtual-key translation table.
func VirtualKeyTable() [256]inputs.Key {
	return vkTable
}
