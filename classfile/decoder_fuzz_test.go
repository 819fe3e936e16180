package classfile

import (
	"testing"
)

// FuzzDecode feeds arbitrary bytes through the full decoder. Decode must
// return a class file or an error, never panic, on any input.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add(be4(Magic))
	f.Add(helloWorldBytes())

	// Magic plus a pool count with no pool bytes behind it.
	f.Add(cat(be4(Magic), be2(0), be2(52), be2(0xFFFF)))

	// Attribute declaring a 4 GiB body.
	huge := classWithAttrs()
	huge[len(huge)-1] = 1
	f.Add(cat(huge, be2(hwUtf8SourceFile), be4(0xFFFFFFFF)))

	// Truncated fixture at a few interesting offsets.
	hw := helloWorldBytes()
	f.Add(hw[:10])
	f.Add(hw[:len(hw)/2])

	f.Fuzz(func(t *testing.T, data []byte) {
		cf, err := Decode(data)
		if err != nil && cf != nil {
			t.Error("Decode returned both a class file and an error")
		}
		if err == nil && cf == nil {
			t.Error("Decode returned neither a class file nor an error")
		}
	})
}

func FuzzIsClassFile(f *testing.F) {
	f.Add([]byte{})
	f.Add(be4(Magic))
	f.Add(helloWorldBytes())
	f.Fuzz(func(t *testing.T, data []byte) {
		sniffed := IsClassFile(data)
		if _, err := Decode(data); err == nil && !sniffed {
			t.Error("Decode accepted data IsClassFile rejected")
		}
	})
}
