package classfile

import "fmt"

// Magic is the 4-byte sentinel every class file starts with.
const Magic uint32 = 0xCAFEBABE

// Class access and property flags.
const (
	AccPublic     uint16 = 0x0001
	AccPrivate    uint16 = 0x0002
	AccProtected  uint16 = 0x0004
	AccStatic     uint16 = 0x0008
	AccFinal      uint16 = 0x0010
	AccSuper      uint16 = 0x0020 // class: treat superclass methods specially
	AccVolatile   uint16 = 0x0040
	AccTransient  uint16 = 0x0080
	AccNative     uint16 = 0x0100
	AccInterface  uint16 = 0x0200
	AccAbstract   uint16 = 0x0400
	AccStrict     uint16 = 0x0800
	AccSynthetic  uint16 = 0x1000
	AccAnnotation uint16 = 0x2000
	AccEnum       uint16 = 0x4000
)

// Method-only interpretations of shared flag bits.
const (
	AccSynchronized uint16 = 0x0020
	AccBridge       uint16 = 0x0040
	AccVarargs      uint16 = 0x0080
)

var classFlagNames = []struct {
	flag uint16
	name string
}{
	{AccPublic, "public"},
	{AccFinal, "final"},
	{AccSuper, "super"},
	{AccInterface, "interface"},
	{AccAbstract, "abstract"},
	{AccSynthetic, "synthetic"},
	{AccAnnotation, "annotation"},
	{AccEnum, "enum"},
}

var methodFlagNames = []struct {
	flag uint16
	name string
}{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccSynchronized, "synchronized"},
	{AccBridge, "bridge"},
	{AccVarargs, "varargs"},
	{AccNative, "native"},
	{AccAbstract, "abstract"},
	{AccStrict, "strictfp"},
	{AccSynthetic, "synthetic"},
}

// ClassFlagNames formats a class access_flags bitmask as keyword names.
func ClassFlagNames(flags uint16) []string {
	var names []string
	for _, f := range classFlagNames {
		if flags&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

// MethodFlagNames formats a method access_flags bitmask as keyword names.
func MethodFlagNames(flags uint16) []string {
	var names []string
	for _, f := range methodFlagNames {
		if flags&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

// JavaRelease maps a major version number to the Java release that produces
// it ("Java 8" for major 52). Majors 45-48 predate the modern numbering.
func JavaRelease(major uint16) string {
	switch {
	case major >= 49:
		return fmt.Sprintf("Java %d", major-44)
	case major >= 45:
		return fmt.Sprintf("Java 1.%d", major-44)
	default:
		return "unknown"
	}
}
