package classfile

// Helpers for assembling synthetic class file images in tests. Everything
// is big-endian, mirroring the wire format.

func be2(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func be4(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func cpUtf8(s string) []byte {
	return cat([]byte{1}, be2(uint16(len(s))), []byte(s))
}

func cpClass(nameIndex uint16) []byte {
	return cat([]byte{7}, be2(nameIndex))
}

func cpString(stringIndex uint16) []byte {
	return cat([]byte{8}, be2(stringIndex))
}

func cpNameAndType(nameIndex, descIndex uint16) []byte {
	return cat([]byte{12}, be2(nameIndex), be2(descIndex))
}

func cpMethodRef(classIndex, natIndex uint16) []byte {
	return cat([]byte{10}, be2(classIndex), be2(natIndex))
}

func cpFieldRef(classIndex, natIndex uint16) []byte {
	return cat([]byte{9}, be2(classIndex), be2(natIndex))
}

func cpLong(v int64) []byte {
	return cat([]byte{5}, be4(uint32(uint64(v)>>32)), be4(uint32(uint64(v))))
}

// rawAttr assembles an attribute_info with an uninterpreted body.
func rawAttr(nameIndex uint16, body []byte) []byte {
	return cat(be2(nameIndex), be4(uint32(len(body))), body)
}

// codeAttr assembles a Code attribute_info. handlers are emitted as 4-field
// records; nested holds already-assembled attribute_info images.
func codeAttr(nameIndex, maxStack, maxLocals uint16, code []byte, handlers []ExceptionHandler, nested ...[]byte) []byte {
	body := cat(be2(maxStack), be2(maxLocals), be4(uint32(len(code))), code, be2(uint16(len(handlers))))
	for _, h := range handlers {
		body = cat(body, be2(h.StartPC), be2(h.EndPC), be2(h.HandlerPC), be2(h.CatchType))
	}
	body = cat(body, be2(uint16(len(nested))))
	for _, n := range nested {
		body = cat(body, n)
	}
	return rawAttr(nameIndex, body)
}

// memberInfo assembles a field_info/method_info image.
func memberInfo(flags, nameIndex, descIndex uint16, attrs ...[]byte) []byte {
	out := cat(be2(flags), be2(nameIndex), be2(descIndex), be2(uint16(len(attrs))))
	for _, a := range attrs {
		out = cat(out, a)
	}
	return out
}

// classImage assembles a complete class file from pre-assembled parts.
func classImage(major uint16, cpCount uint16, cpEntries [][]byte, flags, thisClass, superClass uint16, interfaces []uint16, fields, methods, attrs [][]byte) []byte {
	out := cat(be4(Magic), be2(0), be2(major), be2(cpCount))
	for _, e := range cpEntries {
		out = cat(out, e)
	}
	out = cat(out, be2(flags), be2(thisClass), be2(superClass), be2(uint16(len(interfaces))))
	for _, i := range interfaces {
		out = cat(out, be2(i))
	}
	out = cat(out, be2(uint16(len(fields))))
	for _, f := range fields {
		out = cat(out, f)
	}
	out = cat(out, be2(uint16(len(methods))))
	for _, m := range methods {
		out = cat(out, m)
	}
	out = cat(out, be2(uint16(len(attrs))))
	for _, a := range attrs {
		out = cat(out, a)
	}
	return out
}

// Constant pool layout of the HelloWorld fixture. The Long at 18 collapses
// two declared slots, so constant_pool_count 26 yields 25 decoded slots.
const (
	hwUtf8HelloWorld     = 1
	hwClassHelloWorld    = 2
	hwUtf8Object         = 3
	hwClassObject        = 4
	hwUtf8Init           = 5
	hwUtf8VoidDesc       = 6
	hwUtf8Main           = 7
	hwUtf8MainDesc       = 8
	hwUtf8Println        = 9
	hwUtf8PrintlnDesc    = 10
	hwUtf8Code           = 11
	hwUtf8SourceFile     = 12
	hwUtf8SourceName     = 13
	hwUtf8Hello          = 14
	hwStringHello        = 15
	hwNatInit            = 16
	hwMethodRefInit      = 17
	hwLongAnswer         = 18 // slot 19 is the placeholder
	hwUtf8System         = 20
	hwClassSystem        = 21
	hwUtf8Out            = 22
	hwUtf8StreamDesc     = 23
	hwNatOut             = 24
	hwFieldRefOut        = 25
	hwConstantPoolCount  = 26
	hwExpectedPoolLength = 25
)

func helloWorldPool() [][]byte {
	return [][]byte{
		cpUtf8("HelloWorld"),
		cpClass(hwUtf8HelloWorld),
		cpUtf8("java/lang/Object"),
		cpClass(hwUtf8Object),
		cpUtf8("<init>"),
		cpUtf8("()V"),
		cpUtf8("main"),
		cpUtf8("([Ljava/lang/String;)V"),
		cpUtf8("println"),
		cpUtf8("(Ljava/lang/String;)V"),
		cpUtf8("Code"),
		cpUtf8("SourceFile"),
		cpUtf8("HelloWorld.java"),
		cpUtf8("hello"),
		cpString(hwUtf8Hello),
		cpNameAndType(hwUtf8Init, hwUtf8VoidDesc),
		cpMethodRef(hwClassObject, hwNatInit),
		cpLong(42),
		cpUtf8("java/lang/System"),
		cpClass(hwUtf8System),
		cpUtf8("out"),
		cpUtf8("Ljava/io/PrintStream;"),
		cpNameAndType(hwUtf8Out, hwUtf8StreamDesc),
		cpFieldRef(hwClassSystem, hwNatOut),
	}
}

// helloWorldBytes builds the fixture class: major 52, 26-count pool, no
// interfaces or fields, methods <init>/main/println each with one Code
// attribute, and one SourceFile class attribute.
func helloWorldBytes() []byte {
	initMethod := memberInfo(AccPublic, hwUtf8Init, hwUtf8VoidDesc,
		codeAttr(hwUtf8Code, 1, 1, []byte{0x2A, 0xB7, 0x00, hwMethodRefInit, 0xB1}, nil))
	mainMethod := memberInfo(AccPublic|AccStatic, hwUtf8Main, hwUtf8MainDesc,
		codeAttr(hwUtf8Code, 2, 1, []byte{0xB2, 0x00, hwFieldRefOut, 0x12, hwStringHello, 0xB1},
			[]ExceptionHandler{{StartPC: 0, EndPC: 5, HandlerPC: 5, CatchType: hwClassObject}}))
	printlnMethod := memberInfo(AccPublic, hwUtf8Println, hwUtf8PrintlnDesc,
		codeAttr(hwUtf8Code, 1, 2, []byte{0xB1}, nil))

	return classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic|AccSuper, hwClassHelloWorld, hwClassObject,
		nil, nil,
		[][]byte{initMethod, mainMethod, printlnMethod},
		[][]byte{rawAttr(hwUtf8SourceFile, be2(hwUtf8SourceName))})
}
