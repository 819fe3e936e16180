package classfile

import (
	"bytes"
	stderrors "errors"
	"testing"

	cperr "github.com/javabin/jclass/errors"
)

// classWithAttrs builds a minimal class carrying the given class-level
// attribute images.
func classWithAttrs(attrs ...[]byte) []byte {
	return classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject, nil, nil, nil, attrs)
}

func TestUnknownAttributeConsumesDeclaredLength(t *testing.T) {
	// An unrecognized body full of junk must not desynchronize the cursor:
	// the attribute after it still decodes.
	junk := rawAttr(hwUtf8SourceFile, []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB})
	source := rawAttr(hwUtf8SourceFile, be2(hwUtf8SourceName))
	cf, err := Decode(classWithAttrs(junk, source))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(cf.Attributes) != 2 {
		t.Fatalf("Attributes length = %d, want 2", len(cf.Attributes))
	}
	first, ok := cf.Attributes[0].(*RawAttribute)
	if !ok {
		t.Fatalf("attribute 0 type = %T, want *RawAttribute", cf.Attributes[0])
	}
	if !bytes.Equal(first.Data, []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB}) {
		t.Errorf("attribute 0 body = %v", first.Data)
	}
	second, ok := cf.Attributes[1].(*RawAttribute)
	if !ok {
		t.Fatalf("attribute 1 type = %T, want *RawAttribute", cf.Attributes[1])
	}
	if !bytes.Equal(second.Data, be2(hwUtf8SourceName)) {
		t.Errorf("attribute 1 body = %v", second.Data)
	}
}

func TestEmptyAttributeBody(t *testing.T) {
	cf, err := Decode(classWithAttrs(rawAttr(hwUtf8SourceFile, nil)))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	raw := cf.Attributes[0].(*RawAttribute)
	if len(raw.Data) != 0 {
		t.Errorf("body length = %d, want 0", len(raw.Data))
	}
}

func TestCodeAttributeNested(t *testing.T) {
	// A Code attribute carrying a nested raw attribute inside its own body.
	nested := rawAttr(hwUtf8SourceFile, []byte{0x01, 0x02})
	code := codeAttr(hwUtf8Code, 3, 4, []byte{0xB1}, nil, nested)
	method := memberInfo(AccPublic, hwUtf8Main, hwUtf8MainDesc, code)
	img := classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject,
		nil, nil, [][]byte{method}, nil)

	cf, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, ok := cf.MethodByName("main")
	if !ok {
		t.Fatal("MethodByName(main) not found")
	}
	c := m.Code()
	if c == nil {
		t.Fatal("Code() = nil")
	}
	if c.MaxStack != 3 || c.MaxLocals != 4 {
		t.Errorf("frame = %d/%d, want 3/4", c.MaxStack, c.MaxLocals)
	}
	if c.AttributeName() != "Code" {
		t.Errorf("AttributeName() = %q", c.AttributeName())
	}
	if len(c.Attributes) != 1 {
		t.Fatalf("nested attributes length = %d, want 1", len(c.Attributes))
	}
	inner, ok := c.Attributes[0].(*RawAttribute)
	if !ok {
		t.Fatalf("nested attribute type = %T, want *RawAttribute", c.Attributes[0])
	}
	if !bytes.Equal(inner.Data, []byte{0x01, 0x02}) {
		t.Errorf("nested body = %v", inner.Data)
	}
}

func TestCodeAttributeTruncatedBody(t *testing.T) {
	// Declared length shorter than the structure it claims to contain: the
	// body read succeeds, the structural parse inside it fails.
	body := cat(be2(1), be2(1), be4(9)) // code_length 9, zero code bytes follow
	code := rawAttr(hwUtf8Code, body)
	method := memberInfo(AccPublic, hwUtf8Main, hwUtf8MainDesc, code)
	img := classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject,
		nil, nil, [][]byte{method}, nil)

	_, err := Decode(img)
	if !stderrors.Is(err, &cperr.Error{Phase: cperr.PhaseCode, Kind: cperr.KindUnexpectedEOF}) {
		t.Fatalf("Decode() error = %v, want code-phase unexpected end of input", err)
	}
}

func TestAttributeNameNotUtf8(t *testing.T) {
	// attribute_name_index pointing at a Class entry.
	_, err := Decode(classWithAttrs(rawAttr(hwClassObject, nil)))
	if !stderrors.Is(err, &cperr.Error{Phase: cperr.PhaseResolve, Kind: cperr.KindUnexpectedItem}) {
		t.Fatalf("Decode() error = %v, want unexpected item", err)
	}
}

func TestAttributeNameOutOfBounds(t *testing.T) {
	_, err := Decode(classWithAttrs(rawAttr(200, nil)))
	if !stderrors.Is(err, &cperr.Error{Phase: cperr.PhaseResolve, Kind: cperr.KindOutOfBounds}) {
		t.Fatalf("Decode() error = %v, want index out of bounds", err)
	}
}

func TestAttributeBodyShorterThanDeclared(t *testing.T) {
	// Length claims 100 bytes but the file ends after 2.
	short := cat(be2(hwUtf8SourceFile), be4(100), []byte{0x00, 0x0D})
	img := classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject, nil, nil, nil, nil)
	// Patch attributes_count from 0 to 1 and append the short attribute.
	img[len(img)-1] = 1
	img = cat(img, short)

	_, err := Decode(img)
	if !stderrors.Is(err, &cperr.Error{Phase: cperr.PhaseAttribute, Kind: cperr.KindUnexpectedEOF}) {
		t.Fatalf("Decode() error = %v, want attribute-phase unexpected end of input", err)
	}
}

func TestExceptionHandlerCatchAll(t *testing.T) {
	code := codeAttr(hwUtf8Code, 1, 1, []byte{0xB1},
		[]ExceptionHandler{
			{StartPC: 0, EndPC: 1, HandlerPC: 1, CatchType: 0},
			{StartPC: 0, EndPC: 1, HandlerPC: 1, CatchType: hwClassObject},
		})
	method := memberInfo(AccPublic, hwUtf8Main, hwUtf8MainDesc, code)
	img := classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject,
		nil, nil, [][]byte{method}, nil)

	cf, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, _ := cf.MethodByName("main")
	table := m.Code().ExceptionTable
	if len(table) != 2 {
		t.Fatalf("exception table length = %d, want 2", len(table))
	}
	if !table[0].CatchAll() {
		t.Error("handler 0 CatchAll() = false, want true")
	}
	if table[1].CatchAll() {
		t.Error("handler 1 CatchAll() = true, want false")
	}
}

func TestMethodWithoutCode(t *testing.T) {
	method := memberInfo(AccPublic|AccAbstract, hwUtf8Main, hwUtf8MainDesc)
	img := classImage(52, hwConstantPoolCount, helloWorldPool(),
		AccPublic, hwClassHelloWorld, hwClassObject,
		nil, nil, [][]byte{method}, nil)

	cf, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, _ := cf.MethodByName("main")
	if m.Code() != nil {
		t.Error("Code() != nil for method without a Code attribute")
	}
}

func TestFlagNames(t *testing.T) {
	got := ClassFlagNames(AccPublic | AccFinal | AccSuper)
	want := []string{"public", "final", "super"}
	if len(got) != len(want) {
		t.Fatalf("ClassFlagNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ClassFlagNames() = %v, want %v", got, want)
		}
	}

	m := MethodFlagNames(AccPublic | AccStatic | AccSynchronized)
	wantM := []string{"public", "static", "synchronized"}
	if len(m) != len(wantM) {
		t.Fatalf("MethodFlagNames() = %v, want %v", m, wantM)
	}
	for i := range wantM {
		if m[i] != wantM[i] {
			t.Fatalf("MethodFlagNames() = %v, want %v", m, wantM)
		}
	}
}

func TestJavaRelease(t *testing.T) {
	tests := []struct {
		major uint16
		want  string
	}{
		{45, "Java 1.1"},
		{48, "Java 1.4"},
		{49, "Java 5"},
		{52, "Java 8"},
		{61, "Java 17"},
		{65, "Java 21"},
		{44, "unknown"},
		{0, "unknown"},
	}
	for _, tt := range tests {
		if got := JavaRelease(tt.major); got != tt.want {
			t.Errorf("JavaRelease(%d) = %q, want %q", tt.major, got, tt.want)
		}
	}
}
