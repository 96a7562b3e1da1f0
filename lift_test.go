package tex

import (
	"testing"
)

func TestNumber(t *testing.T) {
	var tests = []struct {
		elem Text
		want string
	}{
		{Number(0), "0"},
		{Number(42), "42"},
		{Number(-17), "-17"},
		{Number(int8(-5)), "-5"},
		{Number(int16(300)), "300"},
		{Number(int32(-70000)), "-70000"},
		{Number(int64(1) << 62), "4611686018427387904"},
		{Number(uint(7)), "7"},
		{Number(uint8(255)), "255"},
		{Number(uint16(65535)), "65535"},
		{Number(uint32(1) << 31), "2147483648"},
		{Number(uint64(1) << 63), "9223372036854775808"},
		{Number(float32(2.5)), "2.5"},
		{Number(3.14), "3.14"},
		{Number(-0.25), "-0.25"},
		{Number(12.0), "12"},
		// canonical form never uses exponent notation
		{Number(1e21), "1000000000000000000000"},
		{Number(0.0000001), "0.0000001"},
	}
	for i := range tests {
		if string(tests[i].elem) != tests[i].want {
			t.Errorf("#%d: expected [%s], got [%s]", i, tests[i].want, tests[i].elem)
		}
	}
}

func TestElem(t *testing.T) {
	var tests = []struct {
		v    any
		want string
	}{
		{nil, ""},
		{"plain & escaped", `plain \& escaped`},
		{Text("already text & escaped"), `already text \& escaped`},
		{Raw(`\LaTeX`), `\LaTeX`},
		{12, "12"},
		{uint8(3), "3"},
		{3.14, "3.14"},
		{float32(1.5), "1.5"},
		{[]Element{Text("a"), Raw("b")}, "ab"},
		{Group{Text("g")}, "g"},
		{&MacroCall{Ident: Raw("par")}, "\\par\n"},
	}
	for i := range tests {
		got, err := Render(Elem(tests[i].v))
		if err != nil {
			t.Errorf("#%d: %s", i, err)
			continue
		}
		if got != tests[i].want {
			t.Errorf("#%d: expected [%s], got [%s]", i, tests[i].want, got)
		}
	}
}

func TestElemIdentity(t *testing.T) {
	m := &MacroCall{Ident: Raw("par")}
	if Elem(m) != Element(m) {
		t.Error("lifting an element must return it unchanged")
	}
}

func TestElemUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unsupported type")
		}
	}()
	Elem(struct{ x int }{})
}

func TestElems(t *testing.T) {
	elems := Elems("a & b", 7, nil, Raw("!"))
	got, err := Render(Group(elems))
	if err != nil {
		t.Fatal(err)
	}
	if want := `a \& b7!`; got != want {
		t.Errorf("expected [%s], got [%s]", want, got)
	}
}
