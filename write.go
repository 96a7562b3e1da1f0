package tex

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

// interface check

var _ []Element = []Element{
	Raw(nil),
	Text(""),
	OptArgs(nil),
	Args(nil),
	&MacroCall{},
	&BeginEndBlock{},
	AnonymousBlock(nil),
	Group(nil),
	TableRow(nil),
}

// ErrInvalidUTF8 is returned by [Render] when the rendered bytes are not
// well-formed UTF-8. Only a [Raw] payload can cause this.
var ErrInvalidUTF8 = errors.New("tex: rendered document is not valid UTF-8")

// Renders the element to a string. Rendering into memory cannot fail, so
// the only possible error is [ErrInvalidUTF8].
func Render(e Element) (string, error) {
	var b bytes.Buffer
	if err := e.WriteTex(&b); err != nil {
		return "", err
	}
	if !utf8.Valid(b.Bytes()) {
		return "", ErrInvalidUTF8
	}
	return b.String(), nil
}

// Writes every element of elems to w in order, with sep between
// consecutive elements.
func writeList(w io.Writer, sep string, elems []Element) error {
	for i, e := range elems {
		if i > 0 && sep != "" {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if err := e.WriteTex(w); err != nil {
			return err
		}
	}
	return nil
}

func (r Raw) WriteTex(w io.Writer) error {
	_, err := w.Write(r)
	return err
}

func (t Text) WriteTex(w io.Writer) error {
	return WriteEscaped(w, string(t))
}

func (o OptArgs) WriteTex(w io.Writer) error {
	if len(o) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	if err := writeList(w, ",", o); err != nil {
		return err
	}
	_, err := io.WriteString(w, "]")
	return err
}

func (a Args) WriteTex(w io.Writer) error {
	if len(a) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	if err := writeList(w, "}{", a); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (m *MacroCall) WriteTex(w io.Writer) error {
	if _, err := io.WriteString(w, `\`); err != nil {
		return err
	}
	if err := m.Ident.WriteTex(w); err != nil {
		return err
	}
	if err := m.OptArgs.WriteTex(w); err != nil {
		return err
	}
	if err := m.Args.WriteTex(w); err != nil {
		return err
	}
	if m.Inline {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (b *BeginEndBlock) WriteTex(w io.Writer) error {
	if _, err := io.WriteString(w, `\begin{`); err != nil {
		return err
	}
	if err := b.Ident.WriteTex(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "}"); err != nil {
		return err
	}
	if err := b.OptArgs.WriteTex(w); err != nil {
		return err
	}
	if err := b.Args.WriteTex(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := writeList(w, "", b.Children); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n\\end{"); err != nil {
		return err
	}
	if err := b.Ident.WriteTex(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func (a AnonymousBlock) WriteTex(w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	if err := writeList(w, "", a); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (g Group) WriteTex(w io.Writer) error {
	return writeList(w, "", g)
}

func (t TableRow) WriteTex(w io.Writer) error {
	if err := writeList(w, " & ", t); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\\\\\n")
	return err
}
