// Package tex builds LaTeX documents as element trees and renders them to
// byte-exact markup, optionally compiling the result to PDF with [latexmk].
//
// [latexmk]: https://ctan.org/pkg/latexmk
package tex

import (
	"io"
)

// A node of a LaTeX document tree.
//
// The set of implementations is closed: every node is one of [Raw], [Text],
// [OptArgs], [Args], [MacroCall], [BeginEndBlock], [AnonymousBlock], [Group]
// or [TableRow]. Trees are built once and never mutated by rendering, so a
// node may be shared between documents and rendered any number of times with
// identical output.
type Element interface {
	// Writes the LaTeX rendering of the node to w. Rendering itself cannot
	// fail; the only possible errors are those returned by w.
	WriteTex(w io.Writer) error
	element()
}

// Raw LaTeX markup, written to the output verbatim. No escaping and no
// validation of any kind is applied, including UTF-8 well-formedness; the
// caller vouches for the payload. Macro and environment identifiers are
// normally Raw nodes.
type Raw []byte

// Text rendered with all LaTeX special characters escaped. See
// [WriteEscaped] for the exact table.
type Text string

// An optional-argument list. Renders as "[a,b,c]"; an empty list renders
// as nothing at all.
type OptArgs []Element

// A mandatory-argument list. Renders as "{a}{b}{c}", each argument in its
// own brace pair; an empty list renders as nothing at all.
type Args []Element

// A macro invocation, "\ident[opts]{arg}{arg}". The zero value of Inline
// renders the block form with a trailing newline; Inline suppresses it for
// use inside running text.
type MacroCall struct {
	Ident   Element
	OptArgs OptArgs
	Args    Args
	Inline  bool
}

// A "\begin{ident}...\end{ident}" environment. Optional and mandatory
// arguments follow the \begin line; children render between the delimiters
// in order, back to back.
type BeginEndBlock struct {
	Ident    Element
	OptArgs  OptArgs
	Args     Args
	Children []Element
}

// A braced group, "{...}". Children render back to back inside the braces.
type AnonymousBlock []Element

// A transparent sequence: children render back to back with no delimiters
// around or between them. This is how slices of elements lift into a single
// node.
type Group []Element

// A table row: cells joined by " & " and terminated with "\\" and a
// newline.
type TableRow []Element

func (Raw) element()            {}
func (Text) element()           {}
func (OptArgs) element()        {}
func (Args) element()           {}
func (*MacroCall) element()     {}
func (*BeginEndBlock) element() {}
func (AnonymousBlock) element() {}
func (Group) element()          {}
func (TableRow) element()       {}
