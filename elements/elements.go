// Package elements provides one short constructor per common LaTeX form.
// Value arguments are lifted with [tex.Elem], so strings, numbers, nodes
// and node slices mix freely:
//
//	elements.Doc(
//		elements.DocumentClass("article", "12pt"),
//		elements.Document(
//			elements.Section("Hello, world"),
//			"This is fun & easy.",
//		),
//	)
//
// Slots that hold LaTeX code rather than prose (lengths, column specs,
// colors, graphics paths and options) keep string input unescaped; the
// individual constructors say so.
package elements

import "github.com/growler/go-tex"

// Code-valued slots keep strings raw so lengths like 0.5\textwidth and
// column specs like l|r survive.
func rawArg(v any) tex.Element {
	if s, ok := v.(string); ok {
		return tex.Raw(s)
	}
	return tex.Elem(v)
}

func rawArgs(vs []any) []tex.Element {
	elems := make([]tex.Element, len(vs))
	for i, v := range vs {
		elems[i] = rawArg(v)
	}
	return elems
}

// Escaped text (string)
func T(s string) tex.Text {
	return tex.Text(s)
}

// Raw, unescaped LaTeX markup (string)
func Raw(s string) tex.Raw {
	return tex.Raw(s)
}

// Document root: a transparent sequence of elements
func Doc(children ...any) tex.Group {
	return tex.Group(tex.Elems(children...))
}

// \documentclass[opts]{class}
func DocumentClass(class string, opts ...any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:   tex.Raw("documentclass"),
		OptArgs: tex.OptArgs(tex.Elems(opts...)),
		Args:    tex.Args{tex.Text(class)},
	}
}

// \usepackage[opts]{pkg}
func UsePackage(pkg string, opts ...any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:   tex.Raw("usepackage"),
		OptArgs: tex.OptArgs(tex.Elems(opts...)),
		Args:    tex.Args{tex.Text(pkg)},
	}
}

// \begin{document} ... \end{document}
func Document(children ...any) *tex.BeginEndBlock {
	return &tex.BeginEndBlock{
		Ident:    tex.Raw("document"),
		Children: tex.Elems(children...),
	}
}

// \section{title}
func Section(title any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident: tex.Raw("section"),
		Args:  tex.Args{tex.Elem(title)},
	}
}

// \subsection{title}
func Subsection(title any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident: tex.Raw("subsection"),
		Args:  tex.Args{tex.Elem(title)},
	}
}

// \begin{figure}[placement] ... \end{figure}. The placement is raw
// markup; pass "" for none.
func Figure(placement string, children ...any) *tex.BeginEndBlock {
	b := &tex.BeginEndBlock{
		Ident:    tex.Raw("figure"),
		Children: tex.Elems(children...),
	}
	if placement != "" {
		b.OptArgs = tex.OptArgs{tex.Raw(placement)}
	}
	return b
}

// \begin{minipage}{width} ... \end{minipage}. A string width is raw
// markup.
func Minipage(width any, children ...any) *tex.BeginEndBlock {
	return &tex.BeginEndBlock{
		Ident:    tex.Raw("minipage"),
		Args:     tex.Args{rawArg(width)},
		Children: tex.Elems(children...),
	}
}

// \begin{tabular}{colspec} ... \end{tabular}. A string colspec is raw
// markup.
func Tabular(colspec any, children ...any) *tex.BeginEndBlock {
	return &tex.BeginEndBlock{
		Ident:    tex.Raw("tabular"),
		Args:     tex.Args{rawArg(colspec)},
		Children: tex.Elems(children...),
	}
}

// \begin{tabularx}{width}{colspec} ... \end{tabularx}. String width and
// colspec are raw markup.
func Tabularx(width, colspec any, children ...any) *tex.BeginEndBlock {
	return &tex.BeginEndBlock{
		Ident:    tex.Raw("tabularx"),
		Args:     tex.Args{rawArg(width), rawArg(colspec)},
		Children: tex.Elems(children...),
	}
}

// Table row: cells joined by " & ", terminated with \\
func Row(cells ...any) tex.TableRow {
	return tex.TableRow(tex.Elems(cells...))
}

// \textbf{content} (inline)
func TextBf(content any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:  tex.Raw("textbf"),
		Args:   tex.Args{tex.Elem(content)},
		Inline: true,
	}
}

// \footnote{content} (inline)
func Footnote(content any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:  tex.Raw("footnote"),
		Args:   tex.Args{tex.Elem(content)},
		Inline: true,
	}
}

// \cellcolor{color} (inline, needs the colortbl package). A string color
// is raw markup.
func CellColor(color any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:  tex.Raw("cellcolor"),
		Args:   tex.Args{rawArg(color)},
		Inline: true,
	}
}

// \hspace{length} (inline). A string length is raw markup.
func Hspace(length any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:  tex.Raw("hspace"),
		Args:   tex.Args{rawArg(length)},
		Inline: true,
	}
}

// \vspace{length}. A string length is raw markup.
func Vspace(length any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident: tex.Raw("vspace"),
		Args:  tex.Args{rawArg(length)},
	}
}

// \includegraphics[opts]{path}. The path and string options are raw
// markup: escaping a file name would corrupt the reference.
func IncludeGraphics(path string, opts ...any) *tex.MacroCall {
	return &tex.MacroCall{
		Ident:   tex.Raw("includegraphics"),
		OptArgs: tex.OptArgs(rawArgs(opts)),
		Args:    tex.Args{tex.Raw(path)},
	}
}

// \newline
func Newline() *tex.MacroCall {
	return &tex.MacroCall{Ident: tex.Raw("newline")}
}
