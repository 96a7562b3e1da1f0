package elements

import (
	"testing"

	"github.com/growler/go-tex"
)

func render(t *testing.T, e tex.Element) string {
	t.Helper()
	s, err := tex.Render(e)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestConstructors(t *testing.T) {
	var tests = []struct {
		elem tex.Element
		want string
	}{
		{T("a & b"), `a \& b`},
		{Raw(`\relax`), `\relax`},
		{DocumentClass("article"), "\\documentclass{article}\n"},
		{DocumentClass("article", "12pt", "a4paper"), "\\documentclass[12pt,a4paper]{article}\n"},
		{UsePackage("graphicx"), "\\usepackage{graphicx}\n"},
		{UsePackage("geometry", "margin=2cm"), "\\usepackage[margin=2cm]{geometry}\n"},
		{Section("Hello, world"), "\\section{Hello, world}\n"},
		{Section(TextBf("Loud & clear")), "\\section{\\textbf{Loud \\& clear}}\n"},
		{Subsection("Details"), "\\subsection{Details}\n"},
		{Document(), "\\begin{document}\n\n\\end{document}\n"},
		{
			// the block child carries its own newline, the environment
			// closes with another one
			Figure("h!", IncludeGraphics("logo.png")),
			"\\begin{figure}[h!]\n\\includegraphics{logo.png}\n\n\\end{figure}\n",
		},
		{
			Figure("", T("no placement")),
			"\\begin{figure}\nno placement\n\\end{figure}\n",
		},
		{
			Minipage(`0.5\textwidth`, T("half wide")),
			"\\begin{minipage}{0.5\\textwidth}\nhalf wide\n\\end{minipage}\n",
		},
		{
			Tabular("l|r", Row("k", "v")),
			"\\begin{tabular}{l|r}\nk & v\\\\\n\n\\end{tabular}\n",
		},
		{
			Tabularx(`\textwidth`, "l|X", Row("a", "b")),
			"\\begin{tabularx}{\\textwidth}{l|X}\na & b\\\\\n\n\\end{tabularx}\n",
		},
		{Row("Sample", "Value"), "Sample & Value\\\\\n"},
		{Row(CellColor("gray"), 42), "\\cellcolor{gray} & 42\\\\\n"},
		{TextBf("bold & brave"), `\textbf{bold \& brave}`},
		{Footnote("see below"), `\footnote{see below}`},
		{Hspace("2em"), `\hspace{2em}`},
		{Vspace("1cm"), "\\vspace{1cm}\n"},
		{
			IncludeGraphics("img/chart_v2.png", `width=0.8\textwidth`),
			"\\includegraphics[width=0.8\\textwidth]{img/chart_v2.png}\n",
		},
		{Newline(), "\\newline\n"},
	}
	for i := range tests {
		got := render(t, tests[i].elem)
		if got != tests[i].want {
			t.Errorf("#%d: expected [%s], got [%s]", i, tests[i].want, got)
		}
	}
}

func TestDocument(t *testing.T) {
	doc := Doc(
		DocumentClass("article"),
		Document(
			Section("Hello, world"),
			"This is fun & easy.",
		),
	)
	const want = "\\documentclass{article}\n" +
		"\\begin{document}\n" +
		"\\section{Hello, world}\n" +
		"This is fun \\& easy.\n" +
		"\\end{document}\n"
	if got := render(t, doc); got != want {
		t.Errorf("expected [%s], got [%s]", want, got)
	}
}

func TestReport(t *testing.T) {
	doc := Doc(
		DocumentClass("article", "12pt"),
		UsePackage("graphicx"),
		UsePackage("colortbl"),
		Document(
			Section("Results"),
			Doc(T("All findings"), Footnote("as of last run"), T(" follow."), Raw("\n")),
			Tabular("l|r",
				Row(TextBf("Case"), TextBf("Share")),
				Row("A & B", "50%"),
				Row(CellColor("gray"), Hspace("1em")),
			),
			Figure("h!",
				IncludeGraphics("charts/trend.png", `width=\textwidth`),
			),
		),
	)
	const want = "\\documentclass[12pt]{article}\n" +
		"\\usepackage{graphicx}\n" +
		"\\usepackage{colortbl}\n" +
		"\\begin{document}\n" +
		"\\section{Results}\n" +
		"All findings\\footnote{as of last run} follow.\n" +
		"\\begin{tabular}{l|r}\n" +
		"\\textbf{Case} & \\textbf{Share}\\\\\n" +
		"A \\& B & 50\\%\\\\\n" +
		"\\cellcolor{gray} & \\hspace{1em}\\\\\n" +
		"\n\\end{tabular}\n" +
		"\\begin{figure}[h!]\n" +
		"\\includegraphics[width=\\textwidth]{charts/trend.png}\n" +
		"\n\\end{figure}\n" +
		"\n\\end{document}\n"
	if got := render(t, doc); got != want {
		t.Errorf("expected [%s], got [%s]", want, got)
	}
}
