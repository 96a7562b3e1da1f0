package tex

import (
	"io"
	"strings"
	"unicode/utf8"
)

// LaTeX escapes indexed by byte; an empty entry passes the byte through
// unchanged. Every special is ASCII and multi-byte UTF-8 sequences contain
// no ASCII bytes, so the escape scan works on bytes.
var escapes = [utf8.RuneSelf]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
	'|':  `\textbar{}`,
	'"':  `\textquotedbl{}`,
	'[':  `{[}`,
	']':  `{]}`,
}

// Writes s to w with every LaTeX special character replaced by its escaped
// form. Spans without specials are written in one piece. Note that escaping
// is not idempotent: escaping already-escaped text escapes the backslashes
// again.
func WriteEscaped(w io.Writer, s string) error {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || escapes[c] == "" {
			continue
		}
		if start < i {
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, escapes[c]); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		if _, err := io.WriteString(w, s[start:]); err != nil {
			return err
		}
	}
	return nil
}

// Returns s with every LaTeX special character escaped.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	_ = WriteEscaped(&b, s)
	return b.String()
}
