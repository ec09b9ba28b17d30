package main

import "strings"

// RFC 3676 flowed-text handling: quote unwrapping, space-stuffing
// removal and soft-break rejoining.

// unquote strips the leading run of ">" markers from a line and reports
// how many were removed as the quote depth.
func unquote(line string) (string, int) {
	depth := 0
	for strings.HasPrefix(line, ">") {
		line = line[1:]
		depth++
	}
	return line, depth
}

// unstuff removes the single leading space added by RFC 3676 stuffing.
func unstuff(line string) string {
	if strings.HasPrefix(line, " ") {
		return line[1:]
	}
	return line
}

// unflow reports whether line ends in a soft break (a trailing space).
// With delsp the soft-break space itself is removed. Empty lines are
// always hard breaks.
func unflow(line string, delsp bool) (string, bool) {
	if len(line) == 0 {
		return line, false
	}
	if strings.HasSuffix(line, " ") {
		if delsp {
			line = line[:len(line)-1]
		}
		return line, true
	}
	return line, false
}

// splitLines splits on CRLF, CR or LF without producing a phantom empty
// line for a trailing terminator.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// unflowText rejoins soft-broken lines across a whole message body.
// Soft-broken continuations are merged into the logical line started by
// the first physical line, which also supplies the quote depth used
// when the logical line is re-prefixed; the continuations lose their
// own quote markers. A trailing unterminated soft break is dropped.
func unflowText(text string, delsp bool) string {
	var out strings.Builder
	var logical strings.Builder
	depth := 0
	open := false
	for _, line := range splitLines(text) {
		line, d := unquote(line)
		line = unstuff(line)
		line, soft := unflow(line, delsp)
		if !open {
			depth = d
			open = true
		}
		logical.WriteString(line)
		if !soft {
			out.WriteString(strings.Repeat(">", depth))
			out.WriteString(logical.String())
			out.WriteByte('\n')
			logical.Reset()
			open = false
		}
	}
	return out.String()
}
