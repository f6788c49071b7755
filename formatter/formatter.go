package formatter

import (
	"fmt"
)

// Render renders a into a new byte slice, appending '\n' when newline is set.
func Render(a []any, newline bool) []byte {
	return Append(make([]byte, 0, sizeHint(a)), a, newline)
}

// Append renders a onto dst and returns the extended slice.
func Append(dst []byte, a []any, newline bool) []byte {
	if len(a) > 0 {
		if tmpl, ok := a[0].(string); ok {
			if len(a) == 1 {
				dst = append(dst, tmpl...)
			} else {
				dst = fmt.Appendf(dst, tmpl, a[1:]...)
			}
		} else {
			dst = fmt.Append(dst, a...)
		}
	}
	if newline {
		dst = append(dst, '\n')
	}
	return dst
}

// Empty reports whether rendering a without a newline produces no bytes
// without having to render it.
func Empty(a []any) bool {
	if len(a) == 0 {
		return true
	}
	tmpl, ok := a[0].(string)
	return ok && len(a) == 1 && tmpl == ""
}

// sizeHint estimates the rendered size so the common template-only and
// short-template cases allocate once. Rendered bytes are owned by the
// request until its write resolves, so they are never pooled.
func sizeHint(a []any) int {
	n := 1
	if len(a) > 0 {
		if tmpl, ok := a[0].(string); ok {
			n += len(tmpl)
			if len(a) > 1 {
				n += 16 * (len(a) - 1)
			}
		} else {
			n += 16 * len(a)
		}
	}
	return n
}
