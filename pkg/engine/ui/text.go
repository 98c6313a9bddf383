package ui

import "strings"

// MaxTextDepth bounds CollectText's recursion. Tooltips nest a handful of levels in
// practice; anything deeper is treated as malformed and cut off.
const MaxTextDepth = 20

// IsNil reports whether e is nil, including a typed nil pointer stored in the interface.
func IsNil(e Element) bool {
	if e == nil {
		return true
	}
	if n, ok := e.(*Node); ok && n == nil {
		return true
	}
	return false
}

// CollectText concatenates the text of e and all of its descendants depth-first, one line
// per non-empty text, stopping below MaxTextDepth.
func CollectText(e Element) string {
	var b strings.Builder
	collectText(&b, e, 0)
	return b.String()
}

func collectText(b *strings.Builder, e Element, depth int) {
	if IsNil(e) || depth > MaxTextDepth {
		return
	}
	if t := e.Text(); t != "" {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	for _, child := range e.Children() {
		collectText(b, child, depth+1)
	}
}

// Child returns the i-th child of e, or false if e has no such child.
func Child(e Element, i int) (Element, bool) {
	if IsNil(e) || i < 0 {
		return nil, false
	}
	kids := e.Children()
	if i >= len(kids) || IsNil(kids[i]) {
		return nil, false
	}
	return kids[i], true
}
