package theme

import (
	"fmt"
	"strings"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape converts v to text and replaces &, <, >, " and ' with HTML entities.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func Escape(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s = val
	case []byte:
		s = string(val)
	default:
		s = fmt.Sprint(val)
	}
	return htmlReplacer.Replace(strings.ToValidUTF8(s, "�"))
}
