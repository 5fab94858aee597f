package site

import (
	"fmt"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

// Locale classes toggled by the page script. Exactly one of them is visible
// at a time.
const (
	classEN = "lang-en"
	classZH = "lang-zh"
)

// Bilingual renders both locales as sibling spans. Plain values pass through
// verbatim. Text is trusted markup and is not escaped.
func Bilingual(v content.BilingualText) string {
	if !v.IsPair() {
		return v.Plain
	}
	return fmt.Sprintf(`<span class="%s">%s</span><span class="%s">%s</span>`, classEN, v.EN, classZH, v.ZH)
}

// BilingualBlock renders each locale in its own block element, for content
// that needs paragraph semantics.
func BilingualBlock(tag, class string, v content.BilingualText) string {
	return fmt.Sprintf("<%s class=\"%s %s\">%s</%s>\n%s<%s class=\"%s %s\">%s</%s>",
		tag, class, classEN, v.English(), tag,
		indent(5),
		tag, class, classZH, v.Chinese(), tag)
}
