package content

import (
	"strings"
	"unicode"
)

// Terminal stand-ins for the icon set used by the entries. Plain Unicode
// only, so no patched font is needed.
var glyphs = map[string]string{
	"logo-github":     "⌥",
	"logo-linkedin":   "in",
	"logo-instagram":  "◎",
	"logo-twitter":    "✦",
	"logo-facebook":   "f",
	"logo-youtube":    "▶",
	"mail":            "✉",
	"globe":           "◍",
	"logo-react":      "⚛",
	"logo-nodejs":     "⬢",
	"logo-javascript": "JS",
	"logo-html5":      "</>",
	"logo-css3":       "#",
	"logo-python":     "Py",
	"logo-docker":     "▣",
	"git-branch":      "⑂",
	"phone-portrait":  "▯",
	"terminal":        ">_",
}

// Glyph returns the terminal glyph for an icon identifier. Unknown icons fall
// back to the first letter of their name.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	name := strings.TrimPrefix(icon, "logo-")
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}
