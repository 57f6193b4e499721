package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy strips all markup, leaving text content only
	StrictPolicy *bluemonday.Policy
	// BodyPolicy for user-authored email body HTML
	BodyPolicy *bluemonday.Policy
)

func init() {
	StrictPolicy = bluemonday.StrictPolicy()

	BodyPolicy = bluemonday.UGCPolicy()

	// Elements commonly produced by the composer's rich-text editor
	BodyPolicy.AllowElements("p", "br", "div", "span", "h1", "h2", "h3", "h4", "h5", "h6")
	BodyPolicy.AllowElements("strong", "em", "u", "s", "code", "pre")
	BodyPolicy.AllowElements("ul", "ol", "li")
	BodyPolicy.AllowElements("blockquote")
	BodyPolicy.AllowElements("a", "img")
	BodyPolicy.AllowElements("table", "thead", "tbody", "tr", "th", "td")

	BodyPolicy.AllowAttrs("href").OnElements("a")
	BodyPolicy.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	// Inline styles survive into email clients, which ignore <style> blocks
	BodyPolicy.AllowAttrs("style").OnElements("span", "div", "p", "a", "td")

	BodyPolicy.RequireParseableURLs(true)
	BodyPolicy.AllowURLSchemes("http", "https", "mailto")
}

// SanitizeBodyHTML sanitizes user-authored body HTML before it is embedded
// in a transported email.
func SanitizeBodyHTML(html string) string {
	return BodyPolicy.Sanitize(html)
}

// StripHTML removes all HTML tags from content, producing a plain-text
// rendition suitable for text/plain parts and mailto: bodies.
func StripHTML(html string) string {
	// Preserve line structure for the common block/break tags before
	// stripping, so paragraphs do not collapse into one line.
	replacer := strings.NewReplacer(
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
		"</p>", "\n",
		"</div>", "\n",
	)
	return strings.TrimSpace(StrictPolicy.Sanitize(replacer.Replace(html)))
}
