package markup

import "github.com/microcosm-cc/bluemonday"

// newSanitizer builds the policy used when sanitising is enabled. It is the
// UGC policy plus the attributes the hooks emit: anchor target/rel/title and
// classes on checklist items, icons and highlighted code.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target", "rel", "title").OnElements("a")
	p.AllowAttrs("class").OnElements("li", "i", "pre", "code", "span", "div")
	p.AllowElements("i")
	return p
}
