package markup

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/thenoetrevino/taskcard/internal/types"
)

// checklistMarker matches "[ ]", "[x]" or "[X]" at the start of an item,
// with optional whitespace around the brackets but not inside them.
var checklistMarker = regexp.MustCompile(`^\s*\[([ xX])\]\s*`)

const (
	iconUnchecked = `<i class="icon icon-check-empty"></i> `
	iconChecked   = `<i class="icon icon-check"></i> `
)

// stateAttr is the document attribute carrying the per-pass renderState
var stateAttr = []byte("taskcard-render-state")

// renderState is attached to the parsed document for the duration of one
// conversion pass. The task id is copied in, never looked up.
type renderState struct {
	taskID types.TaskID
	counts *Counts
}

// stateOf finds the renderState of the document that owns n
func stateOf(n ast.Node) *renderState {
	for p := n; p != nil; p = p.Parent() {
		if v, ok := p.Attribute(stateAttr); ok {
			if st, ok := v.(*renderState); ok {
				return st
			}
		}
	}
	return nil
}

// renderListItem renders the item's children into a buffer first so the
// checklist marker can be detected on the rendered inline text.
func (r *hookRenderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.inner.Render(&buf, source, c); err != nil {
			return ast.WalkStop, err
		}
	}

	open, body, isChecklist, checked := checklistItem(buf.String())
	if isChecklist {
		if st := stateOf(node); st != nil {
			st.counts.Total++
			if checked {
				st.counts.Checked++
			}
		}
	}

	_, _ = w.WriteString(open)
	// Loose items start with a block element, same as goldmark's own <li>
	if fc := node.FirstChild(); fc != nil {
		if _, tight := fc.(*ast.TextBlock); !tight {
			_ = w.WriteByte('\n')
		}
	}
	_, _ = w.WriteString(body)
	_, _ = w.WriteString("</li>\n")
	return ast.WalkSkipChildren, nil
}

// checklistItem splits rendered item content into the <li> open tag and
// the body. When the content starts with a checklist marker, the marker is
// swapped for an icon and the item gets the checklist class.
func checklistItem(content string) (open, body string, isChecklist, checked bool) {
	prefix, rest := "", content
	if strings.HasPrefix(rest, "<p>") {
		prefix, rest = "<p>", rest[len("<p>"):]
	}

	m := checklistMarker.FindStringSubmatchIndex(rest)
	if m == nil {
		return "<li>", content, false, false
	}

	checked = rest[m[2]:m[3]] != " "
	icon := iconUnchecked
	if checked {
		icon = iconChecked
	}

	return `<li class="checklist">`, prefix + icon + rest[m[1]:], true, checked
}
