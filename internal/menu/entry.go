// Package menu builds the ordered context menu shown for a task card.
package menu

import (
	"html"
	"strconv"
	"strings"
)

// Target tells where inside a menu row a click landed
type Target int

const (
	// TargetRow is a click on the row itself (label, padding)
	TargetRow Target = iota
	// TargetControl is a click on the row's embedded select control
	TargetControl
)

// Kind discriminates the entry variants
type Kind int

const (
	KindAction Kind = iota
	KindSeparator
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindSeparator:
		return "separator"
	case KindControl:
		return "control"
	default:
		return "unknown"
	}
}

// Entry is one row of the menu: an Action, a Separator or a Control
type Entry interface {
	Kind() Kind
	// Markup is the HTML fragment displayed for the row
	Markup() string
	Disabled() bool
}

// Action is a plain clickable row
type Action struct {
	Label   string
	Handler func()
}

func (Action) Kind() Kind { return KindAction }

func (a Action) Markup() string { return html.EscapeString(a.Label) }

func (a Action) Disabled() bool { return false }

// Click runs the handler, if any
func (a Action) Click() {
	if a.Handler != nil {
		a.Handler()
	}
}

// Separator is a divider row
type Separator struct{}

func (Separator) Kind() Kind { return KindSeparator }

func (Separator) Markup() string { return "" }

func (Separator) Disabled() bool { return true }

// Option is one choice of a Control. Value 0 is reserved for the placeholder.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Control is a row carrying an embedded select. Choosing a non-placeholder
// option triggers OnSelect with the option value.
type Control struct {
	Label       string
	Help        string
	SelectID    string
	Placeholder string
	Options     []Option
	OnSelect    func(value int)
}

func (Control) Kind() Kind { return KindControl }

// Disabled reports whether there is nothing to choose besides the placeholder
func (c Control) Disabled() bool { return len(c.Options) < 1 }

// Click fires OnSelect only when the click landed on the select itself and
// value is one of the control's options. Clicks elsewhere on the row, such as
// the one that closes the menu, are ignored. It reports whether OnSelect ran.
func (c Control) Click(target Target, value int) bool {
	if target != TargetControl || value == 0 || c.OnSelect == nil || !c.hasOption(value) {
		return false
	}
	c.OnSelect(value)
	return true
}

func (c Control) hasOption(value int) bool {
	for _, opt := range c.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func (c Control) Markup() string {
	var b strings.Builder

	b.WriteString(html.EscapeString(c.Label))
	b.WriteString(": ")
	if c.Help != "" {
		b.WriteString(`<i class="icon icon-help-circled" data-help="`)
		b.WriteString(html.EscapeString(c.Help))
		b.WriteString(`"></i> `)
	}

	b.WriteString(`<select id="`)
	b.WriteString(html.EscapeString(c.SelectID))
	b.WriteString(`"`)
	if c.Disabled() {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>`)

	writeOption(&b, 0, c.Placeholder)
	for _, opt := range c.Options {
		writeOption(&b, opt.Value, opt.Label)
	}
	b.WriteString(`</select>`)

	return b.String()
}

func writeOption(b *strings.Builder, value int, label string) {
	b.WriteString(`<option value="`)
	b.WriteString(strconv.Itoa(value))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`</option>`)
}
