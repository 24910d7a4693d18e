package taskview

import (
	"math"
	"strconv"

	"github.com/thenoetrevino/taskcard/internal/lang"
)

const progressBarStyle = "padding: 0; height: 5px; background-color: rgba(0, 0, 0, .4); "

// PercentComplete is the checklist completion fraction from the last
// render, in [0,1]
func (c *Card) PercentComplete() float64 {
	return c.percent
}

// PercentStyle is the inline style of the progress bar
func (c *Card) PercentStyle() string {
	return progressBarStyle + "width: " + strconv.FormatFloat(c.percent*100, 'f', -1, 64) + "%;"
}

// PercentTitle is the accessible title of the progress bar,
// e.g. "Task 50% Complete"
func (c *Card) PercentTitle() string {
	s := c.deps.Strings
	pct := int(math.Round(c.percent * 100))
	return s.Get(lang.Task) + " " + strconv.Itoa(pct) + "% " + s.Get(lang.TaskComplete)
}
