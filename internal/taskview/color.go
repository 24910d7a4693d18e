package taskview

import "strconv"

// Text colors for light and dark card backgrounds
const (
	DarkText  = "#333333"
	LightText = "#efefef"
)

const yiqThreshold = 140

// TextColor picks a readable text color for a card background given as
// full hex with a leading '#', e.g. "#ffffe0". Backgrounds with a YIQ
// brightness of at least 140 get dark text. Malformed colors get light text.
func TextColor(color string) string {
	if len(color) < 7 || color[0] != '#' {
		return LightText
	}

	var rgb [3]uint64
	for i := range rgb {
		v, err := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return LightText
		}
		rgb[i] = v
	}

	yiq := float64(rgb[0]*299+rgb[1]*587+rgb[2]*114) / 1000
	if yiq >= yiqThreshold {
		return DarkText
	}
	return LightText
}

// TextColor is the text color for the task's own background
func (c *Card) TextColor() string {
	return TextColor(c.task.Color)
}
