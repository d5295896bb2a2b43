package util

import "github.com/fatih/color"

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"underline": color.Underline,
	"bold":      color.Bold,
}

// ColorOutput decorates text with the named attributes. Unknown names are
// ignored. Nothing is added when colour output is disabled, which is the
// case whenever stdout is not a terminal.
func ColorOutput(text string, colorOptions ...string) string {
	attributes := make([]color.Attribute, 0, len(colorOptions))
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}

	return color.New(attributes...).Sprint(text)
}
