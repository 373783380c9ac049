package render

import "github.com/fatih/color"

// style paints the parts of an output line.
type style struct {
	field  func(string) string
	number func(string) string
	text   func(string) string
}

func plainStyle() style {
	plain := func(s string) string { return s }
	return style{field: plain, number: plain, text: plain}
}

// colorStyle always emits escape codes, whatever the terminal. Callers that
// write somewhere else decide whether to ask for it.
func colorStyle() style {
	return style{
		field:  painter(color.FgBlue, color.Bold),
		number: painter(color.FgYellow, color.Bold),
		text:   painter(color.FgGreen),
	}
}

func painter(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}
