package tui

import (
	"strings"

	"github.com/san-kum/trajlab/internal/config"
)

// TextField is a minimal numeric input buffer. It accepts digits, one
// decimal point and a leading minus; any other character is dropped
// silently.
type TextField struct {
	Label string
	Unit  string
	text  string
}

func NewTextField(label, unit, initial string) TextField {
	return TextField{Label: label, Unit: unit, text: initial}
}

func (f *TextField) Type(c byte) {
	switch {
	case c >= '0' && c <= '9':
		f.text += string(c)
	case c == '.':
		if !strings.Contains(f.text, ".") {
			f.text += "."
		}
	case c == '-':
		if f.text == "" {
			f.text = "-"
		}
	}
}

func (f *TextField) Backspace() {
	if len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

func (f *TextField) Text() string { return f.text }

// Value reads the buffer through the tolerant parse: malformed text
// yields def, never an error.
func (f *TextField) Value(def float64) float64 {
	return config.ParseFloatOr(f.text, def)
}
