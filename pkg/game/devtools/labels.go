package devtools

import (
	_ "embed"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/default.po
var defaultCatalogue []byte

// lookup is called through a variable since keys are not format strings
var lookup = (*gotext.Po).Get

// Labels translates the keys used in dumps. Unknown keys come back as-is.
type Labels struct {
	po *gotext.Po
}

// DefaultLabels returns the labels built into the binary
func DefaultLabels() *Labels {
	return ParseLabels(defaultCatalogue)
}

// ParseLabels builds labels from the contents of a .po file
func ParseLabels(po []byte) *Labels {
	p := gotext.NewPo()
	p.Parse(po)
	return &Labels{po: p}
}

// Get returns the translation for key
func (l *Labels) Get(key string) string {
	if l == nil || l.po == nil {
		return key
	}
	return lookup(l.po, key)
}

// named translates a value's String() form, e.g. "North" via key NORTH
func (l *Labels) named(v interface{ String() string }) string {
	return l.Get(strings.ToUpper(v.String()))
}
