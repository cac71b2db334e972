package md2html

import "sync"

var (
	defaultOnce      sync.Once
	defaultConverter *Converter
	defaultErr       error
)

func shared() (*Converter, error) {
	defaultOnce.Do(func() {
		defaultConverter, defaultErr = NewConverter()
	})
	return defaultConverter, defaultErr
}

// Render converts markdown to an HTML fragment with the default Converter,
// which logs warnings to stderr.
func Render(markdown string) (string, error) {
	c, err := shared()
	if err != nil {
		return "", err
	}
	return c.Render(markdown)
}

// ExtractTitle returns the first level-1 heading of markdown using the
// default Converter.
func ExtractTitle(markdown string) string {
	c, err := shared()
	if err != nil {
		return ""
	}
	return c.ExtractTitle(markdown)
}
