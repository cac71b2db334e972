package assets

import "errors"

// Resolver serves custom assets first and falls back to the embedded ones
// when a custom asset does not exist. Validation and I/O errors from the
// custom loader are returned as is.
type Resolver struct {
	custom   Loader
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses only the
// embedded assets.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// LoadStyle loads a stylesheet, custom first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads a page template, custom first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.LoadTemplate(name) })
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

func (r *Resolver) load(fn func(Loader) (string, error)) (string, error) {
	if r.custom == nil {
		return fn(r.embedded)
	}
	content, err := fn(r.custom)
	if err == nil || !isNotFound(err) {
		return content, err
	}
	return fn(r.embedded)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

var _ Loader = (*Resolver)(nil)
