package assets

// Default asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
)

// Loader loads stylesheets and page templates by name, without extension.
type Loader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
