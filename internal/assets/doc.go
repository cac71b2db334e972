// Package assets provides the page templates and stylesheets of a site.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in page template and styles
//	    ├── FilesystemLoader  - a custom directory on disk
//	    └── Resolver          - custom first, embedded when not found
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html     # must contain {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are single path elements. FilesystemLoader resolves symlinks
// and refuses any file outside its base path.
package assets
