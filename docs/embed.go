package docs

import "embed"

// FS contains long-form Markdown guides bundled with the quill binary.
//
//go:embed guide
var FS embed.FS
