package notas

import _ "embed"

// Version is the release version of notas, read from the VERSION file.
//
//go:embed VERSION
var Version string
