package termdialog

import _ "embed"

// Version is the release version of termdialog.
//
//go:embed VERSION
var Version string
