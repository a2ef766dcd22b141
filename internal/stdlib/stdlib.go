// Package stdlib carries the embedded fone prelude.
package stdlib

import _ "embed"

// Prelude is evaluated into every fresh runtime environment before any
// user input. It may only contain plain fone forms; the language has no
// comment syntax.
//
//go:embed prelude.fone
var Prelude string
