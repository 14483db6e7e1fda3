package migrations

import "embed"

// Files holds the forward-only schema migrations compiled into the binary.
// Each file is applied at most once, in lexical order.
//
//go:embed *.sql
var Files embed.FS
