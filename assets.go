package localsystem

import _ "embed"

// translationsJSON contains the embedded message translations as JSON.
// This is the single source of truth for every user-facing string.
//
//go:embed assets/translations.json
var translationsJSON []byte
