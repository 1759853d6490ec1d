package assets

import "embed"

// DefaultDictionary is the name of the embedded word list inside FS.
const DefaultDictionary = "valid-words.txt"

//go:embed valid-words.txt
var FS embed.FS
