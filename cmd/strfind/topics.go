package strfind

import "embed"

// helpTopics holds the markdown pages shown by "strfind help <topic>"
//
//go:embed topics/*.md
var helpTopics embed.FS
