package layout

import "strings"

// Substrings whose presence marks an answer line as code once the entry is
// known to carry a code example. Deliberately Java-flavored: the guide's
// code excerpts are Java.
var codeTokens = []string{"public ", "private ", "class ", "interface ", "enum "}

// IsCodeLine classifies one answer line. The heuristic is line-local: a line
// is code when the entry has a code example and the line either keeps its
// four-space indent or contains one of the declaration keywords. Without a
// code example every line is prose, keyword or not.
func IsCodeLine(line string, hasCodeExample bool) bool {
	if !hasCodeExample {
		return false
	}
	if strings.HasPrefix(line, "    ") {
		return true
	}
	for _, tok := range codeTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}
