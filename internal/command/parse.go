package command

import (
	"strings"
)

var (
	// Aliases maps single-word shorthands to the canonical action they stand
	// for. An alias only applies when it is the entire input, and the
	// resulting Command never has a target. This is the only synonym handling
	// done by the parser.
	Aliases map[string]string = map[string]string{
		"i":         "inventory",
		"inventory": "inventory",
		"l":         "look",
		"look":      "look",
		"h":         "help",
		"?":         "help",
		"help":      "help",
	}
)

// Parse parses a Command from the given text. It never fails; any input,
// including the empty string, results in a well-formed Command. Commands whose
// action is not recognized have a Verb of VerbUnknown and it is up to the
// caller to report them.
//
// The input is trimmed and made lower case before anything else is done. If
// it then matches an entry in Aliases, the aliased action is returned with no
// target. Otherwise, the first word is the action and all following words,
// joined by single spaces, are the target.
func Parse(toParse string) Command {
	var parsedCmd Command

	normalized := strings.ToLower(strings.TrimSpace(toParse))

	if canonical, ok := Aliases[normalized]; ok {
		parsedCmd.Action = canonical
		parsedCmd.Verb = VerbFor(canonical)
		return parsedCmd
	}

	// now tokenize our string, collapsing all whitespace
	tokens := strings.Fields(normalized)
	if len(tokens) < 1 {
		return parsedCmd
	}

	parsedCmd.Action = tokens[0]
	parsedCmd.Verb = VerbFor(tokens[0])

	if len(tokens) > 1 {
		parsedCmd.Target = strings.Join(tokens[1:], " ")
	}

	return parsedCmd
}
