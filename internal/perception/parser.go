package perception

import (
	"regexp"
	"strings"
)

// Call is a parsed function call extracted from upstream output: a raw
// operation name plus raw string-typed arguments. The number argument of
// set_counter is never validated here; that is the executing collaborator's
// job.
type Call struct {
	Name string
	Args map[string]string
}

// ArgNumber is the argument key carrying set_counter's target value.
const ArgNumber = "number"

var (
	// The fixed structural convention the upstream source uses to encode a
	// function call inside free text: call:<identifier>{<args>}. The args
	// body runs to the first closing brace.
	callPattern = regexp.MustCompile(`call:(\w+)\{([^}]*)\}`)

	// Escaped-string argument convention: key:\"value\". The markers bound
	// values that may themselves contain commas.
	escapedArgPattern = regexp.MustCompile(`(\w+)\s*:\s*\\"(.*?)\\"`)

	// Fallback plain convention: key:value pairs delimited by commas.
	plainArgPattern = regexp.MustCompile(`(\w+)\s*:\s*([^,]+)`)
)

// ParseCall extracts the first structural function call from upstream output.
// Returns ok=false when no call pattern is present; that is the normal
// malformed/empty-output case, not an error.
//
// Argument extraction is two-pass: the escaped key:\"value\" form is
// preferred, and only when it yields zero pairs does the plain key:value form
// apply. The two passes are never merged.
func ParseCall(output string) (Call, bool) {
	m := callPattern.FindStringSubmatch(output)
	if m == nil {
		return Call{}, false
	}

	call := Call{Name: m[1], Args: map[string]string{}}
	body := m[2]

	for _, pair := range escapedArgPattern.FindAllStringSubmatch(body, -1) {
		call.Args[pair[1]] = pair[2]
	}
	if len(call.Args) > 0 {
		return call, true
	}

	for _, pair := range plainArgPattern.FindAllStringSubmatch(body, -1) {
		call.Args[pair[1]] = strings.TrimSpace(pair[2])
	}
	return call, true
}
