package perception

import (
	"regexp"
	"strings"
)

// Policy controls the disambiguation variants observed in the wild.
type Policy struct {
	// ZeroSetIsReset treats a parsed set_counter with a number argument of
	// exactly "0" as reset_counter. Both behaviors exist in deployed copies
	// of this pipeline; the default config enables it so the argument-only
	// zero case agrees with the explicit "to 0" + reset-evidence case.
	ZeroSetIsReset bool
}

// DefaultPolicy returns the default disambiguation policy.
func DefaultPolicy() Policy {
	return Policy{ZeroSetIsReset: true}
}

// Evidence holds the keyword signals derived from normalized text. It is
// computed from the normalized text only, never the raw input; that is what
// lets one set of correction rules cover all three source languages.
type Evidence struct {
	Decrement  bool
	Increment  bool
	Reset      bool
	SetPattern bool
}

var (
	decrementWords = regexp.MustCompile(`\b(?:decrement|subtract|minus|decrease)\b`)
	incrementWords = regexp.MustCompile(`\b(?:increment|add|plus|increase)\b`)
	resetWords     = regexp.MustCompile(`\b(?:reset|clear|zero)\b`)

	setThenNumber = regexp.MustCompile(`\b(?:set|change)\b.*\d`)
	toNumber      = regexp.MustCompile(`to (\d+)`)
	zeroTarget    = regexp.MustCompile(`to 0\b|(?:^|\s)0(?:\s|$)`)
	anyNumber     = regexp.MustCompile(`\d+`)
)

// GatherEvidence computes the keyword-evidence booleans over normalized text.
func GatherEvidence(normalized string) Evidence {
	s := strings.ToLower(normalized)
	return Evidence{
		Decrement:  decrementWords.MatchString(s),
		Increment:  incrementWords.MatchString(s),
		Reset:      resetWords.MatchString(s),
		SetPattern: setThenNumber.MatchString(s) || toNumber.MatchString(s),
	}
}

func (e Evidence) signals() int {
	n := 0
	for _, b := range []bool{e.Decrement, e.Increment, e.Reset} {
		if b {
			n++
		}
	}
	return n
}

// Reconcile corrects a parsed call against keyword evidence in the normalized
// input. Pure and total; first matching branch wins. The upstream source is
// unreliable on this narrow, rule-amenable input class, and this pass catches
// its systematic misfires (such as answering reset_counter for any input
// containing a 0) without re-prompting.
func Reconcile(call Call, normalized string, policy Policy) Call {
	// 1. Numeric-shorthand override: a model that emits a literal signed one
	// as a set target meant a relative step.
	if call.Name == OpSet {
		switch strings.TrimSpace(call.Args[ArgNumber]) {
		case "+1":
			return Call{Name: OpIncrement, Args: map[string]string{}}
		case "-1":
			return Call{Name: OpDecrement, Args: map[string]string{}}
		case "0":
			if policy.ZeroSetIsReset {
				return Call{Name: OpReset, Args: map[string]string{}}
			}
		}
	}

	ev := GatherEvidence(normalized)
	lower := strings.ToLower(normalized)

	// 2. Reset evidence combined with an explicit zero always wins over any
	// parsed set call.
	if zeroTarget.MatchString(lower) && ev.Reset {
		return Call{Name: OpReset, Args: map[string]string{}}
	} else if ev.SetPattern && call.Name == OpReset {
		// 3. The upstream collapsed an explicit "set to N" into a bare reset.
		return Call{Name: OpSet, Args: map[string]string{ArgNumber: extractNumber(lower)}}
	} else if ev.signals() == 1 && !ev.SetPattern {
		// 4. A single unambiguous keyword signal overrides an inconsistent
		// parse. Two or more signals are contradictory; the parsed name is
		// trusted as-is.
		switch {
		case ev.Increment && (call.Name == OpSet || call.Name == OpReset):
			return Call{Name: OpIncrement, Args: map[string]string{}}
		case ev.Decrement && (call.Name == OpSet || call.Name == OpReset):
			return Call{Name: OpDecrement, Args: map[string]string{}}
		case ev.Reset && (call.Name == OpSet || call.Name == OpIncrement || call.Name == OpDecrement):
			return Call{Name: OpReset, Args: map[string]string{}}
		}
	}

	return call
}

// extractNumber pulls the set target out of normalized text: the "to N" form
// first, else the first bare digit run, else empty.
func extractNumber(lower string) string {
	if m := toNumber.FindStringSubmatch(lower); m != nil {
		return m[1]
	}
	return anyNumber.FindString(lower)
}
