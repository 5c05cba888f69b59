package perception

import "strings"

// Canonical operation names.
const (
	OpIncrement = "increment"
	OpDecrement = "decrement"
	OpSet       = "set_counter"
	OpReset     = "reset_counter"
)

// nameMap folds case variants, synonyms and observed model quirks onto the
// four canonical operation names. set_number and update_counter are names the
// upstream source has been seen to emit in place of set_counter.
var nameMap = map[string]string{
	"increment":         OpIncrement,
	"INCREMENT":         OpIncrement,
	"Increment":         OpIncrement,
	"increment_counter": OpIncrement,
	"incrementCounter":  OpIncrement,
	"add":               OpIncrement,
	"ADD":               OpIncrement,
	"Add":               OpIncrement,
	"plus":              OpIncrement,
	"Plus":              OpIncrement,
	"increase":          OpIncrement,
	"Increase":          OpIncrement,

	"decrement":         OpDecrement,
	"DECREMENT":         OpDecrement,
	"Decrement":         OpDecrement,
	"decrement_counter": OpDecrement,
	"decrementCounter":  OpDecrement,
	"subtract":          OpDecrement,
	"Subtract":          OpDecrement,
	"minus":             OpDecrement,
	"Minus":             OpDecrement,
	"decrease":          OpDecrement,
	"Decrease":          OpDecrement,

	"set_counter":    OpSet,
	"SET_COUNTER":    OpSet,
	"Set_Counter":    OpSet,
	"SetCounter":     OpSet,
	"setCounter":     OpSet,
	"set":            OpSet,
	"SET":            OpSet,
	"Set":            OpSet,
	"set_number":     OpSet,
	"set_value":      OpSet,
	"update_counter": OpSet,
	"change_counter": OpSet,

	"reset_counter": OpReset,
	"RESET_COUNTER": OpReset,
	"Reset_Counter": OpReset,
	"ResetCounter":  OpReset,
	"resetCounter":  OpReset,
	"reset":         OpReset,
	"RESET":         OpReset,
	"Reset":         OpReset,
	"reset_count":   OpReset,
	"clear":         OpReset,
	"Clear":         OpReset,
	"CLEAR":         OpReset,
}

// CanonicalName maps a raw operation-name token to its canonical form. Names
// absent from the map fall back to plain lower-casing, so this never fails;
// the result may still be an unknown operation, which downstream dispatch
// rejects.
func CanonicalName(raw string) string {
	if canonical, ok := nameMap[raw]; ok {
		return canonical
	}
	return strings.ToLower(raw)
}
