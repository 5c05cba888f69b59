package perception

import (
	"fmt"
	"strings"
)

// OperationSpec describes one operation the upstream source may call.
type OperationSpec struct {
	Name        string
	Description string
	// ArgumentSchema maps argument names to a short type description.
	ArgumentSchema map[string]string
}

// CounterOperations is the fixed set of operations offered to the upstream
// source on every request.
var CounterOperations = []OperationSpec{
	{Name: OpIncrement, Description: "Increase the counter by one."},
	{Name: OpDecrement, Description: "Decrease the counter by one."},
	{
		Name:           OpSet,
		Description:    "Set the counter to a specific value.",
		ArgumentSchema: map[string]string{ArgNumber: "integer, the target value"},
	},
	{Name: OpReset, Description: "Reset the counter to zero."},
}

const promptPreamble = `You control a counter through function calls.
Pick exactly one of the operations below for the user's command.
Respond with a single line of the form call:<name>{<args>} and nothing else.
Arguments are written as key:\"value\" pairs. Operations without arguments
use empty braces, e.g. call:increment{}.`

// BuildPrompt renders the fixed instruction preamble, the operation list and
// the normalized user command into a single prompt text.
func BuildPrompt(normalized string, ops []OperationSpec) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\n\nOperations:\n")
	for _, op := range ops {
		sb.WriteString(fmt.Sprintf("- %s: %s", op.Name, op.Description))
		for arg, schema := range op.ArgumentSchema {
			sb.WriteString(fmt.Sprintf(" (%s: %s)", arg, schema))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nUser command: %q\n", normalized))
	return sb.String()
}
