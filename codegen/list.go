package codegen

import (
	"fmt"
	"strings"
)

// FormatList joins values with commas inside the given bracket style.
// Supported brackets are "{", "(", "<" and "" for a bare list; anything
// else is a programming error.
func FormatList[T any](bracket string, values []T) string {
	var sb strings.Builder

	sb.WriteString(bracket)

	for i, v := range values {
		if i > 0 {
			sb.WriteString(",")
		}

		fmt.Fprintf(&sb, "%v", v)
	}

	switch bracket {
	case "{":
		sb.WriteString("}")
	case "(":
		sb.WriteString(")")
	case "<":
		sb.WriteString(">")
	case "":
	default:
		panic("unsupported bracket style for list formatting: " + bracket)
	}

	return sb.String()
}
