package generator

import (
	"strings"

	"command-forge/internal/spec"
)

// compileConditions renders the guard prefix for a condition chain:
// `if (cond1 && cond2) `. Conditions are joined left-to-right with each
// condition's own chain operator; no extra parenthesization is added
// beyond the outer if.
func compileConditions(conditions []spec.ConditionSpec) string {
	var b strings.Builder
	b.WriteString("if (")

	for i, cond := range conditions {
		b.WriteString(compileCondition(cond))
		if i < len(conditions)-1 {
			chain := cond.Chain
			if chain == "" {
				chain = "&&"
			}
			b.WriteString(" " + chain + " ")
		}
	}

	b.WriteString(") ")
	return b.String()
}

// compileCondition maps one condition to its code shape. Unrecognized
// operators fall back to a literal infix expression. That fallback is
// deliberately preserved for saved specs that rely on it; the operator
// string must be trusted content.
func compileCondition(cond spec.ConditionSpec) string {
	value := rawValue(cond.Value)
	if cond.Type == "string" {
		value = formatValue(cond.Value)
	}

	switch cond.Operator {
	case "equals":
		return cond.Variable + " === " + value
	case "contains":
		return cond.Variable + ".includes(" + value + ")"
	case "startsWith":
		return cond.Variable + ".startsWith(" + value + ")"
	case "endsWith":
		return cond.Variable + ".endsWith(" + value + ")"
	case "greaterThan":
		return cond.Variable + " > " + value
	case "lessThan":
		return cond.Variable + " < " + value
	case "exists":
		return cond.Variable
	case "notExists":
		return "!" + cond.Variable
	default:
		return cond.Variable + " " + cond.Operator + " " + value
	}
}
