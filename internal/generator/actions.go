package generator

import (
	"fmt"

	"command-forge/internal/spec"
)

// compileAction maps one action to a single statement line. Dispatch is
// strictly on the action kind; unknown parameters are ignored and an
// unrecognized kind falls back to a bare call using the kind as the
// function name (trusted content only, same escape hatch as the
// condition compiler).
func compileAction(action spec.ActionSpec) string {
	target := action.Target

	switch action.Kind {
	case "reply":
		if target == "" {
			target = "interaction"
		}
		return fmt.Sprintf("await %s.reply(%s);\n", target, formatValue(action.Value))
	case "send":
		if target == "" {
			target = "channel"
		}
		return fmt.Sprintf("await %s.send(%s);\n", target, formatValue(action.Value))
	case "edit":
		return fmt.Sprintf("await %s.edit(%s);\n", target, formatValue(action.Value))
	case "delete":
		return fmt.Sprintf("await %s.delete();\n", target)
	case "kick":
		return fmt.Sprintf("await %s.kick(%s);\n", target, formatValue(param(action, "reason")))
	case "ban":
		return fmt.Sprintf("await %s.ban({reason: %s, deleteMessageDays: %d});\n",
			target, formatValue(param(action, "reason")), paramInt(action, "deleteMessageDays", 0))
	case "timeout":
		return fmt.Sprintf("await %s.timeout(%d, %s);\n",
			target, paramInt(action, "duration", 60000), formatValue(param(action, "reason")))
	case "addRole":
		return fmt.Sprintf("await %s.roles.add('%s');\n", target, paramString(action, "roleId"))
	case "removeRole":
		return fmt.Sprintf("await %s.roles.remove('%s');\n", target, paramString(action, "roleId"))
	case "react":
		return fmt.Sprintf("await %s.react('%s');\n", target, paramString(action, "emoji"))
	case "createChannel":
		return fmt.Sprintf("await guild.channels.create({name: %s, type: %s});\n",
			formatValue(param(action, "name")), rawValue(param(action, "type")))
	case "createRole":
		return fmt.Sprintf("await guild.roles.create({name: %s, color: '%s'});\n",
			formatValue(param(action, "name")), paramString(action, "color"))
	case "log":
		return fmt.Sprintf("console.log(%s);\n", formatValue(action.Value))
	case "wait":
		return fmt.Sprintf("await new Promise(resolve => setTimeout(resolve, %d));\n",
			paramInt(action, "duration", 1000))
	case "random":
		return fmt.Sprintf("const randomNum = Math.floor(Math.random() * %d) + %d;\n",
			paramInt(action, "max", 100), paramInt(action, "min", 1))
	default:
		return fmt.Sprintf("%s(%s);\n", action.Kind, formatValue(action.Value))
	}
}

func param(action spec.ActionSpec, key string) any {
	if action.Parameters == nil {
		return nil
	}
	return action.Parameters[key]
}

func paramString(action spec.ActionSpec, key string) string {
	if s, ok := param(action, key).(string); ok {
		return s
	}
	return ""
}

// paramInt resolves a numeric parameter; zero and absent both fall back
// to the default, mirroring the platform conventions the emitted calls
// expect.
func paramInt(action spec.ActionSpec, key string, def int) int {
	switch v := param(action, key).(type) {
	case int:
		if v != 0 {
			return v
		}
	case int64:
		if v != 0 {
			return int(v)
		}
	case float64:
		if v != 0 {
			return int(v)
		}
	}
	return def
}
