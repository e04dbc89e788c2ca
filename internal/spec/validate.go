package spec

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var nameRegex = regexp.MustCompile(`^[\w-]{1,32}$`)

// PermissionBits maps every permission name a spec may carry to its
// Discord permission flag. Membership in this map is the allow-list.
var PermissionBits = map[string]int64{
	"ADMINISTRATOR":   discordgo.PermissionAdministrator,
	"MANAGE_GUILD":    discordgo.PermissionManageServer,
	"MANAGE_ROLES":    discordgo.PermissionManageRoles,
	"MANAGE_CHANNELS": discordgo.PermissionManageChannels,
	"KICK_MEMBERS":    discordgo.PermissionKickMembers,
	"BAN_MEMBERS":     discordgo.PermissionBanMembers,
	"MANAGE_MESSAGES": discordgo.PermissionManageMessages,
	"SEND_MESSAGES":   discordgo.PermissionSendMessages,
	"VIEW_CHANNEL":    discordgo.PermissionViewChannel,
}

// OptionTypeCodes maps the semantic option type names accepted in specs
// to the application command option codes the platform expects.
var OptionTypeCodes = map[string]discordgo.ApplicationCommandOptionType{
	"string":      discordgo.ApplicationCommandOptionString,
	"integer":     discordgo.ApplicationCommandOptionInteger,
	"boolean":     discordgo.ApplicationCommandOptionBoolean,
	"user":        discordgo.ApplicationCommandOptionUser,
	"channel":     discordgo.ApplicationCommandOptionChannel,
	"role":        discordgo.ApplicationCommandOptionRole,
	"mentionable": discordgo.ApplicationCommandOptionMentionable,
	"number":      discordgo.ApplicationCommandOptionNumber,
	"attachment":  discordgo.ApplicationCommandOptionAttachment,
}

// OptionTypeCode resolves a semantic type name, falling back to string
// for anything unrecognized.
func OptionTypeCode(name string) discordgo.ApplicationCommandOptionType {
	if code, ok := OptionTypeCodes[name]; ok {
		return code
	}
	return discordgo.ApplicationCommandOptionString
}

// Option types accepted during validation. Attachment options are
// understood by the code mapping but not accepted from callers, matching
// the builder form.
var validOptionTypes = map[string]bool{
	"string": true, "integer": true, "boolean": true, "user": true,
	"channel": true, "role": true, "mentionable": true, "number": true,
}

// ValidationError reports every structural problem found in a spec.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid command spec: " + strings.Join(e.Problems, "; ")
}

// Validate checks the spec against the structural rules. It returns a
// *ValidationError listing every problem, or nil. A spec that fails
// validation must never reach the generator.
func (c *CommandSpec) Validate() error {
	var problems []string

	if !nameRegex.MatchString(c.Name) {
		problems = append(problems, "name must be 1-32 characters of letters, numbers, underscores or dashes")
	}

	if l := len(c.Description); l < 1 || l > 100 {
		problems = append(problems, "description must be between 1 and 100 characters")
	}

	switch c.Type {
	case TriggerSlash, TriggerMessage, TriggerButton, TriggerModal:
	default:
		problems = append(problems, "type must be one of: slash, message, button, modal")
	}

	for _, opt := range c.Options {
		if opt.Name == "" || opt.Description == "" {
			problems = append(problems, "every option needs a name and a description")
			break
		}
	}
	for _, opt := range c.Options {
		if opt.Name != "" && !validOptionTypes[opt.Type] {
			problems = append(problems, "option '"+opt.Name+"' has unknown type '"+opt.Type+"'")
		}
	}

	for _, perm := range c.Permissions {
		if _, ok := PermissionBits[perm]; !ok {
			problems = append(problems, "unknown permission '"+perm+"'")
		}
	}

	if c.Cooldown < 0 {
		problems = append(problems, "cooldown must not be negative")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
