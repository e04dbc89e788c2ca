package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"command-forge/internal/spec"
)

// wireOption is the option record as it appears in the emitted
// declaration, with the semantic type resolved to its numeric code.
type wireOption struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        int           `json:"type"`
	Required    bool          `json:"required"`
	Choices     []spec.Choice `json:"choices,omitempty"`
}

// wireField is one modal input field in the emitted declaration.
type wireField struct {
	CustomID    string `json:"customId"`
	Label       string `json:"label"`
	Style       string `json:"style"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
	MinLength   int    `json:"minLength,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

func toWireOptions(options []spec.OptionSpec) []wireOption {
	out := make([]wireOption, 0, len(options))
	for _, opt := range options {
		out = append(out, wireOption{
			Name:        opt.Name,
			Description: opt.Description,
			Type:        int(spec.OptionTypeCode(opt.Type)),
			Required:    opt.Required,
			Choices:     opt.Choices,
		})
	}
	return out
}

func toWireFields(fields []spec.FieldSpec) []wireField {
	out := make([]wireField, 0, len(fields))
	for _, f := range fields {
		style := f.Style
		if style == "" {
			style = "Short"
		}
		out = append(out, wireField{
			CustomID:    f.CustomID,
			Label:       f.Label,
			Style:       style,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			MinLength:   f.MinLength,
			MaxLength:   f.MaxLength,
		})
	}
	return out
}

// renderSlash wraps a body in the request-driven declaration and its
// error shell. The replied/deferred branch must stay exactly as
// emitted: the platform forbids acknowledging an interaction twice the
// same way, so the fallback form depends on whether a reply was
// already issued.
func renderSlash(name, description string, options []spec.OptionSpec, body string) (string, error) {
	optionsJSON, err := json.MarshalIndent(toWireOptions(options), "    ", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`module.exports = {
  data: {
    name: '%s',
    description: '%s',
    options: %s
  },
  async execute(interaction) {
    try {
%s
    } catch (error) {
      console.error(error);
      if (interaction.replied || interaction.deferred) {
        await interaction.followUp({content: 'An error occurred!', ephemeral: true});
      } else {
        await interaction.reply({content: 'An error occurred!', ephemeral: true});
      }
    }
  }
};`, name, description, optionsJSON, indent(body, 6)), nil
}

// renderMessage wraps a body in the message-driven declaration. The
// body runs with implicit bindings pulled from the incoming message.
// The error reply is best-effort: its own failure is swallowed because
// the platform offers no better reporting channel.
func renderMessage(name, body string) string {
	return fmt.Sprintf(`module.exports = {
  name: '%s',
  trigger: 'messageCreate',
  async execute(message) {
    try {
      const content = message.content.toLowerCase();
      const author = message.author;
      const guild = message.guild;
      const channel = message.channel;
      const member = message.member;

%s
    } catch (error) {
      console.error(error);
      await message.reply('An error occurred!').catch(() => {});
    }
  }
};`, name, indent(body, 6))
}

// renderButton wraps a body in the interactive-control declaration.
// Only the first-reply error form applies: a button handler has not
// deferred anything by the time the shell catches.
func renderButton(name, customID, body string) string {
	return fmt.Sprintf(`module.exports = {
  name: '%s',
  customId: '%s',
  async execute(interaction) {
    try {
%s
    } catch (error) {
      console.error(error);
      await interaction.reply({content: 'An error occurred!', ephemeral: true});
    }
  }
};`, name, customID, indent(body, 6))
}

// renderModal wraps a body in the form-submission declaration,
// including the ordered field list.
func renderModal(name, customID string, fields []spec.FieldSpec, body string) (string, error) {
	fieldsJSON, err := json.MarshalIndent(toWireFields(fields), "  ", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`module.exports = {
  name: '%s',
  customId: '%s',
  fields: %s,
  async execute(interaction) {
    try {
%s
    } catch (error) {
      console.error(error);
      await interaction.reply({content: 'An error occurred!', ephemeral: true});
    }
  }
};`, name, customID, fieldsJSON, indent(body, 6)), nil
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
