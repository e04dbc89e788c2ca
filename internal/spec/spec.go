// Package spec defines the command description records accepted by the
// generator and their validation rules. All records are plain values:
// they are constructed from caller input, validated once, and read-only
// for the rest of the generation run.
package spec

// TriggerType selects which platform event class invokes the generated
// command. It is fixed for the lifetime of a generation run.
type TriggerType string

const (
	TriggerSlash   TriggerType = "slash"
	TriggerMessage TriggerType = "message"
	TriggerButton  TriggerType = "button"
	TriggerModal   TriggerType = "modal"
)

// Response types understood by the generator. Anything else falls back
// to a plain reply.
const (
	RespondReply = "reply"
	RespondSend  = "send"
	RespondEmbed = "embed"
	RespondDM    = "dm"
)

// CommandSpec is the instruction to generate one command.
type CommandSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        TriggerType `json:"type"`

	// Template optionally names a template unit. When set and resolvable
	// the unit supplies the execute body; otherwise the body is compiled
	// from Conditions and Actions.
	Template string `json:"template,omitempty"`

	// Content is free-form response text. It may contain {variable}
	// placeholders resolved against the variable catalogue.
	Content      string `json:"content,omitempty"`
	ResponseType string `json:"responseType,omitempty"`

	Permissions []string        `json:"permissions,omitempty"`
	Options     []OptionSpec    `json:"options,omitempty"`
	Conditions  []ConditionSpec `json:"conditions,omitempty"`
	Actions     []ActionSpec    `json:"actions,omitempty"`

	// CustomID identifies button and modal commands; defaults to Name.
	CustomID string      `json:"customId,omitempty"`
	Fields   []FieldSpec `json:"fields,omitempty"`

	// Cooldown in seconds, 0 disables.
	Cooldown int `json:"cooldown,omitempty"`
}

// OptionSpec describes one slash command option. Order is significant:
// it maps to positional argument order in the emitted declaration.
type OptionSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Choices     []Choice `json:"choices,omitempty"`
}

// Choice is one allowed value for an option.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ConditionSpec is one guard clause. Chain joins this condition with the
// next one and defaults to "&&".
type ConditionSpec struct {
	Variable string `json:"variable"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
	Type     string `json:"valueType,omitempty"`
	Chain    string `json:"chain,omitempty"`
}

// ActionSpec is one statement in the generated execute body. Parameters
// carries kind-specific arguments; unknown keys are ignored.
type ActionSpec struct {
	Kind       string         `json:"type"`
	Target     string         `json:"target,omitempty"`
	Value      any            `json:"value,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// FieldSpec describes one modal input field.
type FieldSpec struct {
	CustomID    string `json:"customId"`
	Label       string `json:"label"`
	Style       string `json:"style,omitempty"` // defaults to Short
	Required    bool   `json:"required,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	MinLength   int    `json:"minLength,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}
