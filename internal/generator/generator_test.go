package generator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-forge/internal/spec"
	"command-forge/internal/template"
	"command-forge/internal/version"
)

func newFixed() *Generator {
	g := New()
	g.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateDeterministic(t *testing.T) {
	g := newFixed()
	c := &spec.CommandSpec{
		Name:        "greet",
		Description: "Greets the caller",
		Type:        spec.TriggerSlash,
		Content:     "Hello {user.username}!",
	}

	first, err := g.Generate(c)
	require.NoError(t, err)
	second, err := g.Generate(c)
	require.NoError(t, err)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first, second)
}

func TestGenerateSlashShell(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "greet",
		Description: "Greets the caller",
		Type:        spec.TriggerSlash,
		Content:     "hi",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "name: 'greet'")
	assert.Contains(t, artifact.Code, "description: 'Greets the caller'")
	assert.Contains(t, artifact.Code, "async execute(interaction)")
	assert.Contains(t, artifact.Code, "if (interaction.replied || interaction.deferred)")
	assert.Contains(t, artifact.Code, "await interaction.followUp({content: 'An error occurred!', ephemeral: true});")
	assert.Contains(t, artifact.Code, "await interaction.reply({content: 'An error occurred!', ephemeral: true});")
}

func TestGenerateMessageShell(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "hello",
		Description: "Answers greetings",
		Type:        spec.TriggerMessage,
		Content:     "hey there",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "trigger: 'messageCreate'")
	assert.Contains(t, artifact.Code, "const content = message.content.toLowerCase();")
	assert.Contains(t, artifact.Code, "const member = message.member;")
	assert.Contains(t, artifact.Code, "await message.reply('An error occurred!').catch(() => {});")
	assert.NotContains(t, artifact.Code, "interaction.followUp")
}

func TestGenerateButtonShell(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "confirm",
		Description: "Confirms the pending action",
		Type:        spec.TriggerButton,
		CustomID:    "confirm_btn",
		Content:     "Confirmed!",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "name: 'confirm'")
	assert.Contains(t, artifact.Code, "customId: 'confirm_btn'")
	assert.NotContains(t, artifact.Code, "interaction.followUp")
}

func TestGenerateButtonCustomIDDefaultsToName(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "confirm",
		Description: "Confirms the pending action",
		Type:        spec.TriggerButton,
		Content:     "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, artifact.Code, "customId: 'confirm'")
}

func TestGenerateModalShell(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "feedback",
		Description: "Collects feedback",
		Type:        spec.TriggerModal,
		CustomID:    "feedback_form",
		Fields: []spec.FieldSpec{
			{CustomID: "subject", Label: "Subject", Required: true},
			{CustomID: "details", Label: "Details", Style: "Paragraph", MaxLength: 1000},
		},
		Content: "Thanks for the feedback!",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "customId: 'feedback_form'")
	assert.Contains(t, artifact.Code, `"customId": "subject"`)
	assert.Contains(t, artifact.Code, `"style": "Short"`)
	assert.Contains(t, artifact.Code, `"style": "Paragraph"`)
	assert.Contains(t, artifact.Code, `"maxLength": 1000`)
}

func TestGenerateInterpolation(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "greet",
		Description: "Greets the caller",
		Type:        spec.TriggerSlash,
		Content:     "Hello {user.username}, welcome to {server.name}! {not.a.var}",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "${user.username}")
	assert.Contains(t, artifact.Code, "${server.name}")
	assert.Contains(t, artifact.Code, "{not.a.var}")
	assert.NotContains(t, artifact.Code, "${not.a.var}")
	// interpolated content becomes a template literal
	assert.Contains(t, artifact.Code, "`Hello ${user.username}")
}

func TestGenerateTemplateNotFound(t *testing.T) {
	g := newFixed()
	_, err := g.Generate(&spec.CommandSpec{
		Name:        "ghost",
		Description: "Uses a template that does not exist",
		Type:        spec.TriggerSlash,
		Template:    "no-such-template",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, template.ErrNotFound))
}

func TestGenerateValidationError(t *testing.T) {
	g := newFixed()
	_, err := g.Generate(&spec.CommandSpec{
		Name:        "bad name",
		Description: "",
		Type:        "cron",
	})
	require.Error(t, err)

	var verr *spec.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Problems), 3)
}

func TestGenerateTemplateAdoptsUnitOptions(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "ban",
		Description: "Ban a member",
		Type:        spec.TriggerSlash,
		Template:    "ban",
	})
	require.NoError(t, err)

	assert.Equal(t, "moderation", artifact.Category)
	require.Len(t, artifact.Options, 3)
	assert.Equal(t, "user", artifact.Options[0].Name)
	// wire declaration carries resolved numeric type codes
	assert.Contains(t, artifact.Code, `"type": 6`)
	assert.Contains(t, artifact.Code, `"name": "Previous 7 days"`)
}

func TestGenerateSpecOptionsWinOverUnit(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "ban",
		Description: "Ban a member",
		Type:        spec.TriggerSlash,
		Template:    "ban",
		Options: []spec.OptionSpec{
			{Name: "target", Description: "Member to ban", Type: "user", Required: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, artifact.Options, 1)
	assert.Equal(t, "target", artifact.Options[0].Name)
}

func TestGenerateConditionsGuardActions(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "vip",
		Description: "VIP only response",
		Type:        spec.TriggerSlash,
		Conditions: []spec.ConditionSpec{
			{Variable: "member.roles.cache.size", Operator: "greaterThan", Value: 2, Chain: "||"},
			{Variable: "user.bot", Operator: "notExists"},
		},
		Actions: []spec.ActionSpec{
			{Kind: "reply", Value: "welcome"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "if (member.roles.cache.size > 2 || !user.bot) {")
	assert.Contains(t, artifact.Code, "await interaction.reply('welcome');")
}

func TestGenerateConditionsDefaultChain(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "gate",
		Description: "Gated response",
		Type:        spec.TriggerSlash,
		Conditions: []spec.ConditionSpec{
			{Variable: "message.content", Operator: "contains", Value: "hello", Type: "string"},
			{Variable: "user.bot", Operator: "notExists"},
		},
		Content: "hi",
	})
	require.NoError(t, err)
	assert.Contains(t, artifact.Code, "if (message.content.includes('hello') && !user.bot) {")
}

func TestGenerateActionsWithoutConditions(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "sweep",
		Description: "Deletes and logs",
		Type:        spec.TriggerSlash,
		Actions: []spec.ActionSpec{
			{Kind: "delete", Target: "message"},
			{Kind: "log", Value: "swept"},
			{Kind: "ban", Target: "member", Parameters: map[string]any{"reason": "spam"}},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, "await message.delete();")
	assert.Contains(t, artifact.Code, "console.log('swept');")
	assert.Contains(t, artifact.Code, "await member.ban({reason: 'spam', deleteMessageDays: 0});")
	// no guard, only the shell's own error branch remains
	assert.Equal(t, 1, strings.Count(artifact.Code, "if ("))
}

func TestGenerateEmbedResponse(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:         "announce",
		Description:  "Posts an announcement embed",
		Type:         spec.TriggerSlash,
		ResponseType: spec.RespondEmbed,
		Content:      "title: Big News\ndescription: Something happened",
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Code, ".setTitle('Big News')")
	assert.Contains(t, artifact.Code, ".setDescription('Something happened')")
	assert.NotContains(t, artifact.Code, ".setColor(")
	assert.Contains(t, artifact.Code, "await interaction.reply({embeds: [embed]});")
}

func TestGenerateArtifactMetadata(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "greet",
		Description: "Greets the caller",
		Type:        spec.TriggerSlash,
		Content:     "hi",
		Permissions: []string{"ADMINISTRATOR"},
		Cooldown:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "custom", artifact.Category)
	assert.Equal(t, version.Version, artifact.Version)
	assert.Equal(t, []string{"ADMINISTRATOR"}, artifact.Permissions)
	assert.Equal(t, 5, artifact.Cooldown)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), artifact.CreatedAt)
}

func TestGenerateCache(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "greet",
		Description: "Greets the caller",
		Type:        spec.TriggerSlash,
		Content:     "hi",
	})
	require.NoError(t, err)

	cached, ok := g.Cached("greet")
	require.True(t, ok)
	assert.Same(t, artifact, cached)

	g.Invalidate("greet")
	_, ok = g.Cached("greet")
	assert.False(t, ok)
}

func TestGenerateTemplateBody(t *testing.T) {
	g := newFixed()
	artifact, err := g.Generate(&spec.CommandSpec{
		Name:        "ping",
		Description: "Measures latency",
		Type:        spec.TriggerSlash,
		Template:    "ping",
	})
	require.NoError(t, err)
	assert.Contains(t, artifact.Code, "ws.ping")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "''", formatValue(nil))
	assert.Equal(t, "''", formatValue(""))
	assert.Equal(t, "'hi'", formatValue("hi"))
	assert.Equal(t, `'it\'s'`, formatValue("it's"))
	assert.Equal(t, "`hey ${user.username}`", formatValue("hey ${user.username}"))
	assert.Equal(t, "`raw`", formatValue("`raw`"))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "1000000", formatValue(float64(1e6)))
}

func TestIndentSkipsBlankLines(t *testing.T) {
	out := indent("a\n\nb\n", 2)
	assert.Equal(t, "  a\n\n  b", out)
	assert.False(t, strings.Contains(out, "\n  \n"))
}
