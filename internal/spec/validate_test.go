package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() CommandSpec {
	return CommandSpec{
		Name:        "greet",
		Description: "Greets the user",
		Type:        TriggerSlash,
		Content:     "Hello!",
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"kick_user-1", true},
		{"a", true},
		{strings.Repeat("x", 32), true},
		{"kick user", false},
		{strings.Repeat("x", 33), false},
		{"", false},
		{"näme", false},
	}

	for _, tt := range tests {
		s := validSpec()
		s.Name = tt.name
		err := s.Validate()
		if tt.ok {
			assert.NoError(t, err, "name %q", tt.name)
		} else {
			assert.Error(t, err, "name %q", tt.name)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	for _, l := range []int{1, 100} {
		s := validSpec()
		s.Description = strings.Repeat("d", l)
		assert.NoError(t, s.Validate(), "length %d", l)
	}
	for _, l := range []int{0, 101} {
		s := validSpec()
		s.Description = strings.Repeat("d", l)
		assert.Error(t, s.Validate(), "length %d", l)
	}
}

func TestValidateTriggerType(t *testing.T) {
	for _, typ := range []TriggerType{TriggerSlash, TriggerMessage, TriggerButton, TriggerModal} {
		s := validSpec()
		s.Type = typ
		assert.NoError(t, s.Validate())
	}

	s := validSpec()
	s.Type = "webhook"
	err := s.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "slash, message, button, modal")
}

func TestValidateOptions(t *testing.T) {
	s := validSpec()
	s.Options = []OptionSpec{{Name: "user", Description: "Target user", Type: "user"}}
	assert.NoError(t, s.Validate())

	s.Options = []OptionSpec{{Name: "user", Description: "Target user", Type: "snowflake"}}
	assert.Error(t, s.Validate())

	s.Options = []OptionSpec{{Name: "", Description: "missing name", Type: "string"}}
	assert.Error(t, s.Validate())
}

func TestValidatePermissions(t *testing.T) {
	s := validSpec()
	s.Permissions = []string{"KICK_MEMBERS", "BAN_MEMBERS"}
	assert.NoError(t, s.Validate())

	s.Permissions = []string{"RULE_THE_WORLD"}
	assert.Error(t, s.Validate())
}

func TestValidateCollectsAllProblems(t *testing.T) {
	s := CommandSpec{Name: "bad name", Description: "", Type: "nope", Cooldown: -1}
	err := s.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 4)
}

func TestOptionTypeCode(t *testing.T) {
	assert.EqualValues(t, 3, OptionTypeCode("string"))
	assert.EqualValues(t, 4, OptionTypeCode("integer"))
	assert.EqualValues(t, 6, OptionTypeCode("user"))
	assert.EqualValues(t, 11, OptionTypeCode("attachment"))
	// Unknown types fall back to string.
	assert.EqualValues(t, 3, OptionTypeCode("mystery"))
}
