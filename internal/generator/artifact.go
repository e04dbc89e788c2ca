package generator

import (
	"time"

	"command-forge/internal/spec"
)

// Artifact is the persisted/returned result of one generation run.
type Artifact struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        spec.TriggerType  `json:"type"`
	Permissions []string          `json:"permissions"`
	Code        string            `json:"code"`
	Options     []spec.OptionSpec `json:"options"`
	Cooldown    int               `json:"cooldown"`
	Category    string            `json:"category"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     string            `json:"version"`
}
