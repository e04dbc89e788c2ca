// Package generator assembles executable command modules from
// structured command specs. A run validates the spec, resolves a body
// from either a library template or the spec's own conditions, actions
// and response, rewrites recognized variable tokens into runtime
// interpolation form, and wraps the result in the trigger-specific
// module shell with its error handling.
package generator

import (
	"strings"
	"sync"
	"time"

	"command-forge/internal/spec"
	"command-forge/internal/template"
	"command-forge/internal/version"
)

type Generator struct {
	mu    sync.RWMutex
	cache map[string]*Artifact
	now   func() time.Time
}

func New() *Generator {
	return &Generator{
		cache: make(map[string]*Artifact),
		now:   time.Now,
	}
}

// Generate produces the artifact for one command spec. Validation
// problems and unknown template names surface as errors; every other
// failure is wrapped in a GenerationError carrying the command name.
// The artifact is cached under the command name, replacing any earlier
// run for the same name.
func (g *Generator) Generate(c *spec.CommandSpec) (*Artifact, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	body, err := buildBody(c)
	if err != nil {
		return nil, err
	}
	body = interpolate(body)

	options := c.Options
	category := "custom"
	if c.Template != "" {
		if unit, ok := template.Lookup(c.Template); ok {
			category = unit.Category
			if len(options) == 0 {
				options = unit.Options
			}
		}
	}

	var code string
	switch c.Type {
	case spec.TriggerMessage:
		code = renderMessage(c.Name, body)
	case spec.TriggerButton:
		code = renderButton(c.Name, customID(c), body)
	case spec.TriggerModal:
		code, err = renderModal(c.Name, customID(c), c.Fields, body)
	default:
		code, err = renderSlash(c.Name, c.Description, options, body)
	}
	if err != nil {
		return nil, &GenerationError{Name: c.Name, Err: err}
	}

	artifact := &Artifact{
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		Permissions: c.Permissions,
		Code:        code,
		Options:     options,
		Cooldown:    c.Cooldown,
		Category:    category,
		CreatedAt:   g.now(),
		Version:     version.Version,
	}

	g.mu.Lock()
	g.cache[c.Name] = artifact
	g.mu.Unlock()

	return artifact, nil
}

// Cached returns the last generated artifact for a command name.
func (g *Generator) Cached(name string) (*Artifact, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	a, ok := g.cache[name]
	return a, ok
}

// Invalidate drops the cached artifact for a command name.
func (g *Generator) Invalidate(name string) {
	g.mu.Lock()
	delete(g.cache, name)
	g.mu.Unlock()
}

// buildBody resolves the inner logic of a command. A set template name
// always wins; a missing one is an error, never a silent fallback to
// the custom path.
func buildBody(c *spec.CommandSpec) (string, error) {
	if c.Template != "" {
		return template.Generate(c.Template, c)
	}

	var b strings.Builder
	guarded := len(c.Conditions) > 0
	if guarded {
		b.WriteString(compileConditions(c.Conditions))
		b.WriteString("{\n")
	}

	if len(c.Actions) > 0 {
		for _, action := range c.Actions {
			stmt := compileAction(action)
			if guarded {
				stmt = indent(stmt, 2) + "\n"
			}
			b.WriteString(stmt)
		}
	} else {
		resp := buildResponse(c.Content, c.ResponseType)
		if guarded {
			resp = indent(resp, 2) + "\n"
		}
		b.WriteString(resp)
	}

	if guarded {
		b.WriteString("}\n")
	}
	return b.String(), nil
}

// customID resolves the wire identifier for interactive-control and
// form-submission commands, falling back to the command name.
func customID(c *spec.CommandSpec) string {
	if c.CustomID != "" {
		return c.CustomID
	}
	return c.Name
}
