package ai

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// PromptPair is a system prompt and a user message template.
type PromptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// PromptSet holds the prompts of every generation kind.
type PromptSet struct {
	Concept PromptPair `yaml:"concept"`
	Choices PromptPair `yaml:"choices"`
	Rewrite PromptPair `yaml:"rewrite"`

	concept *template.Template
	choices *template.Template
	rewrite *template.Template
}

// DefaultPrompts parses the embedded prompt file.
func DefaultPrompts() (*PromptSet, error) {
	return ParsePrompts(defaultPromptsYAML)
}

// ParsePrompts decodes a YAML prompt file and compiles its user templates.
func ParsePrompts(data []byte) (*PromptSet, error) {
	ps := &PromptSet{}
	if err := yaml.Unmarshal(data, ps); err != nil {
		return nil, fmt.Errorf("failed to decode prompts: %w", err)
	}
	var err error
	if ps.concept, err = compile("concept", ps.Concept); err != nil {
		return nil, err
	}
	if ps.choices, err = compile("choices", ps.Choices); err != nil {
		return nil, err
	}
	if ps.rewrite, err = compile("rewrite", ps.Rewrite); err != nil {
		return nil, err
	}
	return ps, nil
}

func compile(name string, p PromptPair) (*template.Template, error) {
	if p.System == "" || p.User == "" {
		return nil, fmt.Errorf("prompt '%s' is incomplete", name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(p.User)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt '%s': %w", name, err)
	}
	return tmpl, nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt '%s': %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
