package profile

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
)

// Shape describes what a profile asks the provider to return.
// It drives the best-effort inspection in package kit.
type Shape struct {
	Taglines    int  `yaml:"taglines" json:"taglines"`
	Captions    int  `yaml:"captions" json:"captions"`
	MinColors   int  `yaml:"min_colors" json:"min_colors"`
	MaxColors   int  `yaml:"max_colors" json:"max_colors"`
	ColorRoles  bool `yaml:"color_roles" json:"color_roles"`
	FontsAsList bool `yaml:"fonts_as_list" json:"fonts_as_list"`
}

// GenerationProfile bundles a prompt template, the expected output shape and
// the provider parameters. One orchestrator serves every profile.
type GenerationProfile struct {
	Name         string  `yaml:"name" json:"name"`
	Description  string  `yaml:"description" json:"description"`
	Model        string  `yaml:"model" json:"model"`
	Temperature  float64 `yaml:"temperature" json:"temperature"`
	MaxTokens    int     `yaml:"max_tokens" json:"max_tokens"`
	Placeholder  string  `yaml:"placeholder" json:"placeholder"`
	JSONMode     bool    `yaml:"json_mode" json:"json_mode"`
	Strict       bool    `yaml:"strict" json:"strict"`
	SystemPrompt string  `yaml:"system_prompt" json:"-"`
	UserTemplate string  `yaml:"user_template" json:"-"`
	Shape        Shape   `yaml:"shape" json:"shape"`

	tmpl *template.Template
}

// Prompt is the composed pair sent to the generation service.
type Prompt struct {
	System string
	User   string
}

// Compile validates the profile and caches the parsed user template.
func (p *GenerationProfile) Compile() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Model == "" {
		return fmt.Errorf("profile %q: model is required", p.Name)
	}
	if p.MaxTokens <= 0 {
		return fmt.Errorf("profile %q: max_tokens must be positive", p.Name)
	}
	if strings.TrimSpace(p.UserTemplate) == "" {
		return fmt.Errorf("profile %q: user_template is required", p.Name)
	}
	t, err := template.New(p.Name).Option("missingkey=error").Parse(p.UserTemplate)
	if err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	p.tmpl = t
	return nil
}

// Render fills the user template with the request after placeholder substitution.
func (p *GenerationProfile) Render(req domain.BrandRequest) (Prompt, error) {
	t := p.tmpl
	if t == nil {
		// Uncompiled profiles are compiled on a copy; p is shared between requests.
		c := *p
		if err := c.Compile(); err != nil {
			return Prompt{}, err
		}
		t = c.tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, req.WithDefaults(p.Placeholder)); err != nil {
		return Prompt{}, fmt.Errorf("render %s prompt: %w", p.Name, err)
	}
	return Prompt{System: p.SystemPrompt, User: buf.String()}, nil
}

// Registry holds the compiled profiles by name.
type Registry struct {
	profiles map[string]*GenerationProfile
}

func NewRegistry(profiles ...GenerationProfile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]*GenerationProfile, len(profiles))}
	for _, p := range profiles {
		if err := r.Add(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add compiles p and registers it, replacing any profile with the same name.
func (r *Registry) Add(p GenerationProfile) error {
	if err := p.Compile(); err != nil {
		return err
	}
	r.profiles[p.Name] = &p
	return nil
}

func (r *Registry) Get(name string) (*GenerationProfile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
	}
	return p, nil
}

// Names lists registered profiles in lexical order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.profiles))
	for n := range r.profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
