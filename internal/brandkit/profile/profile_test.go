package profile

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"classic", "essentials", "identity", "studio"}, r.Names()); diff != "" {
		t.Errorf("profile names mismatch (-want +got):\n%s", diff)
	}

	p, err := r.Get(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.Model)
	assert.Equal(t, 0.7, p.Temperature)
	assert.Equal(t, 1200, p.MaxTokens)
	assert.True(t, p.Shape.ColorRoles)

	_, err = r.Get("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	t.Run("studio uses Not specified", func(t *testing.T) {
		p, err := r.Get("studio")
		require.NoError(t, err)

		prompt, err := p.Render(domain.BrandRequest{BrandName: "Nova", UserID: "u1"})
		require.NoError(t, err)

		assert.Contains(t, prompt.User, "Brand Name: Nova\n")
		assert.Contains(t, prompt.User, "Industry: Not specified\n")
		assert.Contains(t, prompt.User, "Competitors: Not specified\n")
		assert.Contains(t, prompt.User, "Visual Direction: Not specified\n")
		assert.Contains(t, prompt.System, "Output ONLY valid JSON")
	})

	t.Run("essentials uses None", func(t *testing.T) {
		p, err := r.Get("essentials")
		require.NoError(t, err)

		prompt, err := p.Render(domain.BrandRequest{BrandName: "Nova", UserID: "u1", Audience: "students"})
		require.NoError(t, err)

		assert.Contains(t, prompt.User, "Industry: None\n")
		assert.Contains(t, prompt.User, "Audience: students\n")
	})

	t.Run("supplied values are passed verbatim", func(t *testing.T) {
		p, err := r.Get("studio")
		require.NoError(t, err)

		prompt, err := p.Render(domain.BrandRequest{BrandName: "  Nova  ", UserID: "u1", Industry: "<b>AI</b>"})
		require.NoError(t, err)

		assert.Contains(t, prompt.User, "Brand Name:   Nova  \n")
		assert.Contains(t, prompt.User, "Industry: <b>AI</b>\n")
	})
}

func TestCompile_RejectsIncompleteProfiles(t *testing.T) {
	cases := map[string]GenerationProfile{
		"no name":      {Model: "m", MaxTokens: 1, UserTemplate: "x"},
		"no model":     {Name: "a", MaxTokens: 1, UserTemplate: "x"},
		"no tokens":    {Name: "a", Model: "m", UserTemplate: "x"},
		"no template":  {Name: "a", Model: "m", MaxTokens: 1},
		"bad template": {Name: "a", Model: "m", MaxTokens: 1, UserTemplate: "{{.BrandName"},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, p.Compile())
		})
	}
}

func TestRender_UnknownFieldFails(t *testing.T) {
	p := GenerationProfile{Name: "x", Model: "m", MaxTokens: 10, UserTemplate: "{{.Nope}}"}
	require.NoError(t, p.Compile())

	_, err := p.Render(domain.BrandRequest{BrandName: "Nova", UserID: "u1"})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	src := `
profiles:
  - name: studio-cheap
    extends: studio
    model: gpt-4o-mini
    max_tokens: 800
  - name: haiku
    model: gemini-2.5-flash
    temperature: 0.9
    max_tokens: 400
    placeholder: None
    strict: true
    system_prompt: Return JSON only.
    user_template: "Brand: {{.BrandName}} / {{.Industry}}"
    shape:
      taglines: 3
      min_colors: 2
      max_colors: 5
`
	require.NoError(t, Load(r, strings.NewReader(src)))

	cheap, err := r.Get("studio-cheap")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cheap.Model)
	assert.Equal(t, 800, cheap.MaxTokens)
	assert.Equal(t, 0.7, cheap.Temperature)
	assert.True(t, cheap.Shape.ColorRoles)

	studio, err := r.Get("studio")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", studio.Model, "base profile must be untouched")

	haiku, err := r.Get("haiku")
	require.NoError(t, err)
	assert.True(t, haiku.Strict)
	prompt, err := haiku.Render(domain.BrandRequest{BrandName: "Nova", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Brand: Nova / None", prompt.User)
	assert.Equal(t, "Return JSON only.", prompt.System)
}

func TestLoad_Errors(t *testing.T) {
	r, err := NewDefaultRegistry()
	require.NoError(t, err)

	assert.ErrorIs(t, Load(r, strings.NewReader("profiles:\n  - name: x\n    extends: missing\n")), domain.ErrUnknownProfile)
	assert.Error(t, Load(r, strings.NewReader("profiles:\n  - name: x\n")))
	assert.NoError(t, Load(r, strings.NewReader("")))
}

func TestRender_ConcurrentOnUncompiledProfile(t *testing.T) {
	p := &Builtins()[0]
	req := domain.BrandRequest{BrandName: "Nova", UserID: "u1"}

	var wg sync.WaitGroup
	results := make([]Prompt, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.Render(req)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Contains(t, results[0].User, "Brand Name: Nova")
	assert.Nil(t, p.tmpl, "Render must not mutate a shared profile")
}
