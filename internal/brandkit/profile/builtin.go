package profile

// DefaultName is the profile used when BRAND_PROFILE is unset.
const DefaultName = "studio"

const designerSystemPrompt = `
You are a senior brand strategist and identity designer.

You create:
- Concept-driven logos
- Structured color systems
- Intentional typography
- Cohesive brand identity

RULES:
- Output ONLY valid JSON
- No markdown
- No explanation text outside JSON

LOGO RULES:
- Must include a symbolic icon + wordmark
- Symbol must reflect brand positioning
- Clean geometry
- Modern minimal
- Designed for dark background
- Single line SVG
- Use only <svg>, <text>, <rect>, <circle>, <line>, <path>
- No gradients or images

Think like a real brand designer, not a template generator.
`

const assistantSystemPrompt = `
You are a branding assistant.
Return ONLY valid JSON. No markdown, no commentary.
The logo must be a single line SVG using only <svg>, <text>, <rect>, <circle>, <line>, <path>.
Never use gradients or embedded images.
`

const studioUserTemplate = `
Brand Name: {{.BrandName}}
Industry: {{.Industry}}
Audience: {{.Audience}}
Personality: {{.Personality}}
Core Values: {{.Values}}
Competitors: {{.Competitors}}
Preferred Logo Style: {{.StylePreference}}
Visual Direction: {{.LogoDirection}}

Generate this EXACT JSON structure:

{
  "taglines": ["", "", ""],

  "logo_svg": "<svg width='260' height='100' viewBox='0 0 260 100' xmlns='http://www.w3.org/2000/svg'>...</svg>",

  "logo_description": "",

  "colors": [
    {"role":"primary","name":"","hex":""},
    {"role":"secondary","name":"","hex":""},
    {"role":"accent","name":"","hex":""},
    {"role":"neutral","name":"","hex":""},
    {"role":"neutral","name":"","hex":""}
  ],

  "fonts": {
    "heading": "",
    "body": ""
  },

  "instagram_bio": "",

  "captions": ["", "", ""]
}

IMPORTANT:
- logo_svg must be ONE LINE
- Use single quotes in SVG
- Symbol must visually represent brand concept
- Balanced layout
`

const classicUserTemplate = `
Create a brand kit for:

Brand Name: {{.BrandName}}
Industry: {{.Industry}}
Target Audience: {{.Audience}}
Brand Personality: {{.Personality}}
Keywords: {{.Keywords}}

Return JSON with exactly these keys:

{
  "taglines": ["", "", ""],
  "logo_svg": "<svg width='240' height='80' xmlns='http://www.w3.org/2000/svg'>...</svg>",
  "logo_description": "",
  "colors": [
    {"name":"","hex":""},
    {"name":"","hex":""},
    {"name":"","hex":""},
    {"name":"","hex":""}
  ],
  "fonts": ["", ""],
  "instagram_bio": "",
  "captions": ["", "", ""]
}

The SVG must be ONE LINE and use single quotes for every attribute.
`

const essentialsUserTemplate = `
Brand Name: {{.BrandName}}
Industry: {{.Industry}}
Audience: {{.Audience}}
Personality: {{.Personality}}

Respond with this JSON object and nothing else:

{
  "taglines": ["", "", ""],
  "logo_svg": "<svg xmlns='http://www.w3.org/2000/svg' width='200' height='80'>...</svg>",
  "logo_description": "",
  "colors": [{"name":"","hex":""}, {"name":"","hex":""}, {"name":"","hex":""}],
  "fonts": {"heading": "", "body": ""},
  "instagram_bio": "",
  "captions": ["", "", ""]
}

logo_svg must be one line with single-quoted attributes.
`

const identityUserTemplate = `
Brand Name: {{.BrandName}}
Brand Type: {{.BrandType}}
Industry: {{.Industry}}
Audience: {{.Audience}}
Personality: {{.Personality}}
Keywords: {{.Keywords}}
Competitors: {{.Competitors}}
Style Direction: {{.StylePreference}}

Generate this EXACT JSON structure:

{
  "taglines": ["", "", ""],
  "logo_svg": "<svg width='260' height='100' viewBox='0 0 260 100' xmlns='http://www.w3.org/2000/svg'>...</svg>",
  "logo_description": "",
  "colors": [
    {"role":"primary","name":"","hex":""},
    {"role":"secondary","name":"","hex":""},
    {"role":"accent","name":"","hex":""}
  ],
  "fonts": {"heading": "", "body": ""},
  "instagram_bio": "",
  "captions": ["", "", ""]
}

logo_svg must be ONE LINE, use single quotes, and differentiate the brand from its competitors.
`

// Builtins returns the shipped profiles. Callers receive fresh copies.
func Builtins() []GenerationProfile {
	return []GenerationProfile{
		{
			Name:         "studio",
			Description:  "concept-driven identity with color roles and heading/body fonts",
			Model:        "gpt-4o",
			Temperature:  0.7,
			MaxTokens:    1200,
			Placeholder:  "Not specified",
			SystemPrompt: designerSystemPrompt,
			UserTemplate: studioUserTemplate,
			Shape:        Shape{Taglines: 3, Captions: 3, MinColors: 5, MaxColors: 5, ColorRoles: true},
		},
		{
			Name:         "classic",
			Description:  "name/hex palette with a font list",
			Model:        "gpt-4o-mini",
			Temperature:  0.8,
			MaxTokens:    1000,
			Placeholder:  "Not specified",
			SystemPrompt: assistantSystemPrompt,
			UserTemplate: classicUserTemplate,
			Shape:        Shape{Taglines: 3, Captions: 3, MinColors: 4, MaxColors: 4, FontsAsList: true},
		},
		{
			Name:         "essentials",
			Description:  "minimal input set, placeholders read None",
			Model:        "gpt-4o-mini",
			Temperature:  0.7,
			MaxTokens:    900,
			Placeholder:  "None",
			SystemPrompt: assistantSystemPrompt,
			UserTemplate: essentialsUserTemplate,
			Shape:        Shape{Taglines: 3, Captions: 3, MinColors: 2, MaxColors: 5},
		},
		{
			Name:         "identity",
			Description:  "competitive positioning with brand type and keywords",
			Model:        "gpt-4o",
			Temperature:  0.6,
			MaxTokens:    1200,
			Placeholder:  "Not specified",
			SystemPrompt: designerSystemPrompt,
			UserTemplate: identityUserTemplate,
			Shape:        Shape{Taglines: 3, Captions: 3, MinColors: 3, MaxColors: 3, ColorRoles: true},
		},
	}
}

// NewDefaultRegistry registers the built-in profiles.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(Builtins()...)
}
