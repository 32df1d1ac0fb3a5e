package kit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/profile"
)

// Parse accepts the raw completion text only if it is a single valid JSON value.
// The document is returned as-is; its inner schema is not enforced here.
func Parse(raw string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return nil, domain.Fail(domain.ErrGenerationParse, errors.New("empty output"))
	}
	if !json.Valid(trimmed) {
		var v any
		err := json.Unmarshal(trimmed, &v)
		return nil, domain.Fail(domain.ErrGenerationParse, err)
	}
	// Postgres jsonb rejects both; catching them here keeps the failure a parse failure.
	if !utf8.Valid(trimmed) {
		return nil, domain.Fail(domain.ErrGenerationParse, errors.New("output is not valid UTF-8"))
	}
	if err := rejectNUL(trimmed); err != nil {
		return nil, domain.Fail(domain.ErrGenerationParse, err)
	}
	return json.RawMessage(trimmed), nil
}

// rejectNUL fails when any decoded string, key or value, contains U+0000.
func rejectNUL(doc []byte) error {
	dec := json.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s, ok := tok.(string); ok && strings.ContainsRune(s, 0) {
			return errors.New("output contains a \\u0000 escape")
		}
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// document mirrors the keys every profile asks for. Fonts and colors vary by
// profile, so they stay raw until the shape says how to read them.
type document struct {
	Taglines        []string          `json:"taglines"`
	LogoSVG         *string           `json:"logo_svg"`
	LogoDescription *string           `json:"logo_description"`
	Colors          []json.RawMessage `json:"colors"`
	Fonts           json.RawMessage   `json:"fonts"`
	InstagramBio    *string           `json:"instagram_bio"`
	Captions        []string          `json:"captions"`
}

type color struct {
	Role string `json:"role"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Inspect reports where doc departs from the shape. It never fails on its own;
// callers decide whether issues are fatal.
func Inspect(shape profile.Shape, doc json.RawMessage) []string {
	var d document
	if err := json.Unmarshal(doc, &d); err != nil {
		return []string{"result is not a JSON object with the expected keys: " + err.Error()}
	}

	var issues []string
	addf := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	if shape.Taglines > 0 && len(d.Taglines) != shape.Taglines {
		addf("taglines: want %d, got %d", shape.Taglines, len(d.Taglines))
	}
	if shape.Captions > 0 && len(d.Captions) != shape.Captions {
		addf("captions: want %d, got %d", shape.Captions, len(d.Captions))
	}

	switch {
	case d.LogoSVG == nil:
		addf("logo_svg: missing")
	case strings.ContainsAny(*d.LogoSVG, "\r\n"):
		addf("logo_svg: not a single line")
	}
	if d.LogoDescription == nil {
		addf("logo_description: missing")
	}
	if d.InstagramBio == nil {
		addf("instagram_bio: missing")
	}

	if shape.MinColors > 0 && len(d.Colors) < shape.MinColors {
		addf("colors: want at least %d, got %d", shape.MinColors, len(d.Colors))
	}
	if shape.MaxColors > 0 && len(d.Colors) > shape.MaxColors {
		addf("colors: want at most %d, got %d", shape.MaxColors, len(d.Colors))
	}
	for i, raw := range d.Colors {
		var c color
		if err := json.Unmarshal(raw, &c); err != nil {
			addf("colors[%d]: not an object", i)
			continue
		}
		if c.Name == "" {
			addf("colors[%d]: missing name", i)
		}
		if !hexColor.MatchString(c.Hex) {
			addf("colors[%d]: invalid hex %q", i, c.Hex)
		}
		if shape.ColorRoles && c.Role == "" {
			addf("colors[%d]: missing role", i)
		}
	}

	issues = append(issues, inspectFonts(shape, d.Fonts)...)
	return issues
}

func inspectFonts(shape profile.Shape, raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{"fonts: missing"}
	}
	if shape.FontsAsList {
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return []string{"fonts: want a list of names"}
		}
		if len(list) < 2 {
			return []string{fmt.Sprintf("fonts: want 2 entries, got %d", len(list))}
		}
		return nil
	}
	var pair struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return []string{"fonts: want {heading, body}"}
	}
	if pair.Heading == "" || pair.Body == "" {
		return []string{"fonts: heading and body are required"}
	}
	return nil
}
