package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BrandRequest is the body of POST /generate-brand-kit.
// Optional fields stay empty until WithDefaults substitutes the profile placeholder.
type BrandRequest struct {
	BrandName       string `json:"brandName"`
	UserID          UserID `json:"userId"`
	Industry        string `json:"industry,omitempty"`
	Audience        string `json:"audience,omitempty"`
	Personality     string `json:"personality,omitempty"`
	Values          string `json:"values,omitempty"`
	Keywords        string `json:"keywords,omitempty"`
	Competitors     string `json:"competitors,omitempty"`
	StylePreference string `json:"stylePreference,omitempty"`
	LogoDirection   string `json:"logoDirection,omitempty"`
	BrandType       string `json:"brandType,omitempty"`
}

// UserID is an opaque identifier. Clients send it either as a JSON string or a number.
type UserID string

func (u *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("userId must be a string or number")
	}
	*u = UserID(n.String())
	return nil
}

func (u UserID) String() string { return string(u) }

// Project is the persisted record of one request's input parameters.
type Project struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	BrandName   string            `json:"brand_name"`
	Industry    string            `json:"industry,omitempty"`
	Audience    string            `json:"audience,omitempty"`
	Personality string            `json:"personality,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// BrandKit holds the generation result owned by exactly one Project.
// Result is kept as an opaque JSON document.
type BrandKit struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Profile   string          `json:"profile"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// DashboardEntry is one row of GET /my-kits/:userId.
// Kit is nil when the project never got a kit.
type DashboardEntry struct {
	ID        string          `json:"id"`
	BrandName string          `json:"brand_name"`
	CreatedAt time.Time       `json:"created_at"`
	Kit       json.RawMessage `json:"kit"`
}

// CreateProjectRequest carries the validated request into the project store.
type CreateProjectRequest struct {
	UserID      string
	BrandName   string
	Industry    string
	Audience    string
	Personality string
	Details     map[string]string
}

// CreateKitRequest carries a parsed result into the kit store.
type CreateKitRequest struct {
	ProjectID string
	Profile   string
	Result    json.RawMessage
}
