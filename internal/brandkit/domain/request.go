package domain

// DefaultPlaceholder is substituted for any optional field the caller left out.
const DefaultPlaceholder = "Not specified"

// Validate checks presence of the two required fields. Values are not trimmed.
func (r BrandRequest) Validate() error {
	if r.BrandName == "" || r.UserID == "" {
		return ErrValidation
	}
	return nil
}

// WithDefaults returns a copy of r with every empty optional field set to placeholder.
func (r BrandRequest) WithDefaults(placeholder string) BrandRequest {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	out := r
	for _, f := range out.optional() {
		if *f == "" {
			*f = placeholder
		}
	}
	return out
}

// Details snapshots the descriptive fields that were actually supplied.
func (r BrandRequest) Details() map[string]string {
	d := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			d[k] = v
		}
	}
	set("industry", r.Industry)
	set("audience", r.Audience)
	set("personality", r.Personality)
	set("values", r.Values)
	set("keywords", r.Keywords)
	set("competitors", r.Competitors)
	set("stylePreference", r.StylePreference)
	set("logoDirection", r.LogoDirection)
	set("brandType", r.BrandType)
	return d
}

// ProjectRequest maps a validated request onto the project store input.
func (r BrandRequest) ProjectRequest() CreateProjectRequest {
	return CreateProjectRequest{
		UserID:      r.UserID.String(),
		BrandName:   r.BrandName,
		Industry:    r.Industry,
		Audience:    r.Audience,
		Personality: r.Personality,
		Details:     r.Details(),
	}
}

func (r *BrandRequest) optional() []*string {
	return []*string{
		&r.Industry,
		&r.Audience,
		&r.Personality,
		&r.Values,
		&r.Keywords,
		&r.Competitors,
		&r.StylePreference,
		&r.LogoDirection,
		&r.BrandType,
	}
}
