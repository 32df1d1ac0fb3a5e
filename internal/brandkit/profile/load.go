package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type profileFile struct {
	Profiles []yaml.Node `yaml:"profiles"`
}

type profileHeader struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends"`
}

// LoadFile reads YAML profiles from path and registers them on top of r.
// A profile with `extends: <name>` starts from that registered profile and only
// overrides the keys it sets.
func LoadFile(r *Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()
	return Load(r, f)
}

func Load(r *Registry, src io.Reader) error {
	var doc profileFile
	if err := yaml.NewDecoder(src).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode profiles: %w", err)
	}

	for i := range doc.Profiles {
		node := &doc.Profiles[i]

		var hdr profileHeader
		if err := node.Decode(&hdr); err != nil {
			return fmt.Errorf("profile #%d: %w", i, err)
		}

		var p GenerationProfile
		if hdr.Extends != "" {
			base, err := r.Get(hdr.Extends)
			if err != nil {
				return fmt.Errorf("profile %q extends: %w", hdr.Name, err)
			}
			p = *base
			p.tmpl = nil
		}
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("profile %q: %w", hdr.Name, err)
		}
		if err := r.Add(p); err != nil {
			return err
		}
	}
	return nil
}
