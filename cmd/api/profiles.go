package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/profile"
)

func loadRegistry(file string) (*profile.Registry, error) {
	registry, err := profile.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := profile.LoadFile(registry, file); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func newProfilesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect generation profiles",
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "YAML profiles file merged over the built-ins (default $PROFILES_FILE)")

	resolveFile := func() string {
		if file != "" {
			return file
		}
		return envOr("PROFILES_FILE", "")
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(resolveFile())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODEL\tTEMP\tMAX_TOKENS\tDESCRIPTION")
			for _, name := range registry.Names() {
				p, _ := registry.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%.2g\t%d\t%s\n", p.Name, p.Model, p.Temperature, p.MaxTokens, p.Description)
			}
			return w.Flush()
		},
	}

	var (
		name    string
		asJSON  bool
		request domain.BrandRequest
		userID  string
	)
	render := &cobra.Command{
		Use:   "render",
		Short: "Print the prompt a profile composes for a request, without calling the provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(resolveFile())
			if err != nil {
				return err
			}
			p, err := registry.Get(name)
			if err != nil {
				return err
			}
			request.UserID = domain.UserID(userID)
			if err := request.Validate(); err != nil {
				return err
			}
			prompt, err := p.Render(request)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"profile":     p.Name,
					"model":       p.Model,
					"temperature": p.Temperature,
					"max_tokens":  p.MaxTokens,
					"system":      prompt.System,
					"user":        prompt.User,
				})
			}
			fmt.Fprintf(out, "# profile: %s (model %s)\n\n## system\n%s\n\n## user\n%s\n", p.Name, p.Model, prompt.System, prompt.User)
			return nil
		},
	}
	f := render.Flags()
	f.StringVar(&name, "profile", profile.DefaultName, "profile name")
	f.BoolVar(&asJSON, "json", false, "print as JSON")
	f.StringVar(&request.BrandName, "brand-name", "", "brand name (required)")
	f.StringVar(&userID, "user-id", "cli", "user id")
	f.StringVar(&request.Industry, "industry", "", "industry")
	f.StringVar(&request.Audience, "audience", "", "target audience")
	f.StringVar(&request.Personality, "personality", "", "brand personality")
	f.StringVar(&request.Values, "values", "", "brand values")
	f.StringVar(&request.Keywords, "keywords", "", "keywords")
	f.StringVar(&request.Competitors, "competitors", "", "competitors")
	f.StringVar(&request.StylePreference, "style", "", "style preference")
	f.StringVar(&request.LogoDirection, "logo-direction", "", "logo direction")
	f.StringVar(&request.BrandType, "brand-type", "", "brand type")

	cmd.AddCommand(list, render)
	return cmd
}
