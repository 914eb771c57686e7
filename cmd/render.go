package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arendjr/phebe/internal/theme"
)

var (
	renderTheme string
	renderJSON  bool
)

var renderCmd = &cobra.Command{
	Use:   "render PATH",
	Short: "Print one pre-rendered page variant",
	Long: `Builds the site exactly as serve would and writes the variant for PATH
to stdout. Use --theme to pick the color scheme and --json for the
JSON variant.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pref, err := parseThemeFlag(renderTheme)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		built, err := buildSite(cfg)
		if err != nil {
			return err
		}

		path := args[0]
		var (
			body []byte
			ok   bool
		)
		if renderJSON {
			body, ok = built.cache.JSON(path)
		} else {
			body, ok = built.cache.HTML(path, pref)
		}
		if !ok {
			return fmt.Errorf("no page at %s (known: %v)", path, built.cache.Paths())
		}

		_, err = cmd.OutOrStdout().Write(body)
		return err
	},
}

func parseThemeFlag(s string) (theme.Preference, error) {
	switch s {
	case "light":
		return theme.Light, nil
	case "dark":
		return theme.Dark, nil
	case "auto", "":
		return theme.Unspecified, nil
	default:
		return theme.Unspecified, fmt.Errorf("invalid --theme %q: must be light, dark or auto", s)
	}
}

func init() {
	renderCmd.Flags().StringVar(&renderTheme, "theme", "auto", "color scheme: light, dark or auto")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the JSON variant instead of HTML")
	rootCmd.AddCommand(renderCmd)
}
