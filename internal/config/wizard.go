package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the site metadata and server settings, saves the
// result to path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to phebe! Let's configure your site.")
	fmt.Println()

	// An existing file supplies the prompt defaults.
	cfg, err := Load(path)
	if err != nil {
		cfg = DefaultConfig()
	}

	// 1. Site metadata.
	title, err := prompt("Site title", cfg.Site.Title, required)
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	author, err := prompt("Author", cfg.Site.Author, nil)
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	description, err := prompt("Description", cfg.Site.Description, nil)
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	siteURL, err := prompt("Public URL (used in the RSS feed)", cfg.Site.URL, absoluteURL)
	if err != nil {
		return nil, fmt.Errorf("site url: %w", err)
	}

	// 2. Listen address.
	listenAddr, err := prompt("Listen address", cfg.ListenAddr, required)
	if err != nil {
		return nil, fmt.Errorf("listen address: %w", err)
	}

	// 3. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"text (human readable)",
			"json (one object per line)",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	formats := []LogFormat{LogFormatText, LogFormatJSON}

	// 4. Log file.
	logFile, err := prompt("Log file (blank for stderr)", cfg.Log.File, nil)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}

	// 5. CORS.
	originsStr, err := prompt("Allowed CORS origins (comma-separated, blank for none)", strings.Join(cfg.CORS.AllowedOrigins, ","), nil)
	if err != nil {
		return nil, fmt.Errorf("cors origins: %w", err)
	}

	cfg.Site = SiteConfig{
		Title:       title,
		Author:      author,
		Description: description,
		URL:         siteURL,
	}
	cfg.ListenAddr = listenAddr
	cfg.Log.Format = formats[formatIdx]
	cfg.Log.File = logFile
	cfg.CORS.AllowedOrigins = splitAndTrim(originsStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func prompt(label, def string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
	}
	return p.Run()
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func absoluteURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("must be an absolute URL such as https://example.com")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
