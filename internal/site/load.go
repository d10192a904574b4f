package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix scopes environment overrides, e.g. SEAWAVES_SITE_CONTACT_EMAIL
// overrides contact.email.
const EnvPrefix = "SEAWAVES_SITE_"

//go:embed content.yaml
var defaultContent []byte

// Default returns the embedded content.
func Default() (Content, error) {
	var c Content
	if err := yamlv3.Unmarshal(defaultContent, &c); err != nil {
		return Content{}, fmt.Errorf("decoding embedded content: %w", err)
	}
	return c, nil
}

// Load starts from the embedded content, overlays the YAML file at path when
// it is non-empty, then overlays SEAWAVES_SITE_* environment variables.
func Load(path string) (Content, error) {
	c, err := Default()
	if err != nil {
		return Content{}, err
	}

	k := koanf.New(".")
	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err != nil {
			return Content{}, fmt.Errorf("accessing content %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Content{}, fmt.Errorf("reading content %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return Content{}, fmt.Errorf("loading env overrides: %w", err)
	}
	if err := k.Unmarshal("", &c); err != nil {
		return Content{}, fmt.Errorf("unmarshalling content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks the invariants the page controller relies on.
func (c Content) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Brand.Name) == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}
	if len(c.Sections) == 0 {
		errs = append(errs, errors.New("at least one section is required"))
	}
	seen := make(map[string]struct{}, len(c.Sections))
	for i, s := range c.Sections {
		if !IsKnown(s.ID) {
			errs = append(errs, fmt.Errorf("sections[%d]: unknown section id %q", i, s.ID))
			continue
		}
		if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate section id %q", i, s.ID))
		}
		seen[s.ID] = struct{}{}
	}
	if target := c.Popup.Target; target != "" && !IsKnown(target) {
		errs = append(errs, fmt.Errorf("popup.target: unknown section id %q", target))
	}
	if len(c.Capabilities) == 0 {
		errs = append(errs, errors.New("at least one capability is required"))
	}
	if email := strings.TrimSpace(c.Contact.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, fmt.Errorf("contact.email %q is not an email address", email))
	}
	return errors.Join(errs...)
}
