package i18n

import (
	"embed"
	"fmt"
	"strings"

	"prestige-properties/internal/handoff"

	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

// Catalog holds the flattened messages of every supported locale.
type Catalog struct {
	messages map[string]map[string]string
}

// LoadCatalog reads the embedded message files.
func LoadCatalog() (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string, len(Supported))}
	for _, l := range Supported {
		data, err := messageFiles.ReadFile("messages/" + l.Code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read messages for %s: %w", l.Code, err)
		}
		if err := c.Add(l.Code, data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustLoadCatalog is LoadCatalog for process start-up and tests.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Add merges a YAML message document into a locale.
func (c *Catalog) Add(code string, data []byte) error {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to unmarshal messages for %s: %w", code, err)
	}
	flat, ok := c.messages[code]
	if !ok {
		flat = make(map[string]string)
		c.messages[code] = flat
	}
	flatten("", tree, flat)
	return nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T looks key up in the locale, then in the default locale, and finally returns
// the key itself.
func (c *Catalog) T(l Locale, key string) string {
	if msg, ok := c.messages[l.Code][key]; ok {
		return msg
	}
	if msg, ok := c.messages[Default.Code][key]; ok {
		return msg
	}
	return key
}

// Tf is T with {name} placeholders replaced from args.
func (c *Catalog) Tf(l Locale, key string, args map[string]string) string {
	msg := c.T(l, key)
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// InquiryMessages renders handoff prefills in the given locale.
func (c *Catalog) InquiryMessages(l Locale) handoff.MessageFunc {
	return func(kind handoff.Kind, propertyName string) string {
		return c.Tf(l, "inquiry."+string(kind), map[string]string{"property": propertyName})
	}
}

// Translator binds a catalog to one locale for templates.
type Translator struct {
	catalog *Catalog
	Locale  Locale
}

func (c *Catalog) For(l Locale) Translator {
	return Translator{catalog: c, Locale: l}
}

func (t Translator) T(key string) string { return t.catalog.T(t.Locale, key) }

// Tf takes placeholder names and values as alternating arguments.
func (t Translator) Tf(key string, pairs ...string) string {
	args := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		args[pairs[i]] = pairs[i+1]
	}
	return t.catalog.Tf(t.Locale, key, args)
}

// Path localizes an application path.
func (t Translator) Path(path string) string { return LocalizedPath(t.Locale, path) }
