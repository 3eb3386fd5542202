package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed locales/*.json
var embeddedCatalogFS embed.FS

const embeddedDir = "locales"

// Bundle holds one immutable dictionary per locale.
type Bundle struct {
	dictionaries map[string]*Node
}

// LoadEmbedded loads the dictionaries compiled into the binary.
func LoadEmbedded(locales []string) (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS, embeddedDir, locales)
}

// LoadDir loads dictionaries from a directory on disk.
func LoadDir(dir string, locales []string) (*Bundle, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("locales dir is required")
	}
	return LoadFromFS(os.DirFS(dir), ".", locales)
}

// LoadFromFS loads <dir>/<code>.json for every locale code. Codes are
// matched case-insensitively against lower-case file names, and every
// JSON file in dir must belong to one of the locales.
func LoadFromFS(catalogFS fs.FS, dir string, locales []string) (*Bundle, error) {
	if catalogFS == nil {
		return nil, fmt.Errorf("catalog filesystem is required")
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}
	paths, err := fs.Glob(catalogFS, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	wanted := make(map[string]string, len(locales))
	for _, locale := range locales {
		code := strings.ToLower(strings.TrimSpace(locale))
		if code == "" {
			return nil, fmt.Errorf("locale code cannot be blank")
		}
		wanted[code] = locale
	}

	bundle := &Bundle{dictionaries: make(map[string]*Node, len(locales))}
	for _, catalogPath := range paths {
		code := strings.TrimSuffix(path.Base(catalogPath), ".json")
		locale, ok := wanted[code]
		if !ok {
			return nil, fmt.Errorf("catalog %s: %q is not a supported locale", catalogPath, code)
		}
		data, err := fs.ReadFile(catalogFS, catalogPath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", catalogPath, err)
		}
		root, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", catalogPath, err)
		}
		bundle.dictionaries[locale] = root
	}

	for _, locale := range locales {
		if _, ok := bundle.dictionaries[locale]; !ok {
			return nil, fmt.Errorf("catalog for locale %s is missing", locale)
		}
	}
	return bundle, nil
}

// NewBundle builds a bundle from prebuilt dictionaries.
func NewBundle(dictionaries map[string]*Node) *Bundle {
	bundle := &Bundle{dictionaries: make(map[string]*Node, len(dictionaries))}
	for locale, root := range dictionaries {
		bundle.dictionaries[locale] = root
	}
	return bundle
}

// Dictionary returns the root node for a locale.
func (b *Bundle) Dictionary(locale string) (*Node, bool) {
	if b == nil {
		return nil, false
	}
	root, ok := b.dictionaries[locale]
	if !ok || root == nil {
		return nil, false
	}
	return root, true
}

// Locales returns all loaded locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.dictionaries))
	for locale := range b.dictionaries {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Parse decodes one JSON dictionary. The document must be an object;
// nested objects become branches and strings become leaves.
func Parse(data []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("decode json: trailing data")
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("dictionary root must be an object")
	}
	return buildNode(raw, "")
}

func buildNode(raw any, at string) (*Node, error) {
	switch value := raw.(type) {
	case string:
		return Leaf(value), nil
	case map[string]any:
		children := make(map[string]*Node, len(value))
		for key, rawChild := range value {
			if strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("%s: key cannot be blank", describePath(at))
			}
			if strings.Contains(key, ".") {
				return nil, fmt.Errorf("%s: key %q cannot contain '.'", describePath(at), key)
			}
			childPath := key
			if at != "" {
				childPath = at + "." + key
			}
			child, err := buildNode(rawChild, childPath)
			if err != nil {
				return nil, err
			}
			children[key] = child
		}
		return &Node{kind: KindBranch, children: children}, nil
	default:
		return nil, fmt.Errorf("%s: value must be a string or object, got %s", describePath(at), jsonKind(raw))
	}
}

func describePath(at string) string {
	if at == "" {
		return "root"
	}
	return at
}

func jsonKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
