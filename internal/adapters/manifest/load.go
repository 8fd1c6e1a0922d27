package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
)

// Load reads every manifest named by paths and builds a Catalog. A path may
// be a file or a directory; directories contribute their *.yaml, *.yml and
// *.json files in lexical order. No paths yields a catalog holding only the
// built-in default source.
func Load(paths []string, opts ...Option) (*Catalog, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}

	docs := make([]document.ManifestDoc, 0, len(files))
	for _, f := range files {
		doc, err := ReadFile(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	cat, err := New(docs, opts...)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return cat, nil
}

// ReadFile decodes one manifest file. The parser is chosen by extension.
func ReadFile(path string) (document.ManifestDoc, error) {
	var doc document.ManifestDoc

	parser, err := parserFor(path)
	if err != nil {
		return doc, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return doc, fmt.Errorf("loading manifest %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return doc, fmt.Errorf("decoding manifest %s: %w", path, err)
	}
	return doc, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("manifest %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading manifest path: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading manifest directory %s: %w", p, err)
		}
		var dirFiles []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".yaml", ".yml", ".json":
				dirFiles = append(dirFiles, filepath.Join(p, e.Name()))
			}
		}
		slices.Sort(dirFiles)
		files = append(files, dirFiles...)
	}
	return files, nil
}
