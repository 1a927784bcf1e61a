package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/blossomtrace/core"
)

// Stdin is the path that makes Load read the text document from standard input.
const Stdin = "-"

// Load reads a graph from path. ".yaml", ".yml" and ".json" files are parsed
// with ParseYAML, anything else with ParseDocument; Stdin reads a text
// document from os.Stdin.
func Load(path string) (*core.Graph, error) {
	if path == Stdin {
		return ParseDocument(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer func() { _ = f.Close() }()

	g, err := Read(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return g, nil
}

// Read parses r in the format implied by the file extension ext.
func Read(r io.Reader, ext string) (*core.Graph, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		return ParseYAML(r)
	default:
		return ParseDocument(r)
	}
}
