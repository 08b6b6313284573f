package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/iburimskiy/particle-emitter"

// The terminal host must build without a GPU/windowing stack, so nothing it
// reaches inside this module may import ebiten.
func TestTerminalHostAvoidsEbiten(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	var walk func(dir string)
	walk = func(dir string) {
		if seen[dir] {
			return
		}
		seen[dir] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		fset := token.NewFileSet()
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if strings.Contains(path, "hajimehoshi/ebiten") || strings.Contains(path, "go-gl/glfw") {
					rel, _ := filepath.Rel(root, filepath.Join(dir, name))
					t.Errorf("%s imports %s", rel, path)
				}
				if rest, ok := strings.CutPrefix(path, modulePath+"/"); ok {
					walk(filepath.Join(root, filepath.FromSlash(rest)))
				}
			}
		}
	}
	walk(filepath.Join(root, "cmd", "particles-tui"))

	if !seen[filepath.Join(root, "internal", "render", "term")] {
		t.Fatalf("terminal surface package not reached; visited %d packages", len(seen))
	}
}
