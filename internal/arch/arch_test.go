// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Filter stages and presentation must stay decoupled: core knows nothing of
// the CLI, writers know nothing of orchestration.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"crypticsj-core/": {
			"crypticsj/internal/", "crypticsj/cmd/", "crypticsj/pkg/",
		},
		"crypticsj/internal/output": {
			"crypticsj/internal/pipeline", "crypticsj/internal/app",
			"crypticsj/internal/cli", "crypticsj/internal/summarycli",
			"crypticsj/cmd/",
		},
		"crypticsj/internal/writers": {
			"crypticsj/internal/pipeline", "crypticsj/internal/app",
			"crypticsj/internal/cli", "crypticsj/internal/summarycli",
			"crypticsj/cmd/",
		},
		"crypticsj/internal/pipeline": {
			"crypticsj/internal/app", "crypticsj/internal/summaryapp",
			"crypticsj/internal/cli", "crypticsj/internal/summarycli",
			"crypticsj/internal/writers", "crypticsj/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		imp := p.ImportPath
		if !strings.HasPrefix(imp, "crypticsj") {
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" -> "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
