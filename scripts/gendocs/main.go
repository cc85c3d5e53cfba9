// Package main provides a generator that extracts the feature catalog and
// matcher metadata from cxxstd source code and generates markdown
// documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -outdir=docs/features
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers"
)

var outDirFlag = flag.String("outdir", "", "output directory (default: docs/features)")

// groupDescriptions provides human-readable descriptions for feature groups.
var groupDescriptions = map[string]string{
	"consteval": "Constant-evaluation constructs: consteval branches, size queries in constant contexts, try blocks in constexpr functions and deferred assertions.",
	"deduction": "Type deduction and conversion gates: conditional explicit, decay copies, deduced parameters and explicit CTAD.",
	"operators": "Operator declaration forms: static call operators and multi-argument subscripts.",
	"records":   "Record and closure member forms: by-value instance captures and union member initializers.",
}

func main() {
	flag.Parse()

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Join(projectRoot, "docs", "features")
	}

	if err := generateFeatureDocs(outDir); err != nil {
		log.Fatalf("failed to generate feature docs: %v", err)
	}
}

// findProjectRoot walks upward until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

// generateFeatureDocs writes one markdown page per feature group plus an
// index page.
func generateFeatureDocs(outDir string) error {
	log.Printf("Generating feature docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cat := catalog.Default()
	byGroup := make(map[string][]catalog.FeatureDescriptor)
	for _, desc := range cat.All() {
		byGroup[desc.Group] = append(byGroup[desc.Group], desc)
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	if err := generateIndex(outDir, groups, byGroup); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groups {
		if err := generateGroupPage(outDir, group, byGroup[group]); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}
	return nil
}

func generateIndex(outDir string, groups []string, byGroup map[string][]catalog.FeatureDescriptor) error {
	var b strings.Builder
	b.WriteString("# Feature Catalog\n\n")
	b.WriteString("Core-language constructs cxxstd recognizes, grouped by the matcher package that detects them.\n\n")
	b.WriteString("| Group | Features | Description |\n")
	b.WriteString("|-------|----------|-------------|\n")
	for _, group := range groups {
		fmt.Fprintf(&b, "| [%s](%s.md) | %d | %s |\n",
			group, group, len(byGroup[group]), groupDescriptions[group])
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), []byte(b.String()), 0600)
}

func generateGroupPage(outDir, group string, descs []catalog.FeatureDescriptor) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", group)
	if d, ok := groupDescriptions[group]; ok {
		b.WriteString(d + "\n\n")
	}

	for _, desc := range descs {
		fmt.Fprintf(&b, "## %s: %s\n\n", desc.ID, desc.Name)
		fmt.Fprintf(&b, "Requires C++%d.\n\n", desc.MinStandard)
		b.WriteString(desc.Description + "\n\n")

		if desc.BadExample != "" {
			b.WriteString("Gated construct:\n\n```cpp\n" + desc.BadExample + "\n```\n\n")
		}
		if desc.GoodExample != "" {
			b.WriteString("Earlier-standard equivalent:\n\n```cpp\n" + desc.GoodExample + "\n```\n\n")
		}
		if def, ok := classify.GetByID(desc.ID); ok && def.Disambiguation != "" {
			b.WriteString("Disambiguation: " + def.Disambiguation + "\n\n")
		}
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), []byte(b.String()), 0600)
}
