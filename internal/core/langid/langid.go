// Package langid canonicalizes programming language names reported by
// editor plugins. Plugins disagree wildly ("TypeScript", "ts", "TSX",
// fullwidth forms from IMEs), so session records store the folded slug.
// Pipeline
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove format chars ZWJ ZWNJ FEFF etc
// 5 Width fold fullwidth to ASCII
// 6 Trim and collapse inner whitespace to single spaces
// 7 Alias table lookup
package langid

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// aliases maps folded plugin spellings to canonical slugs.
// Keys must already be in folded form
var aliases = map[string]string{
	"ts":           "typescript",
	"tsx":          "typescript",
	"typescript":   "typescript",
	"js":           "javascript",
	"jsx":          "javascript",
	"javascript":   "javascript",
	"node":         "javascript",
	"py":           "python",
	"python":       "python",
	"python3":      "python",
	"golang":       "go",
	"go":           "go",
	"rb":           "ruby",
	"ruby":         "ruby",
	"rs":           "rust",
	"rust":         "rust",
	"c++":          "cpp",
	"cpp":          "cpp",
	"c#":           "csharp",
	"cs":           "csharp",
	"csharp":       "csharp",
	"objective-c":  "objc",
	"objc":         "objc",
	"kt":           "kotlin",
	"kotlin":       "kotlin",
	"java":         "java",
	"shellscript":  "shell",
	"sh":           "shell",
	"bash":         "shell",
	"zsh":          "shell",
	"shell":        "shell",
	"yml":          "yaml",
	"yaml":         "yaml",
	"md":           "markdown",
	"markdown":     "markdown",
	"plaintext":    "text",
	"plain text":   "text",
	"text":         "text",
	"sql":          "sql",
	"postgres":     "sql",
	"html":         "html",
	"css":          "css",
	"scss":         "css",
	"php":          "php",
	"swift":        "swift",
	"dart":         "dart",
	"scala":        "scala",
	"elixir":       "elixir",
	"ex":           "elixir",
	"clojure":      "clojure",
	"haskell":      "haskell",
	"hs":           "haskell",
	"lua":          "lua",
	"r":            "r",
	"perl":         "perl",
	"dockerfile":   "dockerfile",
	"makefile":     "makefile",
	"jupyter":      "notebook",
	"ipynb":        "notebook",
	"vue":          "vue",
	"svelte":       "svelte",
	"terraform":    "terraform",
	"hcl":          "terraform",
	"proto":        "protobuf",
	"protobuf":     "protobuf",
	"json":         "json",
	"jsonc":        "json",
	"toml":         "toml",
	"graphql":      "graphql",
	"gql":          "graphql",
	"zig":          "zig",
	"nim":          "nim",
	"ocaml":        "ocaml",
	"ml":           "ocaml",
	"f#":           "fsharp",
	"fsharp":       "fsharp",
	"visual basic": "vb",
	"vb":           "vb",
	"assembly":     "asm",
	"asm":          "asm",
}

// Canonical returns the canonical slug for a reported language name.
// Unknown names come back folded rather than empty so new languages
// still group consistently. An empty or whitespace-only name folds to ""
func Canonical(name string) string {
	f := fold(name)
	if f == "" {
		return ""
	}
	if c, ok := aliases[f]; ok {
		return c
	}
	return f
}

// Fold canonicalizes a list of names, dropping empties and duplicates
// while keeping first-seen order
func Fold(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		c := Canonical(n)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fold(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6 collapse whitespace and trim
	return collapseSpaces(ns)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
