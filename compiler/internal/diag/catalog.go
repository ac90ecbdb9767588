package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "PTC0002"
	Title string `json:"title"` // short human title e.g., "unsupported statement"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per phase.
type Registry struct {
	Lexer     map[string]CodeEntry `json:"lexer"`
	Parser    map[string]CodeEntry `json:"parser"`
	Transpile map[string]CodeEntry `json:"transpile"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain is one of: "lexer", "parser", "transpile".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var section map[string]CodeEntry
	switch domain {
	case "lexer":
		section = reg.Lexer
	case "parser":
		section = reg.Parser
	case "transpile":
		section = reg.Transpile
	default:
		return CodeEntry{}, false
	}
	if section == nil {
		return CodeEntry{}, false
	}
	ce, ok := section[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise it synthesizes a
// placeholder with the provided defaults, so codes stay stable even if the
// catalog is temporarily missing an entry.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
