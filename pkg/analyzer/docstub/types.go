package docstub

import (
	"time"

	"github.com/glosslabs/gloss/pkg/extract"
)

// Stub is the documentation skeleton for one discovered function.
type Stub struct {
	Signature extract.Signature `json:"signature" toon:"signature"`
	Lines     []string          `json:"lines" toon:"lines"`
}

// Block is the full documentation result for one snippet.
type Block struct {
	Stubs       []Stub    `json:"stubs"`
	Generic     bool      `json:"generic"` // true when no functions were found
	GeneratedAt time.Time `json:"generated_at"`
}
