package hubsite

import (
	"encoding/json"
	"fmt"
	"os"
)

// Seed is the decoded source-of-truth content document. Every field is
// optional at the document level: the seed is hand-maintained content, so
// decoding fails only on structurally invalid JSON, never on missing
// fields.
type Seed struct {
	Pages         Pages          `json:"pages"`
	Ecosystems    []Ecosystem    `json:"ecosystems"`
	Tools         []Tool         `json:"tools"`
	Events        []Event        `json:"events"`
	LearningPaths []LearningPath `json:"learning_paths"`
	Creators      []Creator      `json:"creators"`
	Posts         []Post         `json:"posts"`
	Resources     []Resource     `json:"resources"`
	JobSources    []JobSource    `json:"job_sources"`
	Taxonomy      Taxonomy       `json:"taxonomy"`
	Jobs          []Job          `json:"jobs"`
}

// seedDocument carries the deprecated alias keys alongside the canonical
// ones so ParseSeed can apply the precedence rule. A canonical key that is
// present decodes to a non-nil slice (even when empty), which is exactly
// the "canonical wins over alias" distinction we need.
type seedDocument struct {
	Seed
	Protocols   []Ecosystem `json:"protocols"`
	News        []Post      `json:"news"`
	JobsSources []JobSource `json:"jobs_sources"`
}

// ParseSeed decodes the raw seed document. Missing fields default; only
// structurally invalid bytes fail, wrapping ErrMalformedSeed.
func ParseSeed(data []byte) (*Seed, error) {
	var doc seedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
	}

	seed := doc.Seed
	if seed.Ecosystems == nil {
		seed.Ecosystems = doc.Protocols
	}
	if seed.Posts == nil {
		seed.Posts = doc.News
	}
	if seed.JobSources == nil {
		seed.JobSources = doc.JobsSources
	}

	return &seed, nil
}

// ParsePromo decodes the promotional-slides document, wrapping
// ErrMalformedPromo on invalid bytes.
func ParsePromo(data []byte) (*PromoDeck, error) {
	var deck PromoDeck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPromo, err)
	}
	return &deck, nil
}

// LoadSeed reads and parses the seed document from disk.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SeedError{Path: path, Op: "read", Err: err}
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, &SeedError{Path: path, Op: "parse", Err: err}
	}
	return seed, nil
}

// LoadPromo reads and parses the promo document from disk. Callers treat
// any failure as "no promo slides".
func LoadPromo(path string) (*PromoDeck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SeedError{Path: path, Op: "read", Err: err}
	}
	deck, err := ParsePromo(data)
	if err != nil {
		return nil, &SeedError{Path: path, Op: "parse", Err: err}
	}
	return deck, nil
}
