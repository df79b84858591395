package registry

import (
	"strings"
	"sync/atomic"

	"stencil/internal/textutil"
)

// DefaultFuzzyThreshold is the minimum similarity ratio accepted by fuzzy
// lookups unless the caller overrides it.
const DefaultFuzzyThreshold = 0.8

// containmentMinLen guards partial-name matching: strings shorter than this
// never match by containment, only exactly or fuzzily.
const containmentMinLen = 3

type aliasRef struct {
	form  string
	entry *Entry
}

// Registry is an immutable lookup index over a set of entries. All lookup
// methods are pure functions and safe for concurrent use.
type Registry struct {
	entries []*Entry
	exact   map[string]*Entry
	aliases []aliasRef
}

// New builds a registry index from the provided entries. Entries with an
// empty canonical name are skipped. Alias collisions resolve last-write-wins,
// matching the reference data's construction order.
func New(entries []Entry) *Registry {
	r := &Registry{exact: make(map[string]*Entry)}
	for i := range entries {
		entry := entries[i]
		if strings.TrimSpace(entry.CanonicalName) == "" {
			continue
		}
		e := &entry
		r.entries = append(r.entries, e)
		for _, form := range e.aliasForms() {
			r.exact[form] = e
			r.aliases = append(r.aliases, aliasRef{form: form, entry: e})
		}
	}
	return r
}

// Len returns the number of indexed entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns the indexed entries in insertion order.
func (r *Registry) Entries() []*Entry {
	if r == nil {
		return nil
	}
	return r.entries
}

// LookupExact resolves text to an entry by, in order: full normalized match,
// full concatenated match, then containment in either direction. The
// containment pass permits partial-name matches for compound names ("Jenny"
// against "Jenny Duan") and runs in insertion order so earlier entries win.
func (r *Registry) LookupExact(text string) *Entry {
	if r == nil {
		return nil
	}
	n := textutil.NormalizeName(text)
	if n == "" {
		return nil
	}
	if e, ok := r.exact[n]; ok {
		return e
	}
	if concat := textutil.ConcatenateName(n); concat != n {
		if e, ok := r.exact[concat]; ok {
			return e
		}
	}
	if len(n) < containmentMinLen {
		return nil
	}
	for _, ref := range r.aliases {
		if len(ref.form) < containmentMinLen {
			continue
		}
		if strings.Contains(n, ref.form) || strings.Contains(ref.form, n) {
			return ref.entry
		}
	}
	return nil
}

// LookupFuzzy resolves text to the entry whose alias has the highest
// edit-distance similarity, provided it meets the threshold. Ties break to
// the first-inserted entry. Pass DefaultFuzzyThreshold unless a caller has a
// reason to be stricter.
func (r *Registry) LookupFuzzy(text string, threshold float64) *Entry {
	if r == nil {
		return nil
	}
	n := textutil.NormalizeName(text)
	if n == "" {
		return nil
	}
	var best *Entry
	bestScore := 0.0
	for _, ref := range r.aliases {
		score := textutil.SimilarityRatio(n, ref.form)
		if score >= threshold && score > bestScore {
			best = ref.entry
			bestScore = score
		}
	}
	return best
}

// Lookup tries exact resolution and falls back to fuzzy matching at the
// default threshold. This is the canonicalization path used by the resolver
// for raw pattern captures.
func (r *Registry) Lookup(text string) *Entry {
	if e := r.LookupExact(text); e != nil {
		return e
	}
	return r.LookupFuzzy(text, DefaultFuzzyThreshold)
}

// LookupEmail matches the local part of an email address against indexed
// email local parts and aliases. Returns nil for blank or unparsable input.
func (r *Registry) LookupEmail(email string) *Entry {
	if r == nil {
		return nil
	}
	local := strings.TrimSpace(email)
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	if local == "" {
		return nil
	}
	if e := r.LookupExact(local); e != nil {
		return e
	}
	return r.LookupExact(emailLocalToName(local))
}

// FindAliasIn returns the first entry whose alias appears as a substring of
// line, in insertion order. Used by transcript and chat scanning.
func (r *Registry) FindAliasIn(line string) *Entry {
	if r == nil {
		return nil
	}
	n := textutil.NormalizeName(line)
	if n == "" {
		return nil
	}
	for _, ref := range r.aliases {
		if len(ref.form) < containmentMinLen {
			continue
		}
		if strings.Contains(n, ref.form) {
			return ref.entry
		}
	}
	return nil
}

// Handle wraps a registry for atomic replacement. In-flight lookups keep the
// index they started with; Swap publishes a fully built replacement.
type Handle struct {
	current atomic.Pointer[Registry]
}

// NewHandle creates a handle seeded with the provided registry.
func NewHandle(r *Registry) *Handle {
	h := &Handle{}
	h.current.Store(r)
	return h
}

// Load returns the current registry snapshot.
func (h *Handle) Load() *Registry {
	return h.current.Load()
}

// Swap atomically replaces the registry and returns the previous snapshot.
func (h *Handle) Swap(r *Registry) *Registry {
	return h.current.Swap(r)
}
