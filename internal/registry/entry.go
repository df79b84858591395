package registry

import (
	"strings"

	"stencil/internal/textutil"
)

// Entry is one coach or student in a reference table.
type Entry struct {
	// CanonicalName is the authoritative display form. Never empty.
	CanonicalName string
	FirstName     string
	LastName      string
	// Aliases are alternate spellings and nicknames.
	Aliases []string
	// ParentNames map guardians to the student (student registries only).
	ParentNames []string
	// EmailLocalPart matches the part of an address before the @.
	EmailLocalPart string
}

// First returns the entry's first name, deriving it from the canonical name
// when the field is unset.
func (e *Entry) First() string {
	if e.FirstName != "" {
		return e.FirstName
	}
	return textutil.FirstWord(e.CanonicalName)
}

// aliasForms returns every normalized string that should resolve to this
// entry, in a stable order: canonical name first, then name parts, aliases,
// parent names, and the email local part. Concatenated variants of multi-word
// forms are appended immediately after each form.
func (e *Entry) aliasForms() []string {
	seen := make(map[string]struct{})
	forms := make([]string, 0, 2*(len(e.Aliases)+len(e.ParentNames))+8)

	add := func(raw string) {
		n := textutil.NormalizeName(raw)
		if n == "" {
			return
		}
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			forms = append(forms, n)
		}
		if concat := textutil.ConcatenateName(n); concat != n {
			if _, dup := seen[concat]; !dup {
				seen[concat] = struct{}{}
				forms = append(forms, concat)
			}
		}
	}

	add(e.CanonicalName)
	if e.FirstName != "" && e.LastName != "" {
		add(e.FirstName + " " + e.LastName)
	}
	// First names alone are common in topics and speaker labels. Collisions
	// across entries resolve last-write-wins during index construction.
	add(e.First())
	for _, alias := range e.Aliases {
		add(alias)
	}
	for _, parent := range e.ParentNames {
		add(parent)
	}
	if local := strings.TrimSpace(e.EmailLocalPart); local != "" {
		add(emailLocalToName(local))
		add(local)
	}
	return forms
}

// emailLocalToName converts an email local part to a comparable name form:
// "jenny.duan" and "jenny_duan" both become "jenny duan".
func emailLocalToName(local string) string {
	replacer := strings.NewReplacer(".", " ", "_", " ", "-", " ", "+", " ")
	return replacer.Replace(local)
}
