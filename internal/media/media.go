// Package media tracks files selected for a draft alongside remote images
// already persisted for an existing listing.
package media

import (
	"path"
	"path/filepath"
)

// Field names for the draft's media collections.
const (
	FieldDisplayImage  = "displayImage"
	FieldDisplayImages = "displayImages"
	FieldFloorPlans    = "floorPlans"
	FieldSitePlans     = "sitePlans"
	FieldDocumentation = "documentation"
)

// Item is one entry in a media collection: either a newly selected local
// file or a remote reference already persisted server-side. The submission
// pipeline uploads only local files; remote references are never re-sent.
type Item struct {
	Name   string // filename, the de-duplication key
	Path   string // local file path; empty for remote items
	Remote string // remote reference; empty for local items
}

// IsRemote reports whether the item is a pre-existing remote reference.
func (i Item) IsRemote() bool { return i.Remote != "" }

// Registry holds the ordered media collections for one wizard session.
// Local files and remote references coexist in the same collection.
type Registry struct {
	fields map[string][]Item

	previewer   Previewer
	coverHandle string
}

// NewRegistry creates an empty registry using the given previewer.
func NewRegistry(p Previewer) *Registry {
	return &Registry{
		fields:    make(map[string][]Item),
		previewer: p,
	}
}

// SeedRemote appends pre-existing remote references, used when hydrating an
// edit-mode draft.
func (r *Registry) SeedRemote(field string, refs []string) {
	for _, ref := range refs {
		if ref == "" || r.has(field, remoteName(ref)) {
			continue
		}
		r.fields[field] = append(r.fields[field], Item{Name: remoteName(ref), Remote: ref})
	}
}

// AddFiles appends local files to a collection in selection order, dropping
// any whose filename already exists there. The skipped names are returned so
// the caller can show an "already uploaded" notice; a duplicate-only
// selection is not an error.
func (r *Registry) AddFiles(field string, paths ...string) (added int, skipped []string) {
	for _, p := range paths {
		name := filepath.Base(p)
		if r.has(field, name) {
			skipped = append(skipped, name)
			continue
		}
		r.fields[field] = append(r.fields[field], Item{Name: name, Path: p})
		added++
	}
	return added, skipped
}

// Remove deletes the entry matching identifier: the filename for local
// files, or the remote reference string for pre-existing ones.
func (r *Registry) Remove(field, identifier string) {
	items := r.fields[field]
	out := items[:0]
	for _, it := range items {
		if it.Name == identifier || (it.IsRemote() && it.Remote == identifier) {
			continue
		}
		out = append(out, it)
	}
	r.fields[field] = out
}

// Items returns a collection in order.
func (r *Registry) Items(field string) []Item {
	return r.fields[field]
}

// LocalFiles returns only the newly selected local files in a collection.
func (r *Registry) LocalFiles(field string) []Item {
	var out []Item
	for _, it := range r.fields[field] {
		if !it.IsRemote() {
			out = append(out, it)
		}
	}
	return out
}

// has reports whether a filename already exists in the collection.
func (r *Registry) has(field, name string) bool {
	for _, it := range r.fields[field] {
		if it.Name == name {
			return true
		}
	}
	return false
}

// remoteName derives the de-duplication filename from a remote reference.
func remoteName(ref string) string {
	return path.Base(ref)
}
