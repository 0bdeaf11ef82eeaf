package media

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Previewer creates and releases preview handles for local files. Handles
// are an externally owned resource: every handle created must be released
// when superseded or when the session closes.
type Previewer interface {
	Open(path string) (handle string, err error)
	Release(handle string) error
}

// SetCover replaces the single cover image. Any preview handle created for
// the previous cover is released first, so repeated replacements within one
// session never leak handles.
func (r *Registry) SetCover(path string) {
	r.releaseCover()
	name := filepath.Base(path)
	r.fields[FieldDisplayImage] = []Item{{Name: name, Path: path}}
}

// SetCoverRemote records a pre-existing remote cover (edit mode).
func (r *Registry) SetCoverRemote(ref string) {
	r.releaseCover()
	if ref == "" {
		delete(r.fields, FieldDisplayImage)
		return
	}
	r.fields[FieldDisplayImage] = []Item{{Name: remoteName(ref), Remote: ref}}
}

// ClearCover removes the cover image, releasing its preview handle.
func (r *Registry) ClearCover() {
	r.releaseCover()
	delete(r.fields, FieldDisplayImage)
}

// Cover returns the current cover item, or nil if none is set.
func (r *Registry) Cover() *Item {
	items := r.fields[FieldDisplayImage]
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// CoverPreview lazily creates a preview handle for the cover and returns it.
// Remote covers and an unset cover yield an empty handle.
func (r *Registry) CoverPreview() string {
	if r.coverHandle != "" {
		return r.coverHandle
	}
	cover := r.Cover()
	if cover == nil || cover.IsRemote() {
		return ""
	}
	handle, err := r.previewer.Open(cover.Path)
	if err != nil {
		slog.Debug("opening preview failed", "path", cover.Path, "error", err)
		return ""
	}
	r.coverHandle = handle
	return handle
}

// Close releases every live preview handle. Call it when the wizard closes,
// whatever the reason.
func (r *Registry) Close() {
	r.releaseCover()
}

func (r *Registry) releaseCover() {
	if r.coverHandle == "" {
		return
	}
	if err := r.previewer.Release(r.coverHandle); err != nil {
		slog.Debug("releasing preview failed", "handle", r.coverHandle, "error", err)
	}
	r.coverHandle = ""
}

// TempPreviewer implements Previewer by copying files into a temp directory.
// Handles are uuid strings mapped to the copies, which are deleted on
// release.
type TempPreviewer struct {
	dir   string
	files map[string]string
}

// NewTempPreviewer creates a previewer rooted in a fresh temp directory.
func NewTempPreviewer() (*TempPreviewer, error) {
	dir, err := os.MkdirTemp("", "flc-preview-")
	if err != nil {
		return nil, fmt.Errorf("creating preview directory: %w", err)
	}
	return &TempPreviewer{dir: dir, files: make(map[string]string)}, nil
}

// Open copies the file into the preview directory and returns a handle.
func (p *TempPreviewer) Open(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	handle := uuid.NewString()
	dst := filepath.Join(p.dir, handle+filepath.Ext(path))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating preview copy: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("copying preview: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing preview copy: %w", err)
	}

	p.files[handle] = dst
	return handle, nil
}

// Release deletes the preview copy behind a handle. Unknown handles are a
// no-op.
func (p *TempPreviewer) Release(handle string) error {
	path, ok := p.files[handle]
	if !ok {
		return nil
	}
	delete(p.files, handle)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing preview copy: %w", err)
	}
	return nil
}

// PreviewPath returns the on-disk path behind a handle, for display.
func (p *TempPreviewer) PreviewPath(handle string) (string, bool) {
	path, ok := p.files[handle]
	return path, ok
}

// Close removes the preview directory and everything in it.
func (p *TempPreviewer) Close() error {
	p.files = make(map[string]string)
	return os.RemoveAll(p.dir)
}
