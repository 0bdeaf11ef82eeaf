package media

import (
	"os"
	"path/filepath"
	"testing"
)

// countingPreviewer tracks live handles for leak assertions.
type countingPreviewer struct {
	next     int
	live     map[string]bool
	released int
}

func newCountingPreviewer() *countingPreviewer {
	return &countingPreviewer{live: make(map[string]bool)}
}

func (p *countingPreviewer) Open(path string) (string, error) {
	p.next++
	handle := filepath.Base(path)
	p.live[handle] = true
	return handle, nil
}

func (p *countingPreviewer) Release(handle string) error {
	delete(p.live, handle)
	p.released++
	return nil
}

func TestAddFilesDeduplicates(t *testing.T) {
	r := NewRegistry(newCountingPreviewer())

	added, skipped := r.AddFiles(FieldDisplayImages, "/tmp/a.jpg", "/tmp/b.jpg")
	if added != 2 || len(skipped) != 0 {
		t.Fatalf("added=%d skipped=%v", added, skipped)
	}

	// Same filename from a different directory is still a duplicate
	added, skipped = r.AddFiles(FieldDisplayImages, "/other/a.jpg")
	if added != 0 {
		t.Errorf("duplicate filename was added")
	}
	if len(skipped) != 1 || skipped[0] != "a.jpg" {
		t.Errorf("skipped = %v, want [a.jpg]", skipped)
	}
	if len(r.Items(FieldDisplayImages)) != 2 {
		t.Errorf("items = %d, want 2", len(r.Items(FieldDisplayImages)))
	}
}

func TestRemove(t *testing.T) {
	r := NewRegistry(newCountingPreviewer())
	r.AddFiles(FieldFloorPlans, "/tmp/plan.pdf")
	r.SeedRemote(FieldFloorPlans, []string{"https://cdn.example.com/old-plan.pdf"})

	r.Remove(FieldFloorPlans, "plan.pdf")
	r.Remove(FieldFloorPlans, "https://cdn.example.com/old-plan.pdf")

	if got := r.Items(FieldFloorPlans); len(got) != 0 {
		t.Errorf("items = %v, want empty", got)
	}
}

func TestSeedRemoteDeduplicates(t *testing.T) {
	r := NewRegistry(newCountingPreviewer())
	r.SeedRemote(FieldDisplayImages, []string{
		"https://cdn.example.com/photo.jpg",
		"https://cdn.example.com/photo.jpg",
		"",
	})
	if got := r.Items(FieldDisplayImages); len(got) != 1 {
		t.Errorf("items = %v, want one entry", got)
	}
}

func TestLocalFilesExcludesRemote(t *testing.T) {
	r := NewRegistry(newCountingPreviewer())
	r.AddFiles(FieldDisplayImages, "/tmp/new.jpg")
	r.SeedRemote(FieldDisplayImages, []string{"https://cdn.example.com/old.jpg"})

	local := r.LocalFiles(FieldDisplayImages)
	if len(local) != 1 || local[0].Name != "new.jpg" {
		t.Errorf("local = %v", local)
	}
}

func TestCoverReplacementReleasesHandles(t *testing.T) {
	p := newCountingPreviewer()
	r := NewRegistry(p)

	covers := []string{"/tmp/a.jpg", "/tmp/b.jpg", "/tmp/c.jpg", "/tmp/d.jpg", "/tmp/e.jpg"}
	for _, path := range covers {
		r.SetCover(path)
		if handle := r.CoverPreview(); handle == "" {
			t.Fatalf("no preview handle for %s", path)
		}
	}

	if len(p.live) != 1 {
		t.Errorf("live handles = %d after 5 replacements, want 1", len(p.live))
	}
	if p.released != len(covers)-1 {
		t.Errorf("released = %d, want %d", p.released, len(covers)-1)
	}

	r.Close()
	if len(p.live) != 0 {
		t.Errorf("live handles = %d after close, want 0", len(p.live))
	}
}

func TestCoverPreviewIsLazyAndCached(t *testing.T) {
	p := newCountingPreviewer()
	r := NewRegistry(p)

	if handle := r.CoverPreview(); handle != "" {
		t.Errorf("unset cover yielded handle %q", handle)
	}

	r.SetCover("/tmp/a.jpg")
	if p.next != 0 {
		t.Error("handle created before preview was requested")
	}

	first := r.CoverPreview()
	second := r.CoverPreview()
	if first == "" || first != second {
		t.Errorf("preview not cached: %q vs %q", first, second)
	}
	if p.next != 1 {
		t.Errorf("opens = %d, want 1", p.next)
	}
}

func TestRemoteCoverHasNoPreview(t *testing.T) {
	r := NewRegistry(newCountingPreviewer())
	r.SetCoverRemote("https://cdn.example.com/cover.jpg")

	if handle := r.CoverPreview(); handle != "" {
		t.Errorf("remote cover yielded handle %q", handle)
	}
	cover := r.Cover()
	if cover == nil || !cover.IsRemote() {
		t.Fatalf("cover = %+v", cover)
	}
}

func TestTempPreviewer(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(src, []byte("image-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewTempPreviewer()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { p.Close() })

	handle, err := p.Open(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, ok := p.PreviewPath(handle)
	if !ok {
		t.Fatal("handle has no path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("copy content = %q", data)
	}

	if err := p.Release(handle); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("copy still exists after release")
	}
	if _, ok := p.PreviewPath(handle); ok {
		t.Error("released handle still resolves")
	}
}
