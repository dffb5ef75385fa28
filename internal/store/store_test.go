package store

import (
	"bytes"
	"testing"
)

func TestWriteAndReadUserSource(t *testing.T) {
	root := NewRoot(t.TempDir())
	code := []byte("int main() {\n  return 0;\n}\n")
	if _, err := root.WriteSource("blink", 3, 1, code); err != nil {
		t.Fatalf("WriteSource: %v", err)
	}
	got, err := root.ReadUserSource("blink", 3)
	if err != nil {
		t.Fatalf("ReadUserSource: %v", err)
	}
	if !bytes.Equal(got, code) {
		t.Fatalf("ReadUserSource = %q, want %q", got, code)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	root := NewRoot(t.TempDir())
	root.EnsureDir("blink")
	m := Manifest{Name: "blink", Version: 1, Succeeded: true}
	if err := root.WriteManifest(m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := root.ReadManifest("blink", 1)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if got.Name != m.Name || got.Version != m.Version || got.Succeeded != m.Succeeded {
		t.Fatalf("ReadManifest = %+v, want %+v", got, m)
	}
}

func TestList(t *testing.T) {
	root := NewRoot(t.TempDir())
	root.WriteSource("blink", 1, 1, []byte("code\n"))
	root.WriteSource("blink", 2, 1, []byte("code\n"))
	root.WriteSource("drive", 1, 1, []byte("code\n"))

	got, err := root.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List() = %v, want 3 entries", got)
	}
}

func TestListOnMissingRoot(t *testing.T) {
	root := NewRoot("/nonexistent/does/not/exist")
	got, err := root.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got != nil {
		t.Fatalf("List() = %v, want nil", got)
	}
}
