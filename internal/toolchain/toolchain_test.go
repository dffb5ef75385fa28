package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PRIArobotics/HedgehogLightPi/internal/store"
)

// fakeCompiler writes a shell script standing in for gcc: any invocation
// containing "-c" (e.g. "gcc -Wall ... -c -o obj.o src.c") touches the
// file after "-o" and succeeds, "gcc -o bin obj.o ..." succeeds only if
// every extra argument names a file that exists, mimicking a linker that
// fails on missing objects.
func fakeCompiler(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fakecc")
	script := `#!/bin/sh
set -e
for a in "$@"; do
  if [ "$a" = "-c" ]; then
    while [ "$1" != "-o" ]; do shift; done
    touch "$2"
    exit 0
  fi
done
shift
out="$1"
shift
for f in "$@"; do
  [ -e "$f" ] || exit 1
done
touch "$out"
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake compiler: %v", err)
	}
	return path
}

func TestCompileSucceedsWhenLinkObjectsExist(t *testing.T) {
	root := store.NewRoot(t.TempDir())
	paths, err := root.WriteSource("blink", 1, 1, []byte("int main(){return 0;}\n"))
	if err != nil {
		t.Fatalf("WriteSource: %v", err)
	}

	// The fake linker only checks argument paths exist, so touch the
	// support objects it will look for relative to the current directory.
	for _, name := range supportObjects(1) {
		f, err := os.Create(name)
		if err != nil {
			t.Skipf("cannot create %s in working directory: %v", name, err)
		}
		f.Close()
		defer os.Remove(name)
	}

	tc := New(fakeCompiler(t))
	result, err := tc.Compile(paths, 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !result.Succeeded {
		t.Fatalf("Succeeded = false, diagnostics: %s", result.Diagnostics)
	}
}

func TestCompileFailsWhenSupportObjectsMissing(t *testing.T) {
	root := store.NewRoot(t.TempDir())
	paths, err := root.WriteSource("blink", 1, 9, []byte("int main(){return 0;}\n"))
	if err != nil {
		t.Fatalf("WriteSource: %v", err)
	}

	tc := New(fakeCompiler(t))
	result, err := tc.Compile(paths, 9)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if result.Succeeded {
		t.Fatal("Succeeded = true, want false when link objects are missing")
	}
}
