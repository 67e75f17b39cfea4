package spectra

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTabDelimFile(t *testing.T) {
	path := writeManifest(t, "/a/x.root\t100.0\n/b/y.root\t200.0\n")

	filePaths, halfLives, err := ReadTabDelimFile(path)
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{"/a/x.root", "/b/y.root"}
	wantHalfLives := []string{"100.0", "200.0"}
	if len(filePaths) != len(wantPaths) {
		t.Fatalf("got %d paths, want %d", len(filePaths), len(wantPaths))
	}
	for i := range wantPaths {
		if filePaths[i] != wantPaths[i] {
			t.Errorf("path %d = %q, want %q", i, filePaths[i], wantPaths[i])
		}
		if halfLives[i] != wantHalfLives[i] {
			t.Errorf("half-life %d = %q, want %q", i, halfLives[i], wantHalfLives[i])
		}
	}
}

func TestReadTabDelimFileMalformed(t *testing.T) {
	path := writeManifest(t, "/a/x.root\t100.0\textra\n")

	_, _, err := ReadTabDelimFile(path)
	var badManifest *ErrBadManifest
	if !errors.As(err, &badManifest) {
		t.Fatalf("got %v, want ErrBadManifest", err)
	}
}

func TestReadTabDelimFileMissing(t *testing.T) {
	_, _, err := ReadTabDelimFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	var openErr *ErrOpenFile
	if !errors.As(err, &openErr) {
		t.Fatalf("got %v, want ErrOpenFile", err)
	}
}

func TestSpectrumNameFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/data/run1/file.root", "file.root"},
		{"/data/run1/", "run1/"},
		{"file.root", "file.root"},
		{"run1/file.root", "file.root"},
		{"/", "/"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SpectrumNameFromPath(c.path); got != c.want {
			t.Errorf("SpectrumNameFromPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}
