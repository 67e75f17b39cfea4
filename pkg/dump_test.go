package spectra

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestProcessManifestEntriesOrder(t *testing.T) {
	filePaths := []string{"/a/x.root", "/b/y.root", "/c/z.root"}
	halfLives := []string{"100.0", "200.0", "300.0"}

	var processed []string
	var names []string
	resolve := func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	}
	process := func(fname string, halfLife float64, name string) error {
		processed = append(processed, fmt.Sprintf("%s:%g", fname, halfLife))
		names = append(names, name)
		return nil
	}

	if err := ProcessManifestEntries(filePaths, halfLives, resolve, process); err != nil {
		t.Fatal(err)
	}

	want := []string{"/a/x.root:100", "/b/y.root:200", "/c/z.root:300"}
	if len(processed) != len(want) {
		t.Fatalf("processed %d entries, want %d", len(processed), len(want))
	}
	for i := range want {
		if processed[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, processed[i], want[i])
		}
	}
	if names[0] != "x.root" || names[1] != "y.root" || names[2] != "z.root" {
		t.Errorf("derived names = %v", names)
	}
}

func TestProcessManifestEntriesAbortsOnError(t *testing.T) {
	filePaths := []string{"/a/x.root", "/b/y.root", "/c/z.root"}
	halfLives := []string{"100.0", "200.0", "300.0"}

	boom := errors.New("boom")
	var processed []string
	resolve := func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	}
	process := func(fname string, halfLife float64, name string) error {
		processed = append(processed, fname)
		if len(processed) == 2 {
			return boom
		}
		return nil
	}

	err := ProcessManifestEntries(filePaths, halfLives, resolve, process)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if len(processed) != 2 {
		t.Errorf("processed %d entries after failure, want 2", len(processed))
	}
}

func TestProcessManifestEntriesBadHalfLife(t *testing.T) {
	config := DefaultConfiguration()
	config.NoDB = true
	SetConfiguration(config)

	called := false
	resolve := func(value string) (float64, error) {
		return ResolveHalfLife(nil, value)
	}
	process := func(fname string, halfLife float64, name string) error {
		called = true
		return nil
	}

	err := ProcessManifestEntries([]string{"/a/x.root"}, []string{"not-a-number"}, resolve, process)
	if err == nil {
		t.Fatal("unresolvable half-life did not fail")
	}
	if called {
		t.Error("entry processed despite unresolvable half-life")
	}
}
