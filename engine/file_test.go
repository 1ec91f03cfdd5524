package engine_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"

	"github.com/pqrand/pqrand.go/engine"
	"github.com/pqrand/pqrand.go/entropy"
)

func memEngine(t *testing.T, fs afero.Fs, seed uint64) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.WithEntropy(entropy.NewSplitMix64(seed)), engine.WithFs(fs))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestFileRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	e := memEngine(t, fs, 40)
	e.Bool()
	e.U01()

	const path = "/audit/state.txt"
	if err := fs.MkdirAll("/audit", 0755); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteState(path); err != nil {
		t.Fatal(err)
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	if want := e.State() + "\n"; string(content) != want {
		t.Errorf("state file content = %q, want %q", content, want)
	}
	info, err := fs.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0644 {
		t.Errorf("state file mode = %v, want 0644", mode)
	}

	before := testutil.ToFloat64(engine.SeedsCounterForTest("file"))
	c := engine.NewUnseeded(engine.WithFs(fs))
	if err := c.SeedFromFile(path); err != nil {
		t.Fatal(err)
	}
	if c.State() != e.State() {
		t.Errorf("SeedFromFile(WriteState()) = %q, want %q", c.State(), e.State())
	}
	if got := testutil.ToFloat64(engine.SeedsCounterForTest("file")) - before; got != 1 {
		t.Errorf("seeds_total{source=file} increased by %v, want 1", got)
	}

	t.Run("overwrite", func(t *testing.T) {
		e.Jump()
		if err := e.WriteState(path); err != nil {
			t.Fatal(err)
		}
		if err := c.SeedFromFile(path); err != nil {
			t.Fatal(err)
		}
		if c.State() != e.State() {
			t.Errorf("state after overwrite = %q, want %q", c.State(), e.State())
		}
	})
}

func TestSeedFromFileFirstLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "seed.txt", []byte(countingState+" 4\nnot a state\n"), 0644); err != nil {
		t.Fatal(err)
	}
	e := engine.NewUnseeded(engine.WithFs(fs))
	if err := e.SeedFromFile("seed.txt"); err != nil {
		t.Fatal(err)
	}
	if want := countingState + " 4 0 2"; e.State() != want {
		t.Errorf("State() = %q, want %q", e.State(), want)
	}

	t.Run("no-newline", func(t *testing.T) {
		if err := afero.WriteFile(fs, "bare.txt", []byte(countingState), 0644); err != nil {
			t.Fatal(err)
		}
		if err := e.SeedFromFile("bare.txt"); err != nil {
			t.Fatal(err)
		}
	})
}

func TestSeedFromFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "bad.txt", []byte("1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "huge.txt", []byte(strings.Repeat("1 ", 64<<10)), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("missing", func(t *testing.T) {
		e := memEngine(t, fs, 41)
		before := e.State()
		err := e.SeedFromFile("missing.txt")
		var ioErr *engine.IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("SeedFromFile(missing) error = %v, want *IOError", err)
		}
		if ioErr.Path != "missing.txt" || ioErr.Op != "read" {
			t.Errorf("IOError = %+v", ioErr)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("SeedFromFile(missing) error = %v, want os.ErrNotExist", err)
		}
		if e.State() != before {
			t.Error("engine changed on a failed SeedFromFile")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		e := memEngine(t, fs, 42)
		err := e.SeedFromFile("bad.txt")
		var pe *engine.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("SeedFromFile(bad) error = %v, want *ParseError", err)
		}
	})

	t.Run("hard-limit", func(t *testing.T) {
		e := memEngine(t, fs, 43)
		err := e.SeedFromFile("huge.txt")
		var ioErr *engine.IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("SeedFromFile(huge) error = %v, want *IOError", err)
		}
	})
}

func TestWriteStateErrors(t *testing.T) {
	t.Run("unseeded", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		e := engine.NewUnseeded(engine.WithFs(fs))
		err := e.WriteState("state.txt")
		if !errors.Is(err, engine.ErrUnseeded) {
			t.Errorf("WriteState on an unseeded engine error = %v, want ErrUnseeded", err)
		}
		if _, err := fs.Stat("state.txt"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("WriteState on an unseeded engine created the file, Stat error = %v", err)
		}
	})

	t.Run("read-only", func(t *testing.T) {
		e := memEngine(t, afero.NewReadOnlyFs(afero.NewMemMapFs()), 44)
		err := e.WriteState("state.txt")
		var ioErr *engine.IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("WriteState on a read-only fs error = %v, want *IOError", err)
		}
		if ioErr.Op != "write" {
			t.Errorf("IOError.Op = %q, want write", ioErr.Op)
		}
	})
}
