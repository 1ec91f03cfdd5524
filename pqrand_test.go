package pqrand_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pqrand/pqrand.go"
	"github.com/pqrand/pqrand.go/dist"
	"github.com/pqrand/pqrand.go/engine"
	"github.com/pqrand/pqrand.go/errorsbp"
	"github.com/pqrand/pqrand.go/validate"
)

const (
	countingState = "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 16"

	// countingState as written back, with p, bit cache and mask.
	fullCountingState = countingState + " 0 0 2"
)

func writeConfig(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("SETUP: failed to write file: %s", err)
	}
	return path
}

func testConfig() pqrand.Config {
	return pqrand.Config{
		Engine: engine.Config{
			State:    countingState,
			Parallel: 2,
		},
		Distributions: map[string]dist.Config{
			"latency": {Kind: dist.KindLogNormal, Mu: 1, Sigma: 0.5},
			"arrival": {Kind: dist.KindExponential, Mu: 3},
			"dice":    {Kind: dist.KindUniformInt, Min: 1, Max: 7},
		},
		Validate: pqrand.ValidateConfig{
			Options: validate.Options{SampleSize: 20000, Bins: 8},
		},
	}
}

func TestNew(t *testing.T) {
	t.Setenv("PQRAND_TEST_STATE", countingState)
	dir := t.TempDir()
	audit := filepath.Join(dir, "audit.txt")
	path := writeConfig(t, "pqrand.yaml", `
log:
  level: nop
engine:
  state: $PQRAND_TEST_STATE
  auditFile: `+audit+`
  parallel: 3
distributions:
  latency:
    kind: log_normal
    mu: 1
    sigma: 0.5
validate:
  options:
    sampleSize: 5000
  thresholds:
    maxMeanDeviation: 8
`)

	setup, err := pqrand.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(setup.Engines()); got != 3 {
		t.Errorf("%d engines, want 3", got)
	}
	if diff := cmp.Diff([]string{"latency"}, setup.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	d, ok := setup.Distribution("latency")
	if !ok {
		t.Fatal("latency not found")
	}
	want, err := dist.NewLogNormal(1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if d != dist.Distribution(want) {
		t.Errorf("latency = %v, want %v", d, want)
	}
	if _, ok := setup.Distribution("missing"); ok {
		t.Error("found a distribution that isn't configured")
	}

	if got := setup.Engine(0).State(); got != fullCountingState {
		t.Errorf("first engine state = %q, want %q", got, fullCountingState)
	}
	content, err := os.ReadFile(audit)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(content)); got != fullCountingState {
		t.Errorf("audit file = %q, want %q", got, fullCountingState)
	}

	if got := setup.Config().Validate.Options.SampleSize; got != 5000 {
		t.Errorf("validate sample size = %d, want 5000", got)
	}
}

func TestNewTOML(t *testing.T) {
	path := writeConfig(t, "pqrand.toml", `
[log]
level = "nop"

[engine]
state = "`+countingState+`"

[distributions.arrival]
kind = "exponential"
mu = 3.0
`)
	setup, err := pqrand.New(path)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := setup.Distribution("arrival")
	if !ok {
		t.Fatal("arrival not found")
	}
	if d.Mean() != 3 {
		t.Errorf("arrival mean = %g, want 3", d.Mean())
	}
	if got := len(setup.Engines()); got != 1 {
		t.Errorf("%d engines, want the default of 1", got)
	}

	t.Setenv("PQRAND_PARALLEL", "5")
	setup, err = pqrand.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(setup.Engines()); got != 5 {
		t.Errorf("%d engines, want 5 from PQRAND_PARALLEL", got)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := pqrand.ParseConfig(""); err == nil {
		t.Error("ParseConfig with an empty path should fail")
	}
	if _, err := pqrand.New(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("New with a missing file should fail")
	}
	unknown := writeConfig(t, "unknown.yaml", "engine:\n  seed: 42\n")
	if _, err := pqrand.New(unknown); err == nil {
		t.Error("New with an unknown field should fail")
	}

	cfg := testConfig()
	cfg.Distributions["bad-normal"] = dist.Config{Kind: dist.KindNormal, Sigma: -1}
	cfg.Distributions["bad-kind"] = dist.Config{Kind: "cauchy"}
	_, err := pqrand.NewFromConfig(cfg)
	if n := errorsbp.BatchSize(err); n != 2 {
		t.Fatalf("NewFromConfig error = %v, want 2 errors", err)
	}
	for _, name := range []string{"bad-normal: ", "bad-kind: "} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q is not prefixed with %q", err, name)
		}
	}

	cfg = testConfig()
	cfg.Engine.SeedFile = "/seed.txt"
	if _, err := pqrand.NewFromConfig(cfg); err == nil {
		t.Error("NewFromConfig with both a seed file and a state should fail")
	}
}

func TestEnginesAreJumped(t *testing.T) {
	setup, err := pqrand.NewFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := engine.NewUnseeded()
	if err := want.SeedFromString(countingState); err != nil {
		t.Fatal(err)
	}
	want.Jump()
	if got := setup.Engine(1).State(); got != want.State() {
		t.Errorf("second engine state = %q, want the seed jumped once %q", got, want.State())
	}
}

func TestValidateAll(t *testing.T) {
	run := func() map[string]validate.Report {
		t.Helper()
		setup, err := pqrand.NewFromConfig(testConfig())
		if err != nil {
			t.Fatal(err)
		}
		reports, err := setup.ValidateAll()
		if err != nil {
			t.Errorf("ValidateAll: %v", err)
		}
		return reports
	}

	first := run()
	if len(first) != 3 {
		t.Fatalf("%d reports, want 3", len(first))
	}
	for name, r := range first {
		if r.SampleSize != 20000 {
			t.Errorf("%s: sample size %d, want 20000", name, r.SampleSize)
		}
	}
	if diff := cmp.Diff(first, run()); diff != "" {
		t.Errorf("reports differ between runs from the same seed (-first +second):\n%s", diff)
	}
}

func TestValidateAllFailures(t *testing.T) {
	cfg := testConfig()
	cfg.Validate.Thresholds = validate.Thresholds{MaxMeanDeviation: 1e-12}
	setup, err := pqrand.NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	reports, err := setup.ValidateAll()
	if len(reports) != 3 {
		t.Errorf("%d reports, want 3 even when checks fail", len(reports))
	}
	if n := errorsbp.BatchSize(err); n != 3 {
		t.Fatalf("ValidateAll error = %v, want 3 errors", err)
	}
	if !strings.Contains(err.Error(), "latency: ") {
		t.Errorf("error %q is not prefixed with the distribution name", err)
	}
}
