package sand

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseParamsOverlaysDefaults(t *testing.T) {
	doc := []byte(`
sand:
  resistance: 0.5
water:
  density: 9
  viscosity: 0.25
`)
	table, err := ParseParams(doc)
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	defaults := DefaultParams()

	if table[Sand].Resistance != 0.5 {
		t.Fatalf("sand resistance = %f, want 0.5", table[Sand].Resistance)
	}
	if table[Sand].TerminalVelocity != defaults[Sand].TerminalVelocity {
		t.Fatal("fields absent from the file should keep their defaults")
	}
	if table[Water].Density != 9 || table[Water].Viscosity != 0.25 {
		t.Fatalf("water overrides not applied: %+v", table[Water])
	}
	if table[Water].SpreadVelocity != defaults[Water].SpreadVelocity {
		t.Fatal("water spread should keep its default")
	}
	if table[Oil] != defaults[Oil] {
		t.Fatal("species absent from the file should keep their defaults")
	}
}

func TestParseParamsRejectsUnknownSpecies(t *testing.T) {
	if _, err := ParseParams([]byte("lava:\n  density: 3\n")); err == nil {
		t.Fatal("expected error for unknown species")
	}
	if _, err := ParseParams([]byte("out_of_bounds:\n  density: 3\n")); err == nil {
		t.Fatal("expected error for the sentinel species")
	}
	if _, err := ParseParams([]byte("sand: [1, 2")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadParamsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	if err := os.WriteFile(path, []byte("smoke:\n  volatility: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if table[Smoke].Volatility != 1 {
		t.Fatalf("volatility = %f, want 1", table[Smoke].Volatility)
	}

	_, err = LoadParams(filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("granite: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(bad); err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("error should name the file, got %v", err)
	}
}

func TestParamTableMarshalsBySpeciesName(t *testing.T) {
	out, err := yaml.Marshal(DefaultParams())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	text := string(out)
	for _, name := range []string{"sand:", "water:", "smoke:", "gravel:", "oil:"} {
		if !strings.Contains(text, name) {
			t.Fatalf("marshalled table missing %q:\n%s", name, text)
		}
	}
	if strings.Contains(text, "stone:") || strings.Contains(text, "empty:") {
		t.Fatalf("species without parameters should be omitted:\n%s", text)
	}
}

func TestParseSpecies(t *testing.T) {
	for i := 0; i < NumSpecies; i++ {
		s := Species(i)
		got, err := ParseSpecies(strings.ToUpper(s.String()))
		if err != nil || got != s {
			t.Fatalf("ParseSpecies(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSpecies("plasma"); err == nil {
		t.Fatal("expected error for unknown species")
	}
}

func TestBaseBehavior(t *testing.T) {
	cases := map[Species]Behavior{
		Empty:       BehaviorNone,
		Sand:        BehaviorSolid,
		Gravel:      BehaviorSolid,
		Water:       BehaviorLiquid,
		Oil:         BehaviorLiquid,
		Smoke:       BehaviorGas,
		Stone:       BehaviorNone,
		Wood:        BehaviorNone,
		OutOfBounds: BehaviorSolid,
	}
	for sp, want := range cases {
		if got := BaseBehavior(sp); got != want {
			t.Fatalf("BaseBehavior(%v) = %v, want %v", sp, got, want)
		}
	}
}
