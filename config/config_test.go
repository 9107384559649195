package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	f := cfg.Field
	if f.Count != 80 {
		t.Errorf("expected count 80, got %d", f.Count)
	}
	if f.AttractionRadius != 150 || f.ConnectionRadius != 120 || f.PullDivisor != 50 {
		t.Errorf("unexpected radii: attraction=%g connection=%g divisor=%g",
			f.AttractionRadius, f.ConnectionRadius, f.PullDivisor)
	}
	if f.MinRadius != 1 || f.MaxRadius != 3 || f.MaxDrift != 0.25 {
		t.Errorf("unexpected particle ranges: radius [%g, %g) drift %g", f.MinRadius, f.MaxRadius, f.MaxDrift)
	}

	want := color.RGBA{R: 0x64, G: 0xff, B: 0xda, A: 255}
	if cfg.Derived.ParticleColor != want {
		t.Errorf("expected particle color %v, got %v", want, cfg.Derived.ParticleColor)
	}
	wantLink := color.RGBA{R: 100, G: 255, B: 218, A: 51}
	if cfg.Derived.LinkColor != wantLink {
		t.Errorf("expected link color %v, got %v", wantLink, cfg.Derived.LinkColor)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: 12\n  link_mode: pairwise\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Field.Count != 12 {
		t.Errorf("expected count 12, got %d", cfg.Field.Count)
	}
	if cfg.Field.LinkMode != LinkModePairwise {
		t.Errorf("expected link mode pairwise, got %q", cfg.Field.LinkMode)
	}
	// Untouched fields keep their defaults
	if cfg.Field.AttractionRadius != 150 {
		t.Errorf("expected default attraction radius 150, got %g", cfg.Field.AttractionRadius)
	}
	if cfg.Screen.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Screen.Width)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative count", "field:\n  count: -1\n", "field.count"},
		{"zero divisor", "field:\n  pull_divisor: 0\n", "pull_divisor"},
		{"bad mode", "field:\n  link_mode: quadtree\n", "link_mode"},
		{"bad color", "field:\n  particle_color: teal\n", "particle_color"},
		{"inverted radius", "field:\n  min_radius: 4\n", "radius range"},
		{"bad alpha", "field:\n  link_alpha: 1.5\n", "link_alpha"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Field.Count = 33

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if loaded.Field.Count != 33 {
		t.Errorf("expected count 33 after roundtrip, got %d", loaded.Field.Count)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg before Init")
		}
	}()
	Cfg()
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("field:\n  count: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates():
		if cfg.Field.Count != 9 {
			t.Errorf("expected reloaded count 9, got %d", cfg.Field.Count)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("creating watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("field:\n  count: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates():
		t.Errorf("expected no update for invalid config, got count %d", cfg.Field.Count)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNilWatcher(t *testing.T) {
	var w *Watcher
	if w.Updates() != nil {
		t.Error("expected nil channel from nil watcher")
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected nil error closing nil watcher, got %v", err)
	}
}
