package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeDash(defaultDashYAML)
	if err != nil {
		t.Fatalf("decode embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Errorf("embedded dash.yaml drifted from DefaultDashConfig():\n got %+v\nwant %+v", cfg, DefaultDashConfig())
	}
}

func TestLoadDashCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	data := []byte("boost:\n  cost: 3\ncontrols:\n  p1_flip: [w]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDash(path)
	if err != nil {
		t.Fatalf("LoadDash() failed: %v", err)
	}
	if cfg.Boost.Cost != 3 {
		t.Errorf("Boost.Cost = %d, expected 3", cfg.Boost.Cost)
	}
	if cfg.Boost.Multiplier != 2.5 {
		t.Errorf("unspecified keys should keep defaults, Multiplier = %v", cfg.Boost.Multiplier)
	}
	if !reflect.DeepEqual(cfg.Controls.P1Flip, []string{"w"}) {
		t.Errorf("P1Flip = %v, expected [w]", cfg.Controls.P1Flip)
	}
}

func TestLoadDashMissingCustomPath(t *testing.T) {
	_, err := LoadDash(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadDashBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	if err := os.WriteFile(path, []byte("lane: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDash(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadDashRejectsDuplicateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	body := "controls:\n  p1_flip: [\"up\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDash(path); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("LoadDash() = %v, expected ErrDuplicateBinding", err)
	}
}

func TestSpawnInterval(t *testing.T) {
	d := DefaultDashConfig().Difficulty
	tests := []struct {
		speed float64
		want  time.Duration
	}{
		{1, 1850 * time.Millisecond},
		{5, 1250 * time.Millisecond},
		{8, 800 * time.Millisecond},
		{10, 800 * time.Millisecond}, // floored
	}
	for _, tc := range tests {
		if got := d.SpawnInterval(tc.speed); got != tc.want {
			t.Errorf("SpawnInterval(%v) = %v, expected %v", tc.speed, got, tc.want)
		}
	}
}

func TestApplyDashPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		speed   float64
		enabled bool
	}{
		{DifficultyEasy, 3, true},
		{DifficultyNormal, 5, true},
		{DifficultyHard, 7, true},
		{DifficultyFixed, 6, false},
	}
	for _, tc := range tests {
		cfg := DefaultDashConfig()
		cfg.Difficulty.BaseSpeed = 6
		ApplyDashPreset(&cfg, tc.preset)
		if cfg.Difficulty.BaseSpeed != tc.speed || cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%s: speed=%v enabled=%v, expected %v %v",
				tc.preset, cfg.Difficulty.BaseSpeed, cfg.Difficulty.Enabled, tc.speed, tc.enabled)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestControlsValidate(t *testing.T) {
	if err := DefaultControls().Validate(); err != nil {
		t.Fatalf("default controls invalid: %v", err)
	}

	dup := DefaultControls()
	dup.P2Boost = []string{"e"}
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("duplicate binding: err = %v, expected ErrDuplicateBinding", err)
	}

	reserved := DefaultControls()
	reserved.P1Flip = []string{"q"}
	if err := reserved.Validate(); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("reserved key: err = %v, expected ErrDuplicateBinding", err)
	}

	empty := DefaultControls()
	empty.P2Flip = nil
	if err := empty.Validate(); err == nil {
		t.Error("expected error for empty binding")
	}
}

func TestSearchPathsEndWithLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	paths := SearchPaths()
	if len(paths) != 2 {
		t.Fatalf("SearchPaths() = %v, expected user and local paths", paths)
	}
	if want := filepath.Join("configs", "dash.yaml"); paths[1] != want {
		t.Errorf("last path = %q, expected %q", paths[1], want)
	}
	if filepath.Base(filepath.Dir(filepath.Dir(paths[0]))) != AppDir {
		t.Errorf("user path %q is not under %s", paths[0], AppDir)
	}
}
