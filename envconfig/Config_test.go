package envconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robonotes/gonotes/envconfig"
	"github.com/robonotes/gonotes/environment/composer"
)

func TestCreateAppliesDefaults(t *testing.T) {
	config := envconfig.NewConfig(8, 0, "", envconfig.Constant, 1.0, 0)

	c, first, err := config.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, voices := c.Dims()
	if voices != composer.DefaultNumPitches {
		t.Errorf("created environment has %v voices, want the default %v",
			voices, composer.DefaultNumPitches)
	}

	rows, cols := first.Observation.Dims()
	if rows != 8 || cols != composer.DefaultNumPitches {
		t.Errorf("first observation is %vx%v, want 8x%v", rows, cols,
			composer.DefaultNumPitches)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config envconfig.Config
		valid  bool
	}{
		{
			"valid",
			envconfig.NewConfig(16, 2, "", envconfig.VoiceActivity, 1.0, 1),
			true,
		},
		{
			"non-positive length",
			envconfig.NewConfig(0, 2, "", envconfig.Constant, 1.0, 1),
			false,
		},
		{
			"negative pitches",
			envconfig.NewConfig(16, -2, "", envconfig.Constant, 1.0, 1),
			false,
		},
		{
			"unknown task",
			envconfig.NewConfig(16, 2, "", envconfig.TaskName("Groove"),
				1.0, 1),
			false,
		},
	}

	for _, test := range tests {
		err := test.config.Validate()
		if test.valid && err != nil {
			t.Errorf("%v: unexpected error %v", test.name, err)
		}
		if !test.valid && err == nil {
			t.Errorf("%v: expected an error", test.name)
		}
	}
}

func TestFromFile(t *testing.T) {
	contents := `{
	"MaxLength": 32,
	"NumPitches": 3,
	"Task": "VoiceActivity",
	"TaskWeight": 0.5,
	"Seed": 42
}`
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := envconfig.FromFile(path)
	if err != nil {
		t.Fatalf("fromfile: %v", err)
	}

	want := envconfig.NewConfig(32, 3, "", envconfig.VoiceActivity, 0.5, 42)
	if config != want {
		t.Errorf("got %+v, want %+v", config, want)
	}

	if _, err := envconfig.FromFile(filepath.Join(t.TempDir(),
		"missing.json")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
