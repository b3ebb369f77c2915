package colors

import "testing"

func TestGetPreset(t *testing.T) {
	t.Parallel()

	for _, name := range Presets {
		if got := GetPreset(name).Preset; got != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, got)
		}
	}
	if got := GetPreset("unknown").Preset; got != "default" {
		t.Errorf("Unknown preset should fall back to default, got %q", got)
	}
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	t.Parallel()

	c := ColorScheme{Preset: "wave", Overdue: "#ABCDEF"}
	c.ApplyDefaults()

	if c.Overdue != "#ABCDEF" {
		t.Errorf("Overdue = %s, want override kept", c.Overdue)
	}
	if c.Accent != Wave().Accent {
		t.Errorf("Accent = %s, want wave preset", c.Accent)
	}
}

func TestApplyDefaults_EmptyPreset(t *testing.T) {
	t.Parallel()

	var c ColorScheme
	c.ApplyDefaults()
	if c.Preset != "default" || c.Error != Default().Error {
		t.Errorf("Expected default preset, got %+v", c)
	}
}

func TestMergeFrom(t *testing.T) {
	t.Parallel()

	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#000001"})

	if c.Accent != "#000001" {
		t.Errorf("Accent = %s, want merged value", c.Accent)
	}
	if c.Title != Default().Title {
		t.Errorf("Empty fields must not override, Title = %s", c.Title)
	}
}
