package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and highlights)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text, ids, empty-state messages
	Normal string `yaml:"normal"`

	// Priority badges
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Status colors
	Completed string `yaml:"completed"`
	Overdue   string `yaml:"overdue"`

	// Message colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// Presets lists the preset names GetPreset knows
var Presets = []string{"default", "monochrome", "wave"}

// GetPreset returns a preset color scheme by name, falling back to the default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.Completed, preset.Completed)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	override(&c.Preset, other.Preset)
	override(&c.Accent, other.Accent)
	override(&c.Title, other.Title)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
	override(&c.PriorityHigh, other.PriorityHigh)
	override(&c.PriorityMedium, other.PriorityMedium)
	override(&c.PriorityLow, other.PriorityLow)
	override(&c.Completed, other.Completed)
	override(&c.Overdue, other.Overdue)
	override(&c.Success, other.Success)
	override(&c.Warning, other.Warning)
	override(&c.Error, other.Error)
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
