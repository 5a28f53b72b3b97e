package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome", "dragon")
	Preset string `yaml:"preset" koanf:"preset"`

	// Primary accent color (table borders, selections, titles)
	Accent string `yaml:"accent" koanf:"accent"`

	// Table and board elements
	Border     string `yaml:"border" koanf:"border"`
	SelectedBg string `yaml:"selected_bg" koanf:"selected_bg"`

	// Text colors
	Title  string `yaml:"title" koanf:"title"`
	Subtle string `yaml:"subtle" koanf:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" koanf:"normal"`

	// Semantic colors
	Success string `yaml:"success" koanf:"success"`
	Overdue string `yaml:"overdue" koanf:"overdue"` // schedule rows past their next date
	Error   string `yaml:"error" koanf:"error"`
}

// Presets lists the preset names accepted by GetPreset
var Presets = []string{"default", "monochrome", "dragon"}

// GetPreset returns a preset color scheme by name. Unknown names fall back to Default.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
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

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Border, preset.Border)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.Error, preset.Error)
}
