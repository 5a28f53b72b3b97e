package colors

// Dragon returns a dark scheme with warm earth tones (Kanagawa Dragon)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent:     "#8992A7",
		Border:     "#625E5A",
		SelectedBg: "#223249",

		Title:  "#8BA4B0",
		Subtle: "#A6A69C",
		Normal: "#C5C9C5",

		Success: "#87A987",
		Overdue: "#FF9E3B",
		Error:   "#E82424",
	}
}
