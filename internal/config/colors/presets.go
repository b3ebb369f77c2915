package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFD700",
		PriorityLow:    "#5FD75F",

		Completed: "#5F87D7",
		Overdue:   "#FF0000",

		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityHigh:   "#FFFFFF",
		PriorityMedium: "#D0D0D0",
		PriorityLow:    "#8A8A8A",

		Completed: "#8A8A8A",
		Overdue:   "#FFFFFF",

		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",
		Accent: "#957FB8", // oniViolet

		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		PriorityHigh:   "#E46876", // waveRed
		PriorityMedium: "#FF9E3B", // roninYellow
		PriorityLow:    "#98BB6C", // springGreen

		Completed: "#6A9589", // waveAqua1
		Overdue:   "#E82424", // samuraiRed

		Success: "#98BB6C",
		Warning: "#FF9E3B",
		Error:   "#E82424",
	}
}
