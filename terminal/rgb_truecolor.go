package terminal

// Generic TrueColor palette, pure RGB definitions without program semantics
// Renderers reference these via aliases in their own theme/palette types

var (
	// --- Achromatic ---
	Obsidian  = RGB{20, 20, 30} // Blue-black
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	// --- Accent ---
	SteelBlue = RGB{70, 130, 180}
)
