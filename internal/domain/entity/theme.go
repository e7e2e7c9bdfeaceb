package entity

// ThemeKey names a visual preset of the public profile.
type ThemeKey string

const (
	ThemeLight    ThemeKey = "light"
	ThemeDark     ThemeKey = "dark"
	ThemeSunset   ThemeKey = "sunset"
	ThemeOcean    ThemeKey = "ocean"
	ThemeMidnight ThemeKey = "midnight"
)

// DefaultTheme is used for new users and as fallback for lapsed Pro themes.
const DefaultTheme = ThemeLight

// Theme describes how a preset renders.
type Theme struct {
	Key        ThemeKey `json:"key"`
	Label      string   `json:"label"`
	Pro        bool     `json:"pro"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Card       string   `json:"card"`
	Button     string   `json:"button"`
}

// Themes is the closed catalogue of presets in display order.
var Themes = []Theme{
	{Key: ThemeLight, Label: "Light", Background: "#f9fafb", Text: "#0f172a", Card: "#ffffff", Button: "#0f172a"},
	{Key: ThemeDark, Label: "Dark", Background: "#020617", Text: "#f8fafc", Card: "#0f172a", Button: "#ffffff"},
	{Key: ThemeSunset, Label: "Sunset", Pro: true, Background: "linear-gradient(135deg, #f97316, #db2777)", Text: "#ffffff", Card: "rgba(255,255,255,0.1)", Button: "#ffffff"},
	{Key: ThemeOcean, Label: "Ocean", Pro: true, Background: "linear-gradient(135deg, #2563eb, #2dd4bf)", Text: "#ffffff", Card: "rgba(255,255,255,0.1)", Button: "#ffffff"},
	{Key: ThemeMidnight, Label: "Midnight", Pro: true, Background: "linear-gradient(180deg, #0f172a, #581c87, #0f172a)", Text: "#faf5ff", Card: "rgba(0,0,0,0.4)", Button: "#a855f7"},
}

// LookupTheme returns the preset for key.
func LookupTheme(key ThemeKey) (Theme, bool) {
	for _, theme := range Themes {
		if theme.Key == key {
			return theme, true
		}
	}

	return Theme{}, false
}

// ResolveTheme returns the preset a profile renders with. Unknown keys and Pro presets of
// non-Pro owners fall back to the default preset.
func ResolveTheme(key ThemeKey, isPro bool) Theme {
	theme, ok := LookupTheme(key)
	if !ok || (theme.Pro && !isPro) {
		theme, _ = LookupTheme(DefaultTheme)
	}

	return theme
}
