package model

// FilterPreset is one of the fixed feeling-based filter presets. The
// preview URL is always null; clients render previews from the CSS filter.
type FilterPreset struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	CSSFilter  string  `json:"css_filter"`
	PreviewURL *string `json:"preview_url"`
}
