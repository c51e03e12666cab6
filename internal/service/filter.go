package service

import "github.com/storylens/storylens-go/internal/model"

// filterPresets is the fixed set of feeling-based filter presets. The
// list is identical for every caller and role.
var filterPresets = []model.FilterPreset{
	{
		ID:        "warm",
		Name:      "warm",
		Label:     "따뜻한",
		CSSFilter: "brightness(1.1) saturate(1.3) sepia(0.2)",
	},
	{
		ID:        "cool",
		Name:      "cool",
		Label:     "시원한",
		CSSFilter: "brightness(1.05) saturate(0.9) hue-rotate(15deg)",
	},
	{
		ID:        "happy",
		Name:      "happy",
		Label:     "행복한",
		CSSFilter: "brightness(1.2) saturate(1.4) contrast(1.1)",
	},
	{
		ID:        "calm",
		Name:      "calm",
		Label:     "차분한",
		CSSFilter: "brightness(0.95) saturate(0.8) contrast(0.95)",
	},
	{
		ID:        "memory",
		Name:      "memory",
		Label:     "회상",
		CSSFilter: "brightness(0.9) saturate(0.6) sepia(0.4) contrast(1.1)",
	},
}

// FilterService serves the filter preset catalog.
type FilterService struct{}

// NewFilterService creates a new FilterService.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// List returns the filter presets.
func (s *FilterService) List() []model.FilterPreset {
	presets := make([]model.FilterPreset, len(filterPresets))
	copy(presets, filterPresets)
	return presets
}
