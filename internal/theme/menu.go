package theme

// MenuItem is a Hugo menu entry.
type MenuItem struct {
	Name       string         `yaml:"name"`
	URL        string         `yaml:"url,omitempty"`
	Identifier string         `yaml:"identifier,omitempty"`
	Parent     string         `yaml:"parent,omitempty"`
	Weight     int            `yaml:"weight"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// MainMenu returns the main menu stored in root, if any.
func MainMenu(root map[string]any) []MenuItem {
	menu, _ := root["menu"].(map[string]any)
	items, _ := menu["main"].([]MenuItem)
	return items
}

// SetMainMenu stores items as the main menu in root.
func SetMainMenu(root map[string]any, items []MenuItem) {
	menu, ok := root["menu"].(map[string]any)
	if !ok {
		menu = map[string]any{}
		root["menu"] = menu
	}
	menu["main"] = items
}

// NextWeight returns a weight greater than any top-level item.
func NextWeight(items []MenuItem) int {
	maxWeight := 0
	for _, it := range items {
		if it.Parent == "" && it.Weight > maxWeight {
			maxWeight = it.Weight
		}
	}
	return maxWeight + 1
}
