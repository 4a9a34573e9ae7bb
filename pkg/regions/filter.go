package regions

// Select returns the regions whose key is in targets, keeping extraction order
func Select(regions []FieldRegion, targets []string) []FieldRegion {
	wanted := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		wanted[t] = struct{}{}
	}

	selected := make([]FieldRegion, 0, len(targets))
	for _, r := range regions {
		if _, ok := wanted[r.Key]; ok {
			selected = append(selected, r)
		}
	}
	return selected
}
