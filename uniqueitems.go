package subsumecheck

// compileUniqueItems translates "uniqueItems": when true, no two elements
// of an array Value may be equal under JSON-Schema instance equality.
func compileUniqueItems(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.UniqueItems == nil || !*s.UniqueItems {
		return nil, nil
	}
	label := cc.labels.New(cc.side, path, "uniqueItems")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindArr {
			return true
		}
		for i := 0; i < len(v.Arr); i++ {
			for j := i + 1; j < len(v.Arr); j++ {
				if v.Arr[i].Equal(v.Arr[j]) {
					return false
				}
			}
		}
		return true
	}), nil
}
