package hugo

// mergeParams deep-merges user params from src into dst. Nested maps merge
// key by key; lists and scalars from src replace what dst holds. Maps taken
// from src are copied so later theme edits never reach the user config.
func mergeParams(dst, src map[string]any) {
	for k, v := range src {
		sub, isMap := v.(map[string]any)
		if !isMap {
			dst[k] = v
			continue
		}
		target, ok := dst[k].(map[string]any)
		if !ok {
			target = make(map[string]any, len(sub))
			dst[k] = target
		}
		mergeParams(target, sub)
	}
}
