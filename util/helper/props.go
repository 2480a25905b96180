package helper_util

// Typed accessors for node property maps. Missing or mistyped values yield
// the zero value.

func StringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func BoolProp(props map[string]any, key string) bool {
	b, _ := props[key].(bool)
	return b
}

func Int64Prop(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
