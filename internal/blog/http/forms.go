package http

import "net/url"

// Field is an optional form field. Absent means the key was not submitted
// at all, which the validation rules treat differently from a submitted but
// empty value.
type Field struct {
	Value   string
	Present bool
}

func formField(form url.Values, key string) Field {
	vals, ok := form[key]
	if !ok || len(vals) == 0 {
		return Field{}
	}
	return Field{Value: vals[0], Present: true}
}
