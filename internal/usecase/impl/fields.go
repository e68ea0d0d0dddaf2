package impl

import "time"

// Helpers that collect non-nil pointer fields into a column update map.
// Nil means "leave unchanged"; there is no way to write an explicit null.

func putString(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func putBool(fields map[string]any, column string, value *bool) {
	if value != nil {
		fields[column] = *value
	}
}

func putTime(fields map[string]any, column string, value *time.Time) {
	if value != nil {
		fields[column] = *value
	}
}
