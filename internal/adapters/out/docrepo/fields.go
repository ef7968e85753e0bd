// Package docrepo holds the field decoding helpers shared by the document
// repositories. Production documents are written by several generations of
// the client-facing app, so every read is tolerant: absent fields fall back
// to zero values, and reference fields accept both the normalized form and
// the legacy string paths.
package docrepo

import (
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// RefField decodes the first present reference field among names. Values may
// be a kernel.Ref (normalized by the store adapter) or a legacy string path
// such as "/rider/abc123". Absent or unparsable values yield the zero Ref;
// whether that is acceptable is the caller's business rule, not the mapper's.
func RefField(doc ports.Document, names ...string) kernel.Ref {
	for _, name := range names {
		value, ok := doc[name]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case kernel.Ref:
			return v
		case string:
			ref, err := kernel.RefFromPath(v)
			if err != nil {
				continue
			}
			return ref
		}
	}
	return kernel.Ref{}
}

// StringField decodes a string field, empty when absent or mistyped.
func StringField(doc ports.Document, name string) string {
	s, _ := doc[name].(string)
	return s
}

// BoolField decodes a boolean field, false when absent or mistyped.
func BoolField(doc ports.Document, name string) bool {
	b, _ := doc[name].(bool)
	return b
}

// FloatField decodes a numeric field, zero when absent or mistyped. Integer
// encodings are accepted; old documents store prices inconsistently.
func FloatField(doc ports.Document, name string) float64 {
	switch v := doc[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// IntField decodes an integer field, zero when absent or mistyped.
func IntField(doc ports.Document, name string) int {
	switch v := doc[name].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// TimeField decodes a timestamp field, the zero time when absent or mistyped.
func TimeField(doc ports.Document, name string) time.Time {
	t, _ := doc[name].(time.Time)
	return t
}

// TimePtrField decodes an optional timestamp field, nil when absent.
func TimePtrField(doc ports.Document, name string) *time.Time {
	t, ok := doc[name].(time.Time)
	if !ok {
		return nil
	}
	return &t
}
