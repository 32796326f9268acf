package upsert

import (
	"github.com/fr0stylo/pfsync/internal/app/domain"
)

// FieldMapping copies one source path into one local field.
type FieldMapping struct {
	Source    string
	Target    string
	Transform Transform
}

// FieldTable is the declarative mapping for one entity kind.
type FieldTable []FieldMapping

// Apply maps entity into local fields. Empty results are left out so that
// updates never overwrite stored values with blanks.
func (t FieldTable) Apply(entity domain.RemoteEntity) map[string]string {
	fields := make(map[string]string, len(t))
	for _, mapping := range t {
		value := mapping.Transform.Apply(entity.Get(mapping.Source))
		if value == "" {
			continue
		}
		fields[mapping.Target] = value
	}
	return fields
}

// firstNonEmpty returns the first path that renders to a non-empty value.
func firstNonEmpty(entity domain.RemoteEntity, transform Transform, paths ...string) string {
	for _, path := range paths {
		if value := transform.Apply(entity.Get(path)); value != "" {
			return value
		}
	}
	return ""
}
