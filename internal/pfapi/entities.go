package pfapi

import (
	"github.com/tidwall/gjson"

	"github.com/fr0stylo/pfsync/internal/app/domain"
)

// entityContainers are the keys under which list endpoints return entities,
// in the order they are tried.
var entityContainers = []string{"results", "data"}

// ExtractEntities returns the entity array of a list response. ok is false
// when no known container holds an array.
func ExtractEntities(raw []byte) (entities []domain.RemoteEntity, ok bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	doc := gjson.ParseBytes(raw)
	for _, key := range entityContainers {
		container := doc.Get(key)
		if !container.IsArray() {
			continue
		}
		items := container.Array()
		entities = make([]domain.RemoteEntity, 0, len(items))
		for _, item := range items {
			entities = append(entities, domain.RemoteEntity(item.Raw))
		}
		return entities, true
	}
	return nil, false
}

// ExtractSingle returns the entity of a single-resource response, which is
// either the entity itself or an entity-shaped container.
func ExtractSingle(raw []byte) (domain.RemoteEntity, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	doc := gjson.ParseBytes(raw)
	if doc.IsObject() && doc.Get("id").Exists() {
		return domain.RemoteEntity(doc.Raw), true
	}
	for _, key := range []string{"data", "result"} {
		if inner := doc.Get(key); inner.IsObject() && inner.Get("id").Exists() {
			return domain.RemoteEntity(inner.Raw), true
		}
	}
	if entities, ok := ExtractEntities(raw); ok && len(entities) > 0 {
		return entities[0], true
	}
	return nil, false
}

// findByID picks the entity with id out of a list response.
func findByID(raw []byte, id string) (domain.RemoteEntity, bool) {
	entities, ok := ExtractEntities(raw)
	if !ok {
		return nil, false
	}
	for _, entity := range entities {
		if entity.ID() == id {
			return entity, true
		}
	}
	return nil, false
}
