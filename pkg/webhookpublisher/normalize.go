package webhookpublisher

import "strings"

var knownTypes = map[string]bool{
	"listing.published":   true,
	"listing.created":     true,
	"listing.updated":     true,
	"listing.unpublished": true,
	"listing.deleted":     true,
	"user.created":        true,
	"user.updated":        true,
	"user.activated":      true,
	"user.deleted":        true,
	"user.deactivated":    true,
}

// normalizeType lowercases the type and maps agent.* onto the remote user.* names.
func normalizeType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if rest, ok := strings.CutPrefix(v, "agent."); ok {
		v = "user." + rest
	}
	return v
}

// isEntityFree reports whether an event may be sent without an entity id.
func isEntityFree(eventType string) bool {
	return !knownTypes[eventType]
}
