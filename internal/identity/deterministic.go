package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the stable identity for a seeded page slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("loopcms:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// ResourceUUID derives the stable identity for an imported resource file.
func ResourceUUID(path string) uuid.UUID {
	return UUID("loopcms:resource:" + strings.TrimSpace(path))
}
