package auth

import "strings"

// Resource entities and verbs recognized by the access reviewer.
const (
	ResourceAuditLog = "audit_log"

	VerbGet = "GET"
)

// AccessReviewer decides whether the holder of an API key may perform a verb
// on a resource entity. Implementations must be safe for concurrent use.
type AccessReviewer interface {
	// Review returns the principal behind the key and whether access is
	// granted. An unknown key yields ("", false).
	Review(apiKey, resource, verb string) (principal string, allowed bool)
}

// StaticKeyReviewer grants read-only audit log access to a fixed key set.
// Keys are supplied as "principal:key" pairs; a bare key is its own principal.
type StaticKeyReviewer struct {
	principals map[string]string
}

// NewStaticKeyReviewer builds a reviewer from configured key entries.
func NewStaticKeyReviewer(entries []string) *StaticKeyReviewer {
	principals := make(map[string]string, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if principal, key, found := strings.Cut(entry, ":"); found {
			principals[key] = principal
		} else {
			principals[entry] = entry
		}
	}
	return &StaticKeyReviewer{principals: principals}
}

// Review grants GET on the audit log to any configured key. Other resources
// and verbs are denied; this service has no write surface to authorize.
func (r *StaticKeyReviewer) Review(apiKey, resource, verb string) (string, bool) {
	if resource != ResourceAuditLog || verb != VerbGet {
		return "", false
	}
	principal, ok := r.principals[apiKey]
	if !ok {
		return "", false
	}
	return principal, true
}
