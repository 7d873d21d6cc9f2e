package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticKeyReviewer_WhenKnownKey_ThenGrantsAuditRead(t *testing.T) {
	reviewer := NewStaticKeyReviewer([]string{"alice:key-1", "key-2"})

	principal, allowed := reviewer.Review("key-1", ResourceAuditLog, VerbGet)
	assert.True(t, allowed)
	assert.Equal(t, "alice", principal)

	// A bare key acts as its own principal.
	principal, allowed = reviewer.Review("key-2", ResourceAuditLog, VerbGet)
	assert.True(t, allowed)
	assert.Equal(t, "key-2", principal)
}

func TestStaticKeyReviewer_WhenUnknownKey_ThenDenies(t *testing.T) {
	reviewer := NewStaticKeyReviewer([]string{"alice:key-1"})

	_, allowed := reviewer.Review("wrong-key", ResourceAuditLog, VerbGet)
	assert.False(t, allowed)

	_, allowed = reviewer.Review("", ResourceAuditLog, VerbGet)
	assert.False(t, allowed)
}

func TestStaticKeyReviewer_WhenOtherResourceOrVerb_ThenDenies(t *testing.T) {
	reviewer := NewStaticKeyReviewer([]string{"alice:key-1"})

	_, allowed := reviewer.Review("key-1", "connections", VerbGet)
	assert.False(t, allowed)

	_, allowed = reviewer.Review("key-1", ResourceAuditLog, "POST")
	assert.False(t, allowed)
}

func TestNewStaticKeyReviewer_WhenBlankEntries_ThenIgnored(t *testing.T) {
	reviewer := NewStaticKeyReviewer([]string{" ", "", "alice:key-1"})

	_, allowed := reviewer.Review("key-1", ResourceAuditLog, VerbGet)
	assert.True(t, allowed)
}
