// Package keys encodes system-assigned entity identifiers as opaque URL-safe
// strings so clients never see raw database ids.
package keys

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Entity kinds carried inside opaque keys.
const (
	KindOrganism = "organism"
	KindPaper    = "paper"
)

// ErrMalformedKey is returned when an opaque key cannot be decoded or names a
// different entity kind than expected.
var ErrMalformedKey = errors.New("malformed key")

// Encode packs a kind and a record id into an opaque URL-safe key.
func Encode(kind string, id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(kind + "/" + id.String()))
}

// Decode unpacks an opaque key, verifying it carries the expected kind.
func Decode(kind, key string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return uuid.Nil, ErrMalformedKey
	}
	prefix := kind + "/"
	s := string(raw)
	if !strings.HasPrefix(s, prefix) {
		return uuid.Nil, ErrMalformedKey
	}
	id, err := uuid.Parse(strings.TrimPrefix(s, prefix))
	if err != nil {
		return uuid.Nil, ErrMalformedKey
	}
	return id, nil
}
