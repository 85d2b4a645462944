package keys

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := uuid.New()

	key := Encode(KindPaper, id)
	decoded, err := Decode(KindPaper, key)

	assert.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecodeRejectsWrongKind(t *testing.T) {
	key := Encode(KindOrganism, uuid.New())

	_, err := Decode(KindPaper, key)

	assert.ErrorIs(t, err, ErrMalformedKey)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"!!!not base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte("plain text")),
		base64.RawURLEncoding.EncodeToString([]byte("paper/not-a-uuid")),
		Encode(KindPaper, uuid.New()) + "=x",
	}
	for _, key := range cases {
		_, err := Decode(KindPaper, key)
		assert.ErrorIs(t, err, ErrMalformedKey, key)
	}
}
