package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	ticketID := uuid.New().String()

	encoded, err := codec.Encode(ticketID)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, ticketID, decoded)
}

func TestCodec_TamperedPayload(t *testing.T) {
	codec := NewCodec("test-secret")

	encoded, err := codec.Encode("ticket-a")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	// Flip a single byte at every position; each mutation must fail
	// verification (or fail to decode at all).
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := codec.Decode(base64.StdEncoding.EncodeToString(tampered))
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "byte %d", i)
	}
}

func TestCodec_SignatureNotTransferable(t *testing.T) {
	codec := NewCodec("test-secret")

	encodedA, err := codec.Encode("ticket-a")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encodedA)
	require.NoError(t, err)

	var p struct {
		TicketID  string `json:"ticket_id"`
		Signature string `json:"signature"`
	}
	require.NoError(t, json.Unmarshal(raw, &p))

	// Reuse ticket A's signature for ticket B.
	p.TicketID = "ticket-b"
	forged, err := json.Marshal(p)
	require.NoError(t, err)

	_, err = codec.Decode(base64.StdEncoding.EncodeToString(forged))
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCodec_DifferentSecret(t *testing.T) {
	encoded, err := NewCodec("secret-one").Encode("ticket-a")
	require.NoError(t, err)

	_, err = NewCodec("secret-two").Decode(encoded)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("test-secret")

	cases := []struct {
		name string
		in   string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"not json", base64.StdEncoding.EncodeToString([]byte("not json"))},
		{"empty fields", base64.StdEncoding.EncodeToString([]byte(`{}`))},
		{"missing signature", base64.StdEncoding.EncodeToString([]byte(`{"ticket_id":"t1"}`))},
		{"empty input", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Decode(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
