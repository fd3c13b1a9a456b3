package handlers

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	for _, flow := range []string{flowLogin, flowRegister} {
		state, nonce, err := GenerateState(flow)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(state, nonce+"."))

		gotFlow, gotNonce, err := DecodeState(state)
		require.NoError(t, err)
		assert.Equal(t, flow, gotFlow)
		assert.Equal(t, nonce, gotNonce)
	}
}

func TestGenerateState_UnknownFlowDefaultsToLogin(t *testing.T) {
	state, _, err := GenerateState("")
	require.NoError(t, err)
	flow, _, err := DecodeState(state)
	require.NoError(t, err)
	assert.Equal(t, flowLogin, flow)
}

func TestDecodeState_Rejects(t *testing.T) {
	badFlow := "nonce." + base64.RawURLEncoding.EncodeToString([]byte(`{"flow":"admin"}`))
	for _, state := range []string{"", "nodot", ".payload", "nonce.!!!", "nonce." + base64.RawURLEncoding.EncodeToString([]byte("not json")), badFlow} {
		_, _, err := DecodeState(state)
		assert.Error(t, err, "state=%q", state)
	}
}
