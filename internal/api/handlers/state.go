package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rohits-web03/clubhouse/internal/utils"
)

const (
	flowLogin    = "login"
	flowRegister = "register"
)

type oauthState struct {
	Flow string `json:"flow"`
}

// GenerateState builds the OAuth state value "<nonce>.<payload>". The nonce
// is also kept in a cookie and compared on callback.
func GenerateState(flow string) (state, nonce string, err error) {
	if flow != flowRegister {
		flow = flowLogin
	}

	nonce, err = utils.GenerateSecureToken(16)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate state nonce: %w", err)
	}

	payload, err := json.Marshal(oauthState{Flow: flow})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal state data: %w", err)
	}

	return nonce + "." + base64.RawURLEncoding.EncodeToString(payload), nonce, nil
}

// DecodeState splits a state value produced by GenerateState.
func DecodeState(state string) (flow, nonce string, err error) {
	nonce, encoded, ok := strings.Cut(state, ".")
	if !ok || nonce == "" || encoded == "" {
		return "", "", errors.New("invalid state format")
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode state payload: %w", err)
	}

	var s oauthState
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal state JSON: %w", err)
	}
	if s.Flow != flowLogin && s.Flow != flowRegister {
		return "", "", fmt.Errorf("unknown state flow %q", s.Flow)
	}
	return s.Flow, nonce, nil
}
