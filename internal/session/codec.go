// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// errMalformedIdentity marks a persisted user entry that cannot be restored.
var errMalformedIdentity = errors.New("malformed identity")

// encodeIdentity serialises an identity for the "user" store entry.
func encodeIdentity(id Identity) (string, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeIdentity parses the "user" store entry. An identity with neither a
// username nor an id is rejected; unknown roles are kept as stored.
func decodeIdentity(s string) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal([]byte(s), &id); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedIdentity, err)
	}
	if id.Username == "" && id.ID == 0 {
		return nil, fmt.Errorf("%w: empty identity", errMalformedIdentity)
	}
	return &id, nil
}
