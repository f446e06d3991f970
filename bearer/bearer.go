// Package bearer encodes delegation chains into the opaque string carried in
// the OAuth2 access_token field: JSON text, UTF-8 bytes, hex. The chain is
// produced and verified elsewhere; decoding validates only the outer shape.
package bearer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/icid-go/icid/errors"
	"github.com/icid-go/icid/models"
)

// Encode serializes an opaque delegation-chain value to JSON and returns the
// hex encoding of its UTF-8 bytes.
func Encode(chain any) (string, error) {
	data, err := json.Marshal(chain)
	if err != nil {
		return "", fmt.Errorf("marshal delegation chain: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// Decode reverses Encode and validates the decoded shape: publicKey must be
// a JSON string and delegations must be present and non-null. The returned
// value is always the validated, narrowed structure, never the raw parse.
func Decode(token string) (*models.BearerToken, error) {
	data, err := hex.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedToken, err)
	}

	var probe struct {
		PublicKey   json.RawMessage `json:"publicKey"`
		Delegations json.RawMessage `json:"delegations"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedToken, err)
	}

	// json.RawMessage keeps a literal null, and unmarshalling null into a
	// string is a no-op, so null must be rejected explicitly.
	var publicKey string
	if probe.PublicKey == nil || string(probe.PublicKey) == "null" || json.Unmarshal(probe.PublicKey, &publicKey) != nil {
		return nil, errors.NewValidation("publicKey must be a string")
	}
	if probe.Delegations == nil || string(probe.Delegations) == "null" {
		return nil, errors.NewValidation("delegations required")
	}

	var delegations []models.SignedDelegation
	if err := json.Unmarshal(probe.Delegations, &delegations); err != nil {
		return nil, errors.NewValidation("delegations required")
	}
	return &models.BearerToken{
		PublicKey:   publicKey,
		Delegations: delegations,
	}, nil
}
