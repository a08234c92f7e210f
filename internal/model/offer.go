package model

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// OfferID is a composite contract offer identifier: three base64url-encoded
// parts (contract definition id, asset id, a random discriminator) joined
// with ':'.
type OfferID struct {
	DefinitionID string
	AssetID      string
}

// ParseOfferID splits and decodes a composite offer id.
func ParseOfferID(id string) (OfferID, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return OfferID{}, fmt.Errorf("malformed offer id %q: expected 3 parts, got %d", id, len(parts))
	}
	definitionID, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return OfferID{}, fmt.Errorf("malformed offer id %q: decode definition part: %w", id, err)
	}
	assetID, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return OfferID{}, fmt.Errorf("malformed offer id %q: decode asset part: %w", id, err)
	}
	return OfferID{DefinitionID: string(definitionID), AssetID: string(assetID)}, nil
}
