package activitystreams

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aluitink/ActivityStreams/internal/url"
)

// MintID returns a new, globally unique IRI under base, like
// https://example.com/notes/1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed.
//
// The base must be an absolute IRI.
func MintID(base string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}

	res, err := url.Join(base, id.String())
	if err != nil {
		return "", fmt.Errorf("invalid base %q: %w", base, err)
	}
	return res, nil
}
