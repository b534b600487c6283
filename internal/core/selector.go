package core

import (
	"artificer/internal/types"
)

// SelectVariant returns the variant authored for the given platform. It
// is a pure function of the variant mapping and the platform: no other
// platform's entry is consulted, and a missing entry is a hard failure
// for the owning recipe rather than a silent skip.
func SelectVariant(name string, variants map[types.Platform]types.Variant, platform types.Platform) (types.Variant, error) {
	variant, ok := variants[platform]
	if !ok {
		return types.Variant{}, NewUnsupportedPlatform(name, platform)
	}
	return variant, nil
}
