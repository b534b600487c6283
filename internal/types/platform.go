package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Platform identifies a target system an artifact can be built for.
// The set is closed: recipes either carry a variant for a platform or
// explicitly reject it, and new platforms are added here and nowhere else.
type Platform string

const (
	PlatformAarch64Darwin Platform = "aarch64-darwin"
	PlatformAarch64Linux  Platform = "aarch64-linux"
	PlatformX8664Darwin   Platform = "x86_64-darwin"
	PlatformX8664Linux    Platform = "x86_64-linux"
)

// DefaultPlatforms lists every supported platform, in stable order.
var DefaultPlatforms = []Platform{
	PlatformAarch64Darwin,
	PlatformAarch64Linux,
	PlatformX8664Darwin,
	PlatformX8664Linux,
}

func ParsePlatform(value string) (Platform, error) {
	platform := Platform(value)
	for _, known := range DefaultPlatforms {
		if platform == known {
			return platform, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown platform %q", value))
}

func (p Platform) String() string {
	return string(p)
}
