package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artificer/internal/ports"
	"artificer/internal/types"
)

// Session is the resolution session: the target platform, the executor
// every assembled build is submitted to, and the registry of builds
// already issued. The registry guarantees at most one submission per
// distinct name:version:platform within the session.
//
// All resolution happens on the composer's single goroutine, so the
// registry is a plain map. An implementation that parallelizes recipe
// construction must guard it with mutual exclusion.
type Session struct {
	platform types.Platform
	executor ports.ExecutorPort
	built    map[string]types.ArtifactRef
}

func NewSession(platform types.Platform, executor ports.ExecutorPort) (*Session, error) {
	if _, err := types.ParsePlatform(string(platform)); err != nil {
		return nil, err
	}
	if executor == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("session requires an executor port")
	}
	return &Session{
		platform: platform,
		executor: executor,
		built:    map[string]types.ArtifactRef{},
	}, nil
}

// Platform returns the session's target platform.
func (s *Session) Platform() types.Platform {
	return s.platform
}

// Run issues the terminal submit-and-run call to the executor. The
// session is spent afterwards.
func (s *Session) Run(ctx context.Context) error {
	log.Ctx(ctx).Debug().Int("artifacts", len(s.built)).Msg("handing build plan to executor")
	return s.executor.Run(ctx)
}

func (s *Session) resolved(key string) (types.ArtifactRef, bool) {
	ref, ok := s.built[key]
	return ref, ok
}

func (s *Session) remember(key string, ref types.ArtifactRef) {
	s.built[key] = ref
}

func buildKey(name, version string, platform types.Platform) string {
	return fmt.Sprintf("%s:%s:%s", name, version, platform)
}
