package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artificer/internal/core"
	"artificer/internal/recipes"
	"artificer/internal/types"
)

// Compose runs one resolution session: the development environment
// first, then the shared prerequisites, then every top-level tool in
// fixed order, and finally the terminal submit-and-run call. Shared
// prerequisites are built once and handed to their dependents as
// explicit overrides rather than re-resolved per dependent. The composer
// halts at the first failing recipe.
func (s Service) Compose(ctx context.Context, req ComposeRequest) (ComposeResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ComposeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	platform, err := types.ParsePlatform(strings.TrimSpace(req.Platform))
	if err != nil {
		return ComposeResult{}, err
	}
	project := strings.TrimSpace(req.Project)
	if project == "" {
		project = "dev"
	}

	session, err := core.NewSession(platform, s.NewExecutor(outputDir))
	if err != nil {
		return ComposeResult{}, err
	}

	machine := newComposer()
	queue := func(recipe core.Builder) (types.ArtifactRef, error) {
		ref, err := recipe.Build(ctx, session)
		if err != nil {
			machine.fail()
			return "", err
		}
		if err := machine.advance(stateArtifactsQueued); err != nil {
			return "", err
		}
		return ref, nil
	}

	log.Ctx(ctx).Info().
		Str("platform", platform.String()).
		Str("project", project).
		Msg("composing build plan")

	// Development environment
	devEnv, err := (recipes.DevEnv{Name: project}).Build(ctx, session)
	if err != nil {
		machine.fail()
		return ComposeResult{}, err
	}
	if err := machine.advance(stateDevEnvBuilt); err != nil {
		return ComposeResult{}, err
	}

	// Shared prerequisites, built once and passed into dependents below.
	libevent, err := queue(recipes.Libevent{})
	if err != nil {
		return ComposeResult{}, err
	}
	libgpgError, err := queue(recipes.LibgpgError{})
	if err != nil {
		return ComposeResult{}, err
	}
	libassuan, err := queue(recipes.Libassuan{LibgpgError: libgpgError})
	if err != nil {
		return ComposeResult{}, err
	}
	libgcrypt, err := queue(recipes.Libgcrypt{LibgpgError: libgpgError})
	if err != nil {
		return ComposeResult{}, err
	}
	libksba, err := queue(recipes.Libksba{LibgpgError: libgpgError})
	if err != nil {
		return ComposeResult{}, err
	}
	ncurses, err := queue(recipes.Ncurses{})
	if err != nil {
		return ComposeResult{}, err
	}
	npth, err := queue(recipes.Npth{})
	if err != nil {
		return ComposeResult{}, err
	}
	openjdk, err := queue(recipes.Openjdk{})
	if err != nil {
		return ComposeResult{}, err
	}
	pkgConfig, err := queue(recipes.PkgConfig{})
	if err != nil {
		return ComposeResult{}, err
	}
	readline, err := queue(recipes.Readline{Ncurses: ncurses})
	if err != nil {
		return ComposeResult{}, err
	}

	// Top-level tools, in fixed order.
	catalog := []core.Builder{
		recipes.Gpg{
			LibgpgError: libgpgError,
			Libassuan:   libassuan,
			Libgcrypt:   libgcrypt,
			Libksba:     libksba,
			Npth:        npth,
		},
		recipes.Helm{},
		recipes.Jq{},
		recipes.Just{},
		recipes.K9s{},
		recipes.Nnn{Ncurses: ncurses, PkgConfig: pkgConfig, Readline: readline},
		recipes.OpenAPIGeneratorCLI{Openjdk: openjdk},
		recipes.Ripgrep{},
		recipes.Terraform{},
		recipes.Tmux{Libevent: libevent, Ncurses: ncurses},
		recipes.Zsh{Ncurses: ncurses},
	}
	for _, recipe := range catalog {
		if _, err := queue(recipe); err != nil {
			return ComposeResult{}, err
		}
	}

	if err := session.Run(ctx); err != nil {
		machine.fail()
		return ComposeResult{}, err
	}
	if err := machine.advance(stateSubmitted); err != nil {
		return ComposeResult{}, err
	}

	return ComposeResult{
		Project:   project,
		Platform:  platform,
		OutputDir: outputDir,
		Artifacts: machine.queued,
		DevEnv:    devEnv,
	}, nil
}
