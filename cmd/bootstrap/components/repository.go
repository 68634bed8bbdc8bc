package components

import (
	"haggle-service/internal/infra/readstore"
	repo_impl "haggle-service/internal/infra/repository"
	"haggle-service/internal/usecase/commands"
	"haggle-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		repo_impl.NewTokenRepository,
		fx.Annotate(
			repo_impl.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		fx.Annotate(
			repo_impl.NewTokenRepository,
			fx.As(new(commands.TokenRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			readstore.NewTokenReadStore,
			fx.As(new(queries.TokenReadStore)),
		),
	),
)
