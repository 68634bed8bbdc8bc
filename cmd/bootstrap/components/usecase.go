package components

import (
	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/usecase"
	"haggle-service/internal/usecase/commands"
	"haggle-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	negotiation.NewContentFilter,
	negotiation.NewRateLimiter,
	func(clock clock.Clock, filter *negotiation.ContentFilter, limiter *negotiation.RateLimiter) *negotiation.Services {
		return &negotiation.Services{
			Clock:   clock,
			Filter:  filter,
			Limiter: limiter,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNegotiationCommands,
		commands.NewTokenCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewNegotiationQueries,
		queries.NewTokenQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
