package planner_fx

import (
	"os"

	"go.uber.org/fx"

	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/repositories"
	"alpinepulse/internal/services"
	"alpinepulse/pkg/clock"
	mem "alpinepulse/pkg/memcache"
)

var Module = fx.Provide(
	provideThemeConfig,
	provideClock,
	provideSessionCache,
	providePlanClient,
	providePlannerService)

// THEME_MODE=free switches to the independently-edited percentage fields;
// the default is the ranked four-theme form.
func provideThemeConfig() interests.Config {
	if os.Getenv("THEME_MODE") == "free" {
		return interests.DefaultFreeEntryConfig()
	}
	return interests.DefaultRankedConfig()
}

func provideClock() clock.Clock {
	return clock.NewSystemClock()
}

func provideSessionCache(store mem.BlobStore) *services.PlanSessionCache {
	return services.NewPlanSessionCache(store)
}

func providePlanClient() services.PlanServiceInterface {
	return services.NewPlannerAPIClient()
}

func providePlannerService(
	attractionRepo repositories.AttractionRepository,
	planClient services.PlanServiceInterface,
	cache *services.PlanSessionCache,
	cfg interests.Config,
	clk clock.Clock,
) services.PlannerServiceInterface {
	return services.NewPlannerService(attractionRepo, planClient, cache, cfg, clk)
}
