package cache_fx

import (
	"go.uber.org/fx"

	"lotrinh/internal/infra"
	"lotrinh/pkg/cache"
)

var Module = fx.Provide(
	provideReadCache)

func provideReadCache() cache.ReadCache {
	client := infra.InitRedis()
	if client == nil {
		return cache.NoopCache{}
	}
	return cache.NewRedisCache(client)
}
