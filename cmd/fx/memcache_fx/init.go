package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"travelguide/pkg/clock"
	mem "travelguide/pkg/memcache"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

// provideRevokedTokens also runs the expiry sweep for the lifetime of the app.
func provideRevokedTokens(lc fx.Lifecycle, c clock.Clock) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens(c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				store.PurgeEvery(ctx, purgeInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
	return store
}
