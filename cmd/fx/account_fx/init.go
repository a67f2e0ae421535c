package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelguide/internal/config"
	"travelguide/internal/repositories"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
	mem "travelguide/pkg/memcache"
	"travelguide/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *config.Config, c clock.Clock) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, c)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked)
}
