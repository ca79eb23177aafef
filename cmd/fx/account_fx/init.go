package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pahunapath/internal/repositories"
	"pahunapath/internal/services"
	"pahunapath/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, sessions services.SessionStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, sessions)
}
