package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pahunapath/internal/config"
	"pahunapath/internal/repositories"
	"pahunapath/internal/services"
	mem "pahunapath/pkg/memcache"
)

var Module = fx.Provide(
	provideAdminActionService, provideDashboardRepo, provideDashboardService)

func provideAdminActionService(
	accounts services.AccountServiceInterface,
	places services.PlaceServiceInterface,
	pending mem.PendingActionStore,
	cfg config.Config) services.AdminActionService {
	return services.NewAdminActionService(accounts, places, pending, cfg.PendingTTL())
}

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(dashboardRepo)
}
