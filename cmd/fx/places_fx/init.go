package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pahunapath/internal/mediastore"
	"pahunapath/internal/repositories"
	"pahunapath/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, provideReviewRepo, providePlaceService, provideReviewService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, media mediastore.Store) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, media)
}

func provideReviewService(reviewRepo repositories.ReviewRepository, placeRepo repositories.PlaceRepository) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, placeRepo)
}
