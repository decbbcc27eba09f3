package destinations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotrinh/internal/repositories"
)

var Module = fx.Provide(
	provideDestinationRepo)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}
