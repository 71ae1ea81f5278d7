package router

import (
	"storefront/internal/application"
	"storefront/internal/container"
	"storefront/internal/infrastructure/postgres"
	handlers "storefront/internal/interface/http"
	"storefront/internal/router/modules"
	"storefront/pkg/helpers"
)

// InitModules builds the full dependency graph from the container
// singletons and registers every feature module. Called once during
// startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	imageRepo := postgres.NewImageRepository(pool)
	healthRepo := postgres.NewHealthCheckRepository(pool)

	// A nil *RabbitPublisher must stay a nil interface so the publish
	// step is skipped cleanly when the broker is not configured.
	var pub application.Publisher
	if rp := container.GetRabbitPub(); rp != nil {
		pub = rp
	}

	users := application.NewUserService(userRepo, helpers.BcryptHasher{}, pub, logger)
	products := application.NewProductService(productRepo, logger, container.GetES(), cfg.ESProductsIndex)
	images := application.NewImageService(imageRepo, productRepo, container.GetBlobs(), logger)
	health := application.NewHealthService(healthRepo, logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(health, logger)))
	r.Add(modules.NewUserModule(
		handlers.NewUserHandler(users, logger),
		handlers.NewVerificationHandler(users, logger),
		users,
	))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(products, logger), users))
	r.Add(modules.NewImageModule(handlers.NewImageHandler(images, logger), users))
}
