package impl

import (
	"log/slog"
	"os"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/images"
	"storefront/internal/infra/persistence/jsonfile"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
)

// testEnv wires the services against a real JSON store in a temp
// directory, so the tests exercise the same stack the binary runs.
type testEnv struct {
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	UserRepo     repository.UserRepository

	Catalog  usecase.CatalogUsecase
	Cart     usecase.CartUsecase
	Order    usecase.OrderUsecase
	Wishlist usecase.WishlistUsecase
	User     usecase.UserUsecase
	Admin    usecase.AdminUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.UploadsDir = t.TempDir()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	store, err := jsonfile.Open(cfg, logger)
	require.NoError(t, err)

	imageStore, err := images.NewFSStore(cfg)
	require.NoError(t, err)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	env := &testEnv{
		ProductRepo:  jsonfile.NewProductRepository(store),
		OrderRepo:    jsonfile.NewOrderRepository(store),
		CartRepo:     jsonfile.NewCartRepository(store),
		WishlistRepo: jsonfile.NewWishlistRepository(store),
		UserRepo:     jsonfile.NewUserRepository(store),
	}

	env.Catalog = NewCatalogService(CatalogServiceParams{ProductRepo: env.ProductRepo})
	env.Cart = NewCartService(CartServiceParams{
		CartRepo: env.CartRepo, ProductRepo: env.ProductRepo, Logger: logger,
	})
	env.Order = NewOrderService(OrderServiceParams{
		OrderRepo: env.OrderRepo,
		CartRepo:  env.CartRepo,
		QRService: qrcode.NewQRCodeService(cfg),
		Logger:    logger,
	})
	env.Wishlist = NewWishlistService(WishlistServiceParams{
		WishlistRepo: env.WishlistRepo, ProductRepo: env.ProductRepo,
	})
	env.User = NewUserService(UserServiceParams{
		UserRepo:     env.UserRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	env.Admin = NewAdminService(AdminServiceParams{
		ProductRepo: env.ProductRepo,
		OrderRepo:   env.OrderRepo,
		UserRepo:    env.UserRepo,
		ImageStore:  imageStore,
		Logger:      logger,
	})

	return env
}
