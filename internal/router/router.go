package router

import (
	"net/http"

	_ "cat-collector/docs"
	blobmem "cat-collector/internal/adapters/objectstorage/memory"
	mem "cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/adapters/storage/sqldb"
	"cat-collector/internal/domain/access"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/domain/users"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/ports/objectstorage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil (signup/login sin token)

	// Opcional: si viene, usa SQL (postgres o sqlite). Si no, in-memory.
	DB *sqldb.DB

	// Opcional: si no viene, bucket in-memory.
	Uploader objectstorage.Uploader
	Photos   photos.Config

	AccessPolicy access.Policy // vacío => owner
	Logger       logger.Logger // nil => Nop
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		userRepo    users.Repository
		catRepo     cats.Repository
		feedingRepo feedings.Repository
		toyRepo     toys.Repository
		photoRepo   photos.Repository
	)

	if opts.DB != nil {
		userRepo = sqldb.NewUsersRepo(opts.DB)
		catRepo = sqldb.NewCatsRepo(opts.DB)
		feedingRepo = sqldb.NewFeedingsRepo(opts.DB)
		toyRepo = sqldb.NewToysRepo(opts.DB)
		photoRepo = sqldb.NewPhotosRepo(opts.DB)
	} else {
		// Repos in-memory: comparten estado para la cascada al borrar un gato
		db := mem.NewDB()
		userRepo = mem.NewUserRepo(db)
		catRepo = mem.NewCatRepo(db)
		feedingRepo = mem.NewFeedingRepo(db)
		toyRepo = mem.NewToyRepo(db)
		photoRepo = mem.NewPhotoRepo(db)
	}

	uploader := opts.Uploader
	if uploader == nil {
		uploader = blobmem.NewUploader()
	}
	photoCfg := opts.Photos
	if photoCfg.Bucket == "" {
		photoCfg.Bucket = "catcollector"
	}

	policy := opts.AccessPolicy
	if policy == "" {
		policy = access.PolicyOwner
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.TokenIssuer)
	catsSvc := cats.NewService(catRepo)
	feedingsSvc := feedings.NewService(feedingRepo)
	toysSvc := toys.NewService(toyRepo)
	photosSvc := photos.NewService(photoRepo, uploader, photoCfg, log.With(map[string]any{"component": "photos"}))

	guard := access.NewGuard(catsSvc, policy)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	cats.RegisterRoutes(r, catsSvc, guard, cats.DetailSources{
		Feedings: feedingsSvc,
		Toys:     toysSvc,
		Photos:   photosSvc,
	})
	feedings.RegisterRoutes(r, feedingsSvc, guard)
	toys.RegisterRoutes(r, toysSvc, guard)
	photos.RegisterRoutes(r, photosSvc, guard)

	return r
}
