package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"filmforge-backend/db/migrations"
	"filmforge-backend/internal/config"
	infraCache "filmforge-backend/internal/infrastructure/cache"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/internal/infrastructure/queue"
	"filmforge-backend/pkg/cache"
	"filmforge-backend/pkg/jwt"
	"filmforge-backend/pkg/lock"
	"filmforge-backend/pkg/logger"

	actorHandler "filmforge-backend/internal/domains/actor/handler"
	actorRepo "filmforge-backend/internal/domains/actor/repository"
	actorService "filmforge-backend/internal/domains/actor/service"
	directorHandler "filmforge-backend/internal/domains/director/handler"
	directorRepo "filmforge-backend/internal/domains/director/repository"
	directorService "filmforge-backend/internal/domains/director/service"
	"filmforge-backend/internal/domains/genre"
	genreHandler "filmforge-backend/internal/domains/genre/handler"
	genreRepo "filmforge-backend/internal/domains/genre/repository"
	genreService "filmforge-backend/internal/domains/genre/service"
	invitationHandler "filmforge-backend/internal/domains/invitation/handler"
	invitationRepo "filmforge-backend/internal/domains/invitation/repository"
	invitationService "filmforge-backend/internal/domains/invitation/service"
	movieHandler "filmforge-backend/internal/domains/movie/handler"
	movieRepo "filmforge-backend/internal/domains/movie/repository"
	movieService "filmforge-backend/internal/domains/movie/service"
	ratingHandler "filmforge-backend/internal/domains/rating/handler"
	ratingRepo "filmforge-backend/internal/domains/rating/repository"
	ratingService "filmforge-backend/internal/domains/rating/service"
	reviewHandler "filmforge-backend/internal/domains/review/handler"
	reviewRepo "filmforge-backend/internal/domains/review/repository"
	reviewService "filmforge-backend/internal/domains/review/service"
	"filmforge-backend/internal/domains/user"
	userHandler "filmforge-backend/internal/domains/user/handler"
	userRepo "filmforge-backend/internal/domains/user/repository"
	userService "filmforge-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph shared by the API and the
// worker. Every field is a singleton for the lifetime of the process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	Log         zerolog.Logger
	DB          *database.PostgresDB
	Redis       *infraCache.RedisClient // nil when Redis is unreachable
	Cache       cache.Cache
	Locker      lock.Locker
	TxManager   *database.TxManager
	JWTManager  *jwt.Manager
	QueueClient *asynq.Client

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo       user.Repository
	GenreRepo      genre.Repository
	DirectorRepo   directorRepo.DirectorRepository
	ActorRepo      actorRepo.ActorRepository
	MovieRepo      movieRepo.MovieRepository
	InvitationRepo invitationRepo.InvitationRepository
	RatingRepo     ratingRepo.RatingRepository
	ReviewRepo     reviewRepo.ReviewRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService       user.Service
	GenreService      genre.Service
	DirectorService   directorService.ServiceInterface
	ActorService      actorService.ServiceInterface
	MovieService      movieService.ServiceInterface
	InvitationService invitationService.ServiceInterface
	RatingService     ratingService.ServiceInterface
	ReviewService     reviewService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler       *userHandler.UserHandler
	GenreHandler      *genreHandler.GenreHandler
	DirectorHandler   *directorHandler.DirectorHandler
	ActorHandler      *actorHandler.ActorHandler
	MovieHandler      *movieHandler.MovieHandler
	InvitationHandler *invitationHandler.InvitationHandler
	RatingHandler     *ratingHandler.RatingHandler
	ReviewHandler     *reviewHandler.ReviewHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION + LOGGER
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	c.Log = logger.Init(cfg.App.Environment)
	c.Log.Info().Str("environment", cfg.App.Environment).Str("version", cfg.App.Version).Msg("initializing container")

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	if err := c.initDatabase(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 3: REDIS, CACHE, LOCK
	// ========================================
	c.initRedis()

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)
	c.TxManager = database.NewTxManager(c.DB.Pool)
	c.QueueClient = asynq.NewClient(c.RedisOpt())

	// ========================================
	// STEP 4-6: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	c.Log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig, c.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		sqlDB := stdlib.OpenDBFromPool(db.Pool)
		defer sqlDB.Close()

		applied, err := database.Migrate(ctx, sqlDB, migrations.FS, c.Log)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		c.Log.Info().Int("applied", len(applied)).Msg("database schema up to date")
	}

	return nil
}

// initRedis falls back to in-process cache and lock when Redis is down, so
// a single API replica still runs.
func (c *Container) initRedis() {
	cfg := c.Config
	rc := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		c.Log.Warn().Err(err).Msg("redis unavailable, using in-memory cache and local lock")
		_ = rc.Close()
		c.Cache = cache.NewMemory()
		c.Locker = lock.NewLocal(cfg.Lock.WaitTimeout)
		return
	}

	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client, "filmforge:")
	c.Locker = lock.NewRedis(rc.Client, cfg.Lock.TTL, cfg.Lock.WaitTimeout, c.Log)
	c.Log.Info().Str("addr", cfg.Redis.Host).Msg("redis connected")
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Cache.TTL

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.Cache, ttl, c.Log)
	c.DirectorRepo = directorRepo.NewPostgresDirectorRepository(pool, c.Cache, ttl, c.Log)
	c.ActorRepo = actorRepo.NewPostgresActorRepository(pool)
	c.MovieRepo = movieRepo.NewPostgresMovieRepository(pool)
	c.InvitationRepo = invitationRepo.NewPostgresInvitationRepository(pool)
	c.RatingRepo = ratingRepo.NewPostgresRatingRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, 0, c.Log)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.Log)
	c.DirectorService = directorService.NewDirectorService(c.DirectorRepo, c.Log)
	c.ActorService = actorService.NewActorService(c.ActorRepo, c.MovieRepo, c.Locker, c.Log)
	c.MovieService = movieService.NewMovieService(
		c.MovieRepo,
		c.ActorRepo,
		c.GenreRepo,
		c.DirectorRepo,
		c.TxManager,
		c.Locker,
		c.Log,
	)
	c.InvitationService = invitationService.NewInvitationService(
		c.InvitationRepo,
		c.MovieRepo,
		c.ActorRepo,
		c.TxManager,
		c.Locker,
		queue.NewInvitationNotifier(c.QueueClient),
		c.Log,
	)
	c.RatingService = ratingService.NewRatingService(c.RatingRepo, c.MovieRepo, c.Log)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.MovieRepo, c.Log)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.DirectorHandler = directorHandler.NewDirectorHandler(c.DirectorService)
	c.ActorHandler = actorHandler.NewActorHandler(c.ActorService)
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.InvitationHandler = invitationHandler.NewInvitationHandler(c.InvitationService)
	c.RatingHandler = ratingHandler.NewRatingHandler(c.RatingService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// RedisOpt is the asynq connection for the configured Redis.
func (c *Container) RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}
}

// HealthCheck reports the state of each backing service. Redis is only
// reported when it was reachable at startup.
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok"}

	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = err.Error()
	}

	if c.Redis == nil {
		status["redis"] = "disabled"
	} else if err := c.Redis.HealthCheck(ctx); err != nil {
		status["redis"] = err.Error()
	} else {
		status["redis"] = "ok"
	}

	return status
}

// Cleanup releases every resource NewContainer opened. Safe on a partially
// built container.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			c.Log.Warn().Err(err).Msg("failed to close queue client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	c.Log.Info().Msg("container cleaned up")
}
