package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/extract"
	"ats-backend/internal/feedback"
	"ats-backend/internal/resumes"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/storage/object/local"
	"ats-backend/internal/shared/storage/object/s3"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/stats"
)

const uploadRateLimitGroup = "UPLOAD"

// NewRouter wires storage, repositories, services and handlers into a gin
// engine. When no database is configured the repositories fall back to
// in-memory implementations.
func NewRouter(ctx context.Context, cfg config.Config) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.DefaultGroup: {Rate: 10, Burst: 30},
				uploadRateLimitGroup:    {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/resumes" {
					return uploadRateLimitGroup
				}
				return middleware.DefaultGroup
			},
		}),
	)

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resumeRepo, feedbackRepo := newRepos(ctx, cfg)

	analyzerSvc := analyzer.NewService(extract.PDFExtractor{})
	resumeSvc := resumes.NewService(store, resumeRepo, analyzerSvc)
	feedbackSvc := feedback.NewService(feedbackRepo)

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)

	api := router.Group("/api/v1")
	api.GET("/health", health)
	resumes.NewHandler(resumeSvc).RegisterRoutes(api)
	feedback.NewHandler(feedbackSvc).RegisterRoutes(api)
	stats.NewHandler(resumeRepo).RegisterRoutes(api)

	return router, nil
}

func newObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	}
	return local.New(cfg.LocalStoreDir), nil
}

func newRepos(ctx context.Context, cfg config.Config) (resumes.Repo, feedback.Repo) {
	database := connectDatabase(ctx, cfg)
	if database == nil {
		telemetry.Warn("storage.memory_fallback", map[string]any{
			"reason": "no usable DATABASE_URL, state will not survive restarts",
		})
		return resumes.NewMemoryRepo(), feedback.NewMemoryRepo()
	}
	return resumes.NewPostgresRepo(database), feedback.NewPostgresRepo(database)
}

func connectDatabase(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Error("storage.connect_failed", map[string]any{"error": err.Error()})
		return nil
	}

	if err := db.RunMigrations(ctx, database); err != nil {
		telemetry.Error("storage.migrate_failed", map[string]any{"error": err.Error()})
		database.Close()
		return nil
	}

	return database
}

// Addr formats a listen address for the configured port.
func Addr(port string) string {
	return ":" + port
}
