package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/coursecms/internal/config"
	"anoa.com/coursecms/internal/middleware"
	"anoa.com/coursecms/pkg/database"
	"anoa.com/coursecms/pkg/logger"

	activityHttp "anoa.com/coursecms/internal/modules/activity/delivery/http"
	activityService "anoa.com/coursecms/internal/modules/activity/service"

	assignmentHttp "anoa.com/coursecms/internal/modules/assignment/delivery/http"
	assignmentRepo "anoa.com/coursecms/internal/modules/assignment/repository"
	assignmentService "anoa.com/coursecms/internal/modules/assignment/service"

	courseHttp "anoa.com/coursecms/internal/modules/course/delivery/http"
	courseRepo "anoa.com/coursecms/internal/modules/course/repository"
	courseService "anoa.com/coursecms/internal/modules/course/service"

	searchService "anoa.com/coursecms/internal/modules/search/service"

	userHttp "anoa.com/coursecms/internal/modules/user/delivery/http"
	userRepo "anoa.com/coursecms/internal/modules/user/repository"
	userService "anoa.com/coursecms/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	http        *http.Server
	db          *gorm.DB
	redisClient *redis.Client
}

// NewServer wires every module onto one router. redisClient and meiliClient
// may be nil; the activity stream and course search then answer 503.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, meiliClient meilisearch.ServiceManager) *Server {
	publisher := activityService.NewPublisher(redisClient)
	activityHandler := activityHttp.NewActivityHandler(publisher)

	searchSvc := searchService.NewCourseSearchService(meiliClient)

	userRepository := userRepo.NewUserRepository(db)
	userSvc := userService.NewUserService(userRepository, publisher)
	userHandler := userHttp.NewUserHandler(userSvc)

	courseRepository := courseRepo.NewCourseRepository(db)
	courseSvc := courseService.NewCourseService(courseRepository, userRepository, publisher, searchSvc, courseService.Options{
		RouteByType: cfg.EnrollmentRouteByType,
	})
	courseHandler := courseHttp.NewCourseHandler(courseSvc)

	assignmentRepository := assignmentRepo.NewAssignmentRepository(db)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepository, courseRepository, publisher)
	assignmentHandler := assignmentHttp.NewAssignmentHandler(assignmentSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger("/healthz", "/metrics"))
	router.Use(middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("/", courseHandler.GetAllCourses)
		courses.POST("/", courseHandler.CreateCourse)
		courses.GET("/search/", courseHandler.SearchCourses)
		courses.GET("/:id/", courseHandler.GetCourse)
		courses.DELETE("/:id/", courseHandler.DeleteCourse)
		courses.POST("/:id/add/", courseHandler.AddUserToCourse)
		courses.POST("/:id/assignment/", assignmentHandler.CreateAssignment)
	}

	users := api.Group("/users")
	{
		users.POST("/", userHandler.CreateUser)
		users.GET("/:id/", userHandler.GetUser)
	}

	api.GET("/events/ws", activityHandler.Stream)

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until SIGINT or SIGTERM, then drains in-flight requests
// for at most shutdownTimeout and releases the database and Redis handles.
func (s *Server) Run(addr string, shutdownTimeout time.Duration) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
