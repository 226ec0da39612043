package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"loft442-server/api"
	"loft442-server/api/resend"
	"loft442-server/api/sanity"
	"loft442-server/config"
	"loft442-server/db"
	"loft442-server/ratelimit"
	"loft442-server/server"
	"loft442-server/server/handlers"
	"loft442-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config             config.Config
	RedisClient        db.RedisClient
	RateLimitStore     ratelimit.Store
	SanityAPI          sanity.SanityAPI
	ResendAPI          resend.ResendAPI
	BookedDatesService *service.BookedDatesService
	SendRequestService *service.SendRequestService
	BookedDatesHandler *handlers.BookedDatesHandler
	SendRequestHandler *handlers.SendRequestHandler
	ScheduleHandler    *handlers.ScheduleHandler
	ReportsHandler     *handlers.ReportsHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	LoftHttpServer     *server.LoftHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	cfg := config.Load()
	cfg.Env = env
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	// Rate limit store: Redis-backed when an address is configured so the
	// window holds across replicas, in-process otherwise.
	var redisClient db.RedisClient
	var rateLimitStore ratelimit.Store
	if cfg.RedisAddr != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr: cfg.RedisAddr,
		})
		redisClient = db.NewCounterRedisClient(context.Background(), redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		rateLimitStore = ratelimit.NewRedisFixedWindowStore(redisClient, ratelimit.Window, ratelimit.MaxRequests)
		log.Printf("Using redis rate limit store at %s", cfg.RedisAddr)
	} else {
		rateLimitStore = ratelimit.NewFixedWindowStore(ratelimit.Window, ratelimit.MaxRequests)
	}

	// Initialize SanityAPI - mocks outside prod
	var sanityApi sanity.SanityAPI
	sanityConfigured := cfg.SanityConfigured()
	if env != "prod" {
		sanityApi = sanity.NewSanityApiClientMock()
		sanityConfigured = true // the fixture-backed mock needs no project
		log.Printf("Using mock sanity api")
	} else {
		log.Printf("Using prod sanity api")
		httpClient := api.NewHTTPClient(config.SanityQueryBaseURL(cfg.SanityProjectID, cfg.SanityDataset))
		sanityApi = sanity.NewSanityApiClient(httpClient)
	}

	// Initialize ResendAPI - mocks outside prod
	var resendApi resend.ResendAPI
	emailConfigured := cfg.EmailConfigured()
	if env != "prod" {
		resendApi = resend.NewResendApiClientMock()
		emailConfigured = true // the recording mock needs no credential
		log.Printf("Using mock resend api")
	} else {
		log.Printf("Using prod resend api")
		resendApi = resend.NewResendApiClient(api.NewHTTPClient(config.RESEND_ENDPOINT_BASE))
		resendApi.SetAPIKey(cfg.ResendAPIKey)
	}

	// Initialize service layer
	bookedDatesService := service.NewBookedDatesService(sanityApi, sanityConfigured)
	sendRequestService := service.NewSendRequestService(resendApi, cfg.SMTPFrom, cfg.LeadsToEmail, emailConfigured)

	// Initialize handlers
	bookedDatesHandler := handlers.NewBookedDatesHandler(bookedDatesService)
	sendRequestHandler := handlers.NewSendRequestHandler(sendRequestService, rateLimitStore)
	scheduleHandler := handlers.NewScheduleHandler()
	reportsHandler := handlers.NewReportsHandler(bookedDatesService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(bookedDatesHandler, sendRequestHandler, scheduleHandler, reportsHandler, muxRouter)

	// Initialize loft http server
	loftHttpServer := server.NewLoftHttpServer(router, muxRouter, cfg.HTTPAddr)

	return &Container{
		Config:             cfg,
		RedisClient:        redisClient,
		RateLimitStore:     rateLimitStore,
		SanityAPI:          sanityApi,
		ResendAPI:          resendApi,
		BookedDatesService: bookedDatesService,
		SendRequestService: sendRequestService,
		BookedDatesHandler: bookedDatesHandler,
		SendRequestHandler: sendRequestHandler,
		ScheduleHandler:    scheduleHandler,
		ReportsHandler:     reportsHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		LoftHttpServer:     loftHttpServer,
	}
}
