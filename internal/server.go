package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/accounts"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness/body"
	"github.com/2beens/fittrack/internal/fitness/charts"
	"github.com/2beens/fittrack/internal/fitness/exercises"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient    *redis.Client
	sessionChecker *auth.SessionChecker
	authService    *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		authService:    authService,
		sessionChecker: auth.NewSessionChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, fmt.Sprintf("fittrack backend, version: %s", s.versionInfo))
	}).Methods("GET").Name("root")

	accountsRepo := accounts.NewRepo(s.dbPool)
	accountsHandler := accounts.NewHandler(accountsRepo, s.authService)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	accountsHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	exercisesRepo := exercises.NewRepo(s.dbPool)
	exercisesHandler := exercises.NewHandler(exercisesRepo)
	exercisesHandler.SetupRoutes(r.PathPrefix("/exercises").Subrouter())

	bodyRepo := body.NewRepo(s.dbPool)
	bodyHandler := body.NewHandler(bodyRepo, body.NewNormalizer(bodyRepo), s.metricsManager)
	bodyHandler.SetupRoutes(r.PathPrefix("/body").Subrouter())

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, exercisesRepo, s.metricsManager)
	workoutsHandler.SetupRoutes(r.PathPrefix("/workouts").Subrouter())

	analyzer := charts.NewAnalyzer(bodyRepo, workoutsRepo, exercisesRepo)
	chartsHandler := charts.NewHandler(analyzer)
	chartsHandler.SetupRoutes(r.PathPrefix("/charts").Subrouter())
	// the landing page table: last logged set per exercise
	r.HandleFunc("/overview", chartsHandler.HandleLatestWeights).Methods("GET").Name("overview")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessionChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
	}
	log.Warnln("metrics server shut down")

	if shutdownErr != nil {
		log.Errorf("graceful shutdown: %s", shutdownErr)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
