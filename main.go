package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hrms-backend/docs"
	"hrms-backend/internal/attendance"
	"hrms-backend/internal/dashboard"
	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/db"
	"hrms-backend/internal/platform/logging"
	"hrms-backend/internal/platform/metrics"
	"hrms-backend/internal/platform/middleware"
	"hrms-backend/internal/platform/mongodb"
	"hrms-backend/internal/platform/web"
)

// @title        HRMS API
// @version      1.0
// @description  Employees, daily attendance and the dashboard summary.
// @BasePath     /api
func main() {
	path := flag.String("config", envOr("HRMS_CONFIG", config.DefaultPath), "path to config.yaml")
	flag.Parse()

	if err := run(*path); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	// 設定読み込み
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.LogFormat())
	slog.SetDefault(logger)
	logger.Info("starting", "mode", cfg.Mode, "driver", cfg.Database.Driver, "version", cfg.Version)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clk := clock.New(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := be.close(closeCtx); err != nil {
			logger.Warn("close store", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(logger), middleware.Recovery(logger), m.Middleware())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == config.ModeDev {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", "Location", middleware.HeaderRequestID},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/readyz", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := be.ping(pingCtx); err != nil {
			logger.WarnContext(c.Request.Context(), "readiness check failed", "error", err)
			c.String(http.StatusServiceUnavailable, "store unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// /api
	api := r.Group("/api")
	employees.RegisterRoutes(api, employees.NewService(be.employees, be.attendance,
		employees.WithLogger(logger), employees.WithMetrics(m)))
	attendance.RegisterRoutes(api, attendance.NewService(be.attendance, be.employees,
		attendance.WithClock(clk), attendance.WithLogger(logger), attendance.WithMetrics(m)))
	dashboard.RegisterRoutes(api, dashboard.NewService(be.employees, be.attendance,
		dashboard.WithClock(clk), dashboard.WithLogger(logger)))

	var static fs.FS
	if dir := cfg.Server.StaticDir; dir != "" {
		static = os.DirFS(dir)
	}
	r.NoRoute(web.SPA(static))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		var err error
		if cert := cfg.Server.Certificate; cert.Cert != "" && cert.Key != "" {
			logger.Info("listening (tls)", "addr", srv.Addr)
			err = srv.ListenAndServeTLS(cert.Cert, cert.Key)
		} else {
			logger.Info("listening", "addr", srv.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type employeeBackend interface {
	employees.Store
	dashboard.EmployeeCounter
}

type attendanceBackend interface {
	attendance.Store
	employees.AttendanceTally
	dashboard.AttendanceCounter
}

// backend is the store handle for the process. Opened once in run and
// closed on shutdown.
type backend struct {
	employees  employeeBackend
	attendance attendanceBackend
	ping       func(ctx context.Context) error
	close      func(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	ids := clock.NewULIDGen()
	timeout := cfg.Database.QueryTimeout

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	switch cfg.Database.Driver {
	case config.DriverMongo:
		st, err := mongodb.Connect(connectCtx, cfg.Database.Mongo)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := mongodb.EnsureIndexes(connectCtx, st.DB); err != nil {
				_ = st.Close(context.Background())
				return nil, err
			}
		}
		slog.Info("connected to MongoDB", "database", cfg.Database.Mongo.Database, "transactions", st.Transactions)
		return &backend{
			employees:  employees.NewMongoStore(st, ids, timeout),
			attendance: attendance.NewMongoStore(st, ids, timeout),
			ping:       st.Ping,
			close:      st.Close,
		}, nil

	default:
		conn, err := db.Connect(connectCtx, cfg.Database.MySQL)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.EnsureSchema(connectCtx, conn); err != nil {
				conn.Close()
				return nil, err
			}
		}
		slog.Info("connected to DB", "dbname", cfg.Database.MySQL.DBName)
		return &backend{
			employees:  employees.NewMySQLStore(conn, ids, timeout),
			attendance: attendance.NewMySQLStore(conn, ids, timeout),
			ping:       conn.PingContext,
			close:      func(context.Context) error { return conn.Close() },
		}, nil
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
