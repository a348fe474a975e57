package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/dispatch"
	"github.com/deliveryease/dispatch/util"
	"github.com/deliveryease/dispatch/worker"
)

// Server serves HTTP requests for the dispatch service.
type Server struct {
	config          util.Config
	store           db.Store
	planner         dispatch.RoutePlanner
	tracker         *dispatch.Tracker
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	config util.Config,
	store db.Store,
	planner dispatch.RoutePlanner,
	tracker *dispatch.Tracker,
	taskDistributor worker.TaskDistributor,
) (*Server, error) {
	server := &Server{
		config:          config,
		store:           store,
		planner:         planner,
		tracker:         tracker,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 健康检查端点（供 Nginx/K8s 使用）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// 订单
	v1.POST("/orders", server.createOrder)
	v1.GET("/orders/:id", server.getOrder)
	v1.POST("/orders/:id/approve", server.approveOrder)

	// 批次
	v1.GET("/batches", server.listBatches)
	v1.GET("/batches/:id", server.getBatch)
	v1.GET("/batches/:id/route", server.getBatchRoute)
	v1.GET("/batches/:id/progress", server.getBatchProgress)
	v1.POST("/batches/:id/stops/:order_id/complete", server.completeStop)

	// 司机
	v1.POST("/drivers", server.createDriver)
	v1.GET("/drivers/:id", server.getDriver)

	// 手动触发一轮调度（运营后台用，限流更严）
	dispatchGroup := v1.Group("/dispatch")
	dispatchGroup.Use(rateLimiter.SensitiveAPIMiddleware(6))
	dispatchGroup.POST("/run", server.triggerDispatch)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dispatch-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "dispatch-api",
		"database": "connected",
	})
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)
	return gin.H{"error": "internal server error"}
}
