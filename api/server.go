package api

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/external/geoinfo"
	"github.com/bitmark-inc/cityworks-api/external/objectstore"
	"github.com/bitmark-inc/cityworks-api/live"
	"github.com/bitmark-inc/cityworks-api/logmodule"
	"github.com/bitmark-inc/cityworks-api/report"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// ReportEnqueuer hands report generation over to the background worker
type ReportEnqueuer interface {
	EnqueueReport(ctx context.Context, id primitive.ObjectID) error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore
	tokenStore store.TokenStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	geoClient geoinfo.GeoInfo
	objects   objectstore.ObjectStore

	// report generation
	reports  *report.Generator
	enqueuer ReportEnqueuer

	// planning session clients
	hub *live.Hub
}

// NewServer new instance of server. geoClient, objects and enqueuer are
// optional.
func NewServer(
	mongoStore store.MongoStore,
	tokenStore store.TokenStore,
	jwtKey *rsa.PrivateKey,
	geoClient geoinfo.GeoInfo,
	objects objectstore.ObjectStore,
	enqueuer ReportEnqueuer) *Server {
	return &Server{
		mongoStore:    mongoStore,
		tokenStore:    tokenStore,
		jwtPrivateKey: jwtKey,
		geoClient:     geoClient,
		objects:       objects,
		reports:       report.NewGenerator(mongoStore, objects),
		enqueuer:      enqueuer,
		hub:           live.NewHub(viper.GetStringSlice("server.cors.origins")),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(prometheusMiddleware())

	origins := viper.GetStringSlice("server.cors.origins")
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(corsConfig))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
		authRoute.POST("/refresh", s.refresh)
		authRoute.POST("/logout", s.logout)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	apiRoute.GET("/auth/me", s.me)
	apiRoute.PATCH("/auth/me", s.updateMe)

	userRoute := apiRoute.Group("/users")
	userRoute.Use(requireRole(schema.RoleAdmin))
	{
		userRoute.GET("", s.listUsers)
		userRoute.PATCH("/:userID", s.updateUser)
	}

	issueRoute := apiRoute.Group("/issues")
	{
		issueRoute.POST("", s.createIssue)
		issueRoute.GET("", s.listIssues)
		issueRoute.GET("/nearby", s.nearbyIssues)
		issueRoute.GET("/:issueID", s.getIssue)
		issueRoute.PATCH("/:issueID", requireRole(schema.RoleAdmin, schema.RolePlanner, schema.RoleFieldWorker), s.updateIssue)
		issueRoute.DELETE("/:issueID", requireRole(schema.RoleAdmin), s.deleteIssue)
		issueRoute.POST("/:issueID/tasks", requireRole(schema.RoleAdmin, schema.RolePlanner), s.createIssueTask)
	}

	taskRoute := apiRoute.Group("/tasks")
	taskRoute.Use(requireRole(schema.RoleAdmin, schema.RolePlanner, schema.RoleFieldWorker))
	{
		taskRoute.POST("", requireRole(schema.RoleAdmin, schema.RolePlanner), s.createTask)
		taskRoute.GET("", s.listTasks)
		taskRoute.POST("/route", s.optimizeRoute)
		taskRoute.GET("/:taskID", s.getTask)
		taskRoute.PATCH("/:taskID", requireRole(schema.RoleAdmin, schema.RolePlanner), s.updateTask)
		taskRoute.DELETE("/:taskID", requireRole(schema.RoleAdmin, schema.RolePlanner), s.deleteTask)
		taskRoute.PATCH("/:taskID/status", s.updateTaskStatus)
		taskRoute.POST("/:taskID/notes", s.addTaskNote)
	}

	staff := requireRole(schema.RoleAdmin, schema.RolePlanner)

	roadRoute := apiRoute.Group("/roads")
	{
		roadRoute.GET("", s.listRoads)
		roadRoute.POST("", staff, s.createRoad)
		roadRoute.GET("/:roadID", s.getRoad)
		roadRoute.PATCH("/:roadID", staff, s.updateRoad)
		roadRoute.DELETE("/:roadID", staff, s.deleteRoad)
		roadRoute.POST("/:roadID/inspections", requireRole(schema.RoleAdmin, schema.RolePlanner, schema.RoleFieldWorker), s.inspectRoad)
		roadRoute.GET("/:roadID/issues", s.roadIssues)
	}

	intersectionRoute := apiRoute.Group("/intersections")
	{
		intersectionRoute.GET("", s.listIntersections)
		intersectionRoute.POST("", staff, s.createIntersection)
		intersectionRoute.GET("/congested", s.congestedIntersections)
		intersectionRoute.GET("/:intersectionID", s.getIntersection)
		intersectionRoute.PATCH("/:intersectionID", staff, s.updateIntersection)
		intersectionRoute.DELETE("/:intersectionID", staff, s.deleteIntersection)
		intersectionRoute.POST("/:intersectionID/analyses", staff, s.analyzeIntersection)
		intersectionRoute.GET("/:intersectionID/analyses", s.listIntersectionAnalyses)
		intersectionRoute.GET("/:intersectionID/suggested-plan", staff, s.suggestPlan)
	}

	planRoute := apiRoute.Group("/decongestion-plans")
	planRoute.Use(staff)
	{
		planRoute.POST("", s.createPlan)
		planRoute.GET("", s.listPlans)
		planRoute.GET("/:planID", s.getPlan)
		planRoute.PATCH("/:planID", s.updatePlan)
		planRoute.DELETE("/:planID", s.deletePlan)
		planRoute.PATCH("/:planID/status", s.updatePlanStatus)
	}

	sessionRoute := apiRoute.Group("/planning-sessions")
	{
		sessionRoute.POST("", staff, s.createSession)
		sessionRoute.GET("", s.listSessions)
		sessionRoute.GET("/:sessionID", s.getSession)
		sessionRoute.PATCH("/:sessionID", s.updateSession)
		sessionRoute.DELETE("/:sessionID", s.deleteSession)
		sessionRoute.POST("/:sessionID/join", s.joinSession)
		sessionRoute.POST("/:sessionID/leave", s.leaveSession)
		sessionRoute.GET("/:sessionID/live", s.sessionLive)
		sessionRoute.GET("/:sessionID/annotations", s.listAnnotations)
		sessionRoute.POST("/:sessionID/annotations", s.createAnnotation)
		sessionRoute.PATCH("/:sessionID/annotations/:annotationID", s.updateAnnotation)
		sessionRoute.DELETE("/:sessionID/annotations/:annotationID", s.deleteAnnotation)
	}

	neighborhoodRoute := apiRoute.Group("/neighborhoods")
	{
		neighborhoodRoute.POST("", staff, s.createNeighborhood)
		neighborhoodRoute.GET("", s.listNeighborhoods)
		neighborhoodRoute.GET("/:neighborhoodID", s.getNeighborhood)
		neighborhoodRoute.GET("/:neighborhoodID/stats", s.neighborhoodStats)
	}

	propertyRoute := apiRoute.Group("/properties")
	{
		propertyRoute.POST("", staff, s.createProperty)
		propertyRoute.GET("", s.listProperties)
		propertyRoute.GET("/:propertyID", s.getProperty)
		propertyRoute.PATCH("/:propertyID", staff, s.updateProperty)
		propertyRoute.DELETE("/:propertyID", staff, s.deleteProperty)
		propertyRoute.POST("/:propertyID/transactions", staff, s.createTransaction)
		propertyRoute.GET("/:propertyID/transactions", s.listTransactions)
		propertyRoute.GET("/:propertyID/valuation", s.propertyValuation)
	}

	reportRoute := apiRoute.Group("/reports")
	reportRoute.Use(staff)
	{
		reportRoute.POST("", s.createReport)
		reportRoute.GET("", s.listReports)
		reportRoute.GET("/:reportID", s.getReport)
		reportRoute.DELETE("/:reportID", s.deleteReport)
		reportRoute.GET("/:reportID/download", s.downloadReport)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", metricsHandler())
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow.
// Known store errors are answered with their own status and code.
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	for known, e := range knownErrors {
		if errors.Is(err, known) {
			abortWithEncoding(c, e.status, e.response)
			return true
		}
	}

	log.WithError(err).Error("unexpected error")
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

func responseResult(c *gin.Context, code int, result interface{}) {
	c.JSON(code, gin.H{
		"success": true,
		"result":  result,
	})
}

func responseList(c *gin.Context, result interface{}, total int64, page schema.Page) {
	page = page.Normalize()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
		"total":   total,
		"page":    page.Page,
		"limit":   page.Limit,
	})
}
