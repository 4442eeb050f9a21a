package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge-inc/foodbridge-api/logmodule"
	"github.com/foodbridge-inc/foodbridge-api/notify"
	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore

	// Realtime fan-out
	hub         *realtime.Hub
	broadcaster realtime.Broadcaster

	// Notification side effects
	notifier notify.Notifier
}

// NewServer new instance of server
func NewServer(mongoClient *mongo.Client, hub *realtime.Hub) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:       mongoStore,
		hub:         hub,
		broadcaster: hub,
		notifier:    notify.NewCenter(mongoStore, hub),
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
		accountRoute.GET("/me", s.accountMe)
	}

	listingRoute := apiRoute.Group("/listings")
	{
		listingRoute.GET("", s.listListings)
		listingRoute.GET("/nearby", s.nearbyListings)
		listingRoute.POST("", s.createListing)
		listingRoute.GET("/:listingID", s.getListing)
		listingRoute.PATCH("/:listingID", s.updateListing)
		listingRoute.DELETE("/:listingID", s.deleteListing)

		listingRoute.POST("/:listingID/reserve", s.reserveListing)
		listingRoute.POST("/:listingID/claim", s.claimListing)
		listingRoute.POST("/:listingID/unclaim", s.unclaimListing)

		listingRoute.GET("/:listingID/claims", s.listListingClaims)

		listingRoute.GET("/:listingID/messages", s.listMessages)
		listingRoute.POST("/:listingID/messages", s.sendMessage)
		listingRoute.POST("/:listingID/messages/read", s.markMessagesRead)
	}

	apiRoute.GET("/claims", s.myClaims)
	apiRoute.GET("/donations", s.myDonations)

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.PATCH("/:notificationID/read", s.markNotificationRead)
		notificationRoute.POST("/read-all", s.markAllNotificationsRead)
	}

	apiRoute.GET("/stats", s.listingStats)

	r.GET("/ws", s.serveWS)
	r.GET("/healthz", s.healthz)

	r.NoRoute(s.routeManifest)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "FoodBridge 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

// routeManifest answers unmatched routes with a structured not-found
// carrying the list of valid routes, as a discoverability aid.
func (s *Server) routeManifest(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "route not found",
		"routes": []string{
			"GET    /healthz",
			"GET    /ws",
			"GET    /api/information",
			"POST   /api/accounts",
			"GET    /api/accounts/me",
			"GET    /api/listings",
			"GET    /api/listings/nearby",
			"POST   /api/listings",
			"GET    /api/listings/:listingID",
			"PATCH  /api/listings/:listingID",
			"DELETE /api/listings/:listingID",
			"POST   /api/listings/:listingID/reserve",
			"POST   /api/listings/:listingID/claim",
			"POST   /api/listings/:listingID/unclaim",
			"GET    /api/listings/:listingID/claims",
			"GET    /api/listings/:listingID/messages",
			"POST   /api/listings/:listingID/messages",
			"POST   /api/listings/:listingID/messages/read",
			"GET    /api/claims",
			"GET    /api/donations",
			"GET    /api/notifications",
			"PATCH  /api/notifications/:notificationID/read",
			"POST   /api/notifications/read-all",
			"GET    /api/stats",
		},
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

	// verbose detail stays server-side in release mode
	if gin.Mode() != gin.ReleaseMode && len(errors) > 0 {
		c.JSON(code, gin.H{
			"code":    obj.Code,
			"message": obj.Message,
			"detail":  errors[0].Error(),
		})
		c.Abort()
		return
	}

	responseWithEncoding(c, code, obj)
	c.Abort()
}
