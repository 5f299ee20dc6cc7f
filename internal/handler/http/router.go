package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/handler/http/middleware"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler    *UserHandler
	lessonHandler  *LessonHandler
	reportHandler  *ReportHandler
	summaryHandler *SummaryHandler
	billingHandler *BillingHandler
	rateLimit      float64
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	lessonUsecase usecasecontract.ILessonUseCase,
	reportUsecase usecasecontract.IReportUseCase,
	summaryUsecase usecasecontract.ISummaryUseCase,
	billingUsecase usecasecontract.IBillingUseCase,
	logger usecasecontract.IAppLogger,
	rateLimit float64,
) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase, logger),
		lessonHandler:  NewLessonHandler(lessonUsecase, logger),
		reportHandler:  NewReportHandler(reportUsecase, logger),
		summaryHandler: NewSummaryHandler(summaryUsecase, logger),
		billingHandler: NewBillingHandler(billingUsecase, logger),
		rateLimit:      rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("", r.userHandler.Register)
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:email", r.userHandler.GetUser)
		users.GET("/:email/role", r.userHandler.GetRole)
		users.PATCH("/:email", r.userHandler.UpdateProfile)
		users.PATCH("/id/:id/role", r.userHandler.SetRole)
		users.PATCH("/id/:id/premium", r.userHandler.SetPremium)
	}

	lessons := v1.Group("/lessons")
	{
		lessons.POST("", r.lessonHandler.CreateLesson)
		lessons.GET("", r.lessonHandler.ListPublicLessons)
		lessons.GET("/mine", r.lessonHandler.ListMyLessons)
		lessons.GET("/:id", r.lessonHandler.GetLesson)
		lessons.PUT("/:id", r.lessonHandler.UpdateLesson)
		lessons.DELETE("/:id", r.lessonHandler.DeleteLesson)
		lessons.POST("/:id/like", r.lessonHandler.ToggleLike)
		lessons.POST("/:id/favorite", r.lessonHandler.ToggleFavorite)
		lessons.POST("/:id/comments", r.lessonHandler.AddComment)
		lessons.GET("/:id/related", r.lessonHandler.ListRelated)
		lessons.PATCH("/:id/featured", r.lessonHandler.SetFeatured)
		lessons.PATCH("/:id/reviewed", r.lessonHandler.SetReviewed)
	}

	reports := v1.Group("/reports")
	{
		reports.POST("", r.reportHandler.FileReport)
		reports.GET("", r.reportHandler.ListReportedLessons)
		reports.DELETE("/lesson/:lessonId", r.reportHandler.ClearReports)
	}

	summary := v1.Group("/summary")
	{
		summary.GET("/users/:email", r.summaryHandler.UserSummary)
		summary.GET("/users/:email/analytics", r.summaryHandler.UserAnalytics)
		summary.GET("/admin", r.summaryHandler.AdminSummary)
	}

	payments := v1.Group("/payments")
	{
		payments.POST("/checkout", r.billingHandler.CreateCheckout)
		payments.POST("/confirm", r.billingHandler.ConfirmCheckout)
	}
}
