package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bhavuk-Devex/AVO/internal/http/handlers"
	"github.com/Bhavuk-Devex/AVO/internal/http/middleware"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
)

// RateLimits configures the throttling of the public account endpoints
type RateLimits struct {
	Window     time.Duration
	IPLimit    int
	EmailLimit int
}

// RouterDeps carries everything BuildRouter wires
type RouterDeps struct {
	Logger      *logging.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
	RateLimits  RateLimits

	Auth    *middleware.AuthMW
	Limiter *middleware.RateLimiter

	Account  *handlers.AccountHandlers
	Business *handlers.BusinessHandlers
	Policy   *handlers.PolicyHandlers
	Health   *handlers.HealthHandlers
}

func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(d.Logger), middleware.Logging(d.Logger, d.Metrics))
	r.Use(cors.New(corsConfig(d.CORSOrigins)))

	r.GET("/health", d.Health.Health)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	limit := func(name string) gin.HandlerFunc {
		return d.Limiter.Limit(middleware.NewRateLimitPolicy(name, d.RateLimits.Window, d.RateLimits.IPLimit, d.RateLimits.EmailLimit))
	}

	avo := r.Group("/Avo")
	avo.POST("/SignUp", d.Account.SignUp)
	avo.POST("/resend-otp", limit("resend_otp"), d.Account.ResendOTP)
	avo.POST("/verify-otp", d.Account.VerifyOTP)
	avo.POST("/forgot-password", limit("forgot_password"), d.Account.ForgotPassword)
	avo.POST("/verify-forgot-password-otp", d.Account.VerifyForgotPasswordOTP)
	avo.POST("/reset-password", d.Account.ResetPassword)
	avo.POST("/signin", limit("signin"), d.Account.SignIn)

	authed := avo.Group("/", d.Auth.Authenticate())
	authed.POST("/register-business", d.Business.RegisterOrUpdateBusiness)
	authed.GET("/employee-list", d.Business.ListEmployees)
	authed.POST("/add-employee", d.Business.AddEmployee)
	authed.PUT("/update-employee", d.Business.UpdateEmployee)
	authed.DELETE("/delete-employees", d.Business.DeleteEmployee)

	admin := authed.Group("/", d.Auth.IsBusinessAdmin())
	admin.GET("/business", d.Business.GetBusiness)
	admin.GET("/policies", d.Policy.List)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")
	cfg.ExposeHeaders = []string{"X-Request-Id"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
