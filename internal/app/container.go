package app

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/config"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/auth"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/database"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/migrations"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/notifications"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/repositories"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
	"github.com/Bhavuk-Devex/AVO/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *logging.Logger

	// Infrastructure
	DB       *gorm.DB
	Redis    *database.RedisClient
	Enforcer *casbin.SyncedEnforcer
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	// Repositories
	UserRepo      domain.UserRepository
	BusinessRepo  domain.BusinessRepository
	RateLimitRepo domain.RateLimitStore

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	PolicySvc       domain.PolicyService
	AuditLogger     domain.AuditLogger
	AccountSvc      domain.AccountService
	BusinessSvc     domain.BusinessService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	c.initMetrics()

	if err := c.initDatabase(ctx); err != nil {
		return nil, c.closeOnError(err)
	}
	if err := c.initRedis(ctx); err != nil {
		return nil, c.closeOnError(err)
	}
	if err := c.initEnforcer(); err != nil {
		return nil, c.closeOnError(err)
	}

	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.Metrics = metrics.New(c.Registry)
}

func (c *Container) initDatabase(ctx context.Context) error {
	db, err := database.Open(c.Config.DSN, database.PoolOptions{
		MaxOpenConns:    c.Config.MaxOpenConns,
		MaxIdleConns:    c.Config.MaxIdleConns,
		ConnMaxLifetime: c.Config.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	c.DB = db

	if !c.Config.AutoMigrate {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := migrations.Up(ctx, sqlDB); err != nil {
		return err
	}
	c.Logger.Info(ctx, "database migrations applied")
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	if !c.Config.RedisEnabled() {
		c.Logger.Warn(ctx, "redis not configured, auth rate limiting disabled")
		return nil
	}
	c.Redis = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := c.Redis.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Container) initEnforcer() error {
	var (
		e   *casbin.SyncedEnforcer
		err error
	)
	if c.Config.CasbinPersist {
		e, err = auth.NewPersistentEnforcer(c.DB)
	} else {
		e, err = auth.NewEnforcer()
	}
	if err != nil {
		return err
	}
	c.Enforcer = e
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.BusinessRepo = repositories.NewBusinessRepository(c.DB)
	if c.Redis != nil {
		c.RateLimitRepo = repositories.NewRateLimitRepository(c.Redis.Client)
	}
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SignInTTL, c.Config.ElevationTTL)

	if c.NotificationSvc == nil {
		c.NotificationSvc = c.newNotifier()
	}

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.UserRepo, c.Logger, c.Config.TwilioEnabled)
	c.PolicySvc = services.NewPolicyService(c.Enforcer, c.Metrics)
	c.AuditLogger = services.NewAuditLogger(c.Logger)

	c.AccountSvc = services.NewAccountService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc, c.AuditLogger, c.Metrics, c.Logger)
	c.BusinessSvc = services.NewBusinessService(c.UserRepo, c.BusinessRepo, c.PasswordSvc, c.TokenSvc, c.PolicySvc, c.AuditLogger, c.Logger)
}

func (c *Container) newNotifier() domain.NotificationService {
	mailer := notifications.NewSMTPMailer(notifications.SMTPConfig{
		Host:     c.Config.SMTPHost,
		Port:     c.Config.SMTPPort,
		Username: c.Config.SMTPUsername,
		Password: c.Config.SMTPPassword,
		From:     c.Config.SMTPFrom,
	}, c.Logger)
	var sms *notifications.TwilioSender
	if c.Config.TwilioEnabled {
		sms = notifications.NewTwilioSender(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom, c.Logger)
	}
	return notifications.NewService(mailer, sms)
}

func (c *Container) closeOnError(err error) error {
	return multierr.Append(err, c.Close())
}

// Close closes all connections
func (c *Container) Close() error {
	var err error
	if c.Redis != nil {
		err = multierr.Append(err, c.Redis.Close())
	}
	if c.DB != nil {
		sqlDB, dbErr := c.DB.DB()
		if dbErr != nil {
			err = multierr.Append(err, dbErr)
		} else {
			err = multierr.Append(err, sqlDB.Close())
		}
	}
	return err
}
