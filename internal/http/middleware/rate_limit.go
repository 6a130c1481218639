package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
)

// RateLimitPolicy defines the throttling parameters for one endpoint family
type RateLimitPolicy struct {
	name       string
	window     time.Duration
	ipLimit    int
	emailLimit int
}

// NewRateLimitPolicy builds a policy with the supplied window and limits
func NewRateLimitPolicy(name string, window time.Duration, ipLimit, emailLimit int) RateLimitPolicy {
	return RateLimitPolicy{
		name:       strings.ToLower(strings.TrimSpace(name)),
		window:     window,
		ipLimit:    ipLimit,
		emailLimit: emailLimit,
	}
}

func (p RateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

func (p RateLimitPolicy) normalizedName() string {
	if p.name == "" {
		return "auth"
	}
	return p.name
}

func (p RateLimitPolicy) ipKey(ip string) string {
	return fmt.Sprintf("rl:ip:%s:%s", p.normalizedName(), ip)
}

func (p RateLimitPolicy) emailKey(hash string) string {
	return fmt.Sprintf("rl:email:%s:%s", p.normalizedName(), hash)
}

// RateLimiter throttles the public account endpoints per client IP and per email
type RateLimiter struct {
	store   domain.RateLimitStore
	writer  *responses.Writer
	logger  *logging.Logger
	metrics *metrics.Metrics
}

func NewRateLimiter(store domain.RateLimitStore, writer *responses.Writer, logger *logging.Logger, m *metrics.Metrics) *RateLimiter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &RateLimiter{store: store, writer: writer, logger: logger, metrics: m}
}

// Limit returns the middleware enforcing policy. It is a pass-through when
// the limiter has no store or the policy has no limits.
func (rl *RateLimiter) Limit(policy RateLimitPolicy) gin.HandlerFunc {
	if rl == nil || rl.store == nil || !policy.enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if policy.ipLimit > 0 {
			if ip := c.ClientIP(); ip != "" {
				if !rl.allow(c, ctx, policy, "ip", policy.ipKey(ip), policy.ipLimit) {
					return
				}
			}
		}

		if policy.emailLimit > 0 {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				rl.writer.Error(c, domain.Internal(err, "failed to read request"))
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))

			if email := normalizeEmail(extractEmail(body)); email != "" {
				if !rl.allow(c, ctx, policy, "email", policy.emailKey(hashValue(email)), policy.emailLimit) {
					return
				}
			}
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(c *gin.Context, ctx context.Context, policy RateLimitPolicy, scope, key string, limit int) bool {
	count, err := rl.store.Hit(ctx, key, policy.window)
	if err != nil {
		rl.writer.Error(c, domain.Internal(err, "rate limiting"))
		return false
	}
	if count <= int64(limit) {
		return true
	}

	rl.metrics.RateLimited(policy.normalizedName(), scope)
	rl.logger.InfoFields(ctx, "auth.rate_limit.blocked", map[string]any{
		"scope":          scope,
		"policy":         policy.normalizedName(),
		"attempts":       count,
		"limit":          limit,
		"window_seconds": int(policy.window.Seconds()),
	})
	rl.writer.Error(c, domain.ErrTooManyRequests)
	return false
}

func extractEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Email
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
