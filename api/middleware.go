package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
)

var (
	limiterMu sync.Mutex
	limiters  = make(map[string]*rate.Limiter)
)

func getLimiter(key string) *rate.Limiter {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	limiter, ok := limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 2)
		limiters[key] = limiter
	}
	return limiter
}

// authentication checks the bearer API key against the server's bcrypt
// hash and throttles each key with its own rate limiter.
func (server *Server) authentication(c *gin.Context) {
	authorizationHeader := c.GetHeader(authorizationHeaderKey)

	if len(authorizationHeader) == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("authorization header is not provided")))
		return
	}

	fields := strings.Fields(authorizationHeader)
	if len(fields) < 2 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("invalid authorization header format")))
		return
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != authorizationTypeBearer {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(fmt.Errorf("unsupported authorization type: %s", authorizationType)))
		return
	}

	apiKey := fields[1]
	if err := bcrypt.CompareHashAndPassword([]byte(server.keyHash), []byte(apiKey)); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("please input a valid API key")))
		return
	}

	if !getLimiter(apiKey).Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"status": http.StatusTooManyRequests, "msg": "Too Many Requests"})
		return
	}

	c.Next()
}
