package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	doctorRepo "medicore/database/repository/doctor"
	staffRepo "medicore/database/repository/staff"
	"medicore/models"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// ActorKey is the gin context key the authenticated actor is stored under.
const ActorKey = "actor"

// JWTAuthMiddleware authenticates doctor and staff sessions. The token's role
// claim decides which collection backs the session; the token hash is checked
// against the auth cache first and the database on a miss.
func JWTAuthMiddleware(doctors doctorRepo.DoctorRepository, staff staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || subject == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + role + ":" + tokenHash

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		}

		if cacheEnabled {
			cachedID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedID == subject {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set(ActorKey, models.Actor{ID: subject, Role: role})
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: the persisted token hash is the source of truth. A
		// revoked session clears the hash, so a stale token fails here.
		switch role {
		case models.RoleDoctor:
			doc, err := doctors.GetByTokenHash(tokenHash)
			if err != nil || doc == nil || doc.ID != subject {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
		case models.RoleAdmin, models.RoleReception:
			member, err := staff.GetByTokenHash(tokenHash)
			if err != nil || member == nil || member.ID != subject {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, subject, utils.AuthCacheTTL).Err()
		}

		c.Set(ActorKey, models.Actor{ID: subject, Role: role})
		c.Next()
	}
}

// GetActor returns the authenticated actor set by JWTAuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(ActorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}
