package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/response"
)

// AdminMiddleware rejects non-admin callers before any handler or mutation
// runs. The role comes from the database, never from token claims.
func AdminMiddleware(db *gorm.DB, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}

		var u models.AppUser
		if err := db.WithContext(c.Request.Context()).Where("id = ?", sess.UserID).First(&u).Error; err != nil {
			log.Errorw("admin_role_lookup_failed", "user_id", sess.UserID, "error", err.Error())
			c.AbortWithStatusJSON(http.StatusForbidden,
				response.ErrorT[any](response.APIResponseCodeForbidden, nil))
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				response.ErrorT[any](response.APIResponseCodeForbidden, nil))
			return
		}
		c.Next()
	}
}
