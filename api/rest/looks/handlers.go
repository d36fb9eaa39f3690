package looks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glamai/server/glamai/looks"
	"github.com/glamai/server/internal/auth"
	apierrors "github.com/glamai/server/internal/errors"
)

const defaultPageSize = 20

// SaveLookHandler saves a transformation result for the authenticated user
func SaveLookHandler(repo *looks.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req looks.CreateLookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		look, err := repo.Create(c.Request.Context(), userID, req)
		if err != nil {
			if errors.Is(err, looks.ErrDuplicateLook) {
				apierrors.Conflict(c, "this look is already saved")
				return
			}

			apierrors.InternalError(c, "failed to save look", err)
			return
		}

		c.JSON(http.StatusCreated, look)
	}
}

// ListLooksHandler lists the authenticated user's saved looks
func ListLooksHandler(repo *looks.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		limit, offset := pageParams(c)

		list, total, err := repo.List(c.Request.Context(), userID, limit, offset)
		if err != nil {
			apierrors.InternalError(c, "failed to list looks", err)
			return
		}

		if list == nil {
			list = []looks.Look{}
		}

		c.JSON(http.StatusOK, gin.H{"looks": list, "total": total})
	}
}

// GetLookHandler fetches one saved look by ID
func GetLookHandler(repo *looks.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		look, err := repo.Get(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, looks.ErrLookNotFound) {
				apierrors.NotFound(c, "look")
				return
			}

			apierrors.InternalError(c, "failed to load look", err)
			return
		}

		c.JSON(http.StatusOK, look)
	}
}

// DeleteLookHandler removes a saved look
func DeleteLookHandler(repo *looks.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if err := repo.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
			if errors.Is(err, looks.ErrLookNotFound) {
				apierrors.NotFound(c, "look")
				return
			}

			apierrors.InternalError(c, "failed to delete look", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "look deleted"})
	}
}

// reads limit/offset query parameters, falling back to the defaults on
// anything that is not a clean integer in range
func pageParams(c *gin.Context) (limit, offset int) {
	limit = defaultPageSize
	if l, ok := c.GetQuery("limit"); ok {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	if o, ok := c.GetQuery("offset"); ok {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
