package favourite

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/favourite-service/internal/api/v1"
	httperr "github.com/aevon-lab/favourite-service/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgInvalidKey      = "Invalid favourite key"
	msgBodyTooLarge    = "Request body exceeds maximum allowed size"
	msgFavouriteAbsent = "Favourite not found"
)

// requestError carries the HTTP error shape from a helper back to the handler.
type requestError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *requestError) Error() string {
	return e.message
}

// HandleFindAll handles GET /api/favourites
func (s *Service) HandleFindAll(c *gin.Context) {
	views, err := s.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, serviceError(c, err, "Failed to list favourites"))
		return
	}
	c.JSON(http.StatusOK, v1.CollectionResponse{Collection: views})
}

// HandleFindByID handles GET /api/favourites/:userId/:productId/:likeDate
func (s *Service) HandleFindByID(c *gin.Context) {
	key, reqErr := parseKey(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	view, err := s.FindByID(c.Request.Context(), key)
	if err != nil {
		writeError(c, serviceError(c, err, "Failed to get favourite"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleSave handles POST /api/favourites
func (s *Service) HandleSave(c *gin.Context) {
	input, reqErr := s.parseView(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	view, err := s.Save(c.Request.Context(), *input)
	if err != nil {
		writeError(c, serviceError(c, err, "Failed to save favourite"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleUpdate handles PUT /api/favourites
func (s *Service) HandleUpdate(c *gin.Context) {
	input, reqErr := s.parseView(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	view, err := s.Update(c.Request.Context(), *input)
	if err != nil {
		writeError(c, serviceError(c, err, "Failed to update favourite"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleDeleteByID handles DELETE /api/favourites/:userId/:productId/:likeDate
func (s *Service) HandleDeleteByID(c *gin.Context) {
	key, reqErr := parseKey(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	deleted, err := s.DeleteByID(c.Request.Context(), key)
	if err != nil {
		writeError(c, serviceError(c, err, "Failed to delete favourite"))
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func parseKey(c *gin.Context) (v1.FavouriteKey, *requestError) {
	key, err := v1.ParseFavouriteKey(c.Param("userId"), c.Param("productId"), c.Param("likeDate"))
	if err != nil {
		return v1.FavouriteKey{}, &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgInvalidKey,
			details:    err.Error(),
		}
	}
	return key, nil
}

// parseView reads the request body under the configured size limit and
// binds it into a FavouriteView. Any user or product detail is ignored later.
func (s *Service) parseView(c *gin.Context) (*v1.FavouriteView, *requestError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Favourite] Failed to read request body", "request_id", requestID(c), "error", err)
		return nil, &requestError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Favourite] Request body exceeds maximum size", "request_id", requestID(c), "size", len(bodyBytes), "max", maxBytes)
		return nil, &requestError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    msgBodyTooLarge,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var view v1.FavouriteView
	if err := c.ShouldBindJSON(&view); err != nil {
		slog.Warn("[Favourite] Invalid JSON body received", "request_id", requestID(c), "error", err, "payload_size", len(bodyBytes))
		return nil, &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}
	return &view, nil
}

// serviceError maps a Service error onto its HTTP shape.
func serviceError(c *gin.Context, err error, internalMsg string) *requestError {
	switch {
	case errors.Is(err, ErrNotFound):
		return &requestError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpFavouriteNotFoundError,
			message:    msgFavouriteAbsent,
			details:    err.Error(),
		}
	case errors.Is(err, ErrInvalidFavourite):
		return &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    "Invalid favourite",
			details:    err.Error(),
		}
	default:
		slog.Error("[Favourite] Request failed", "request_id", requestID(c), "error", err)
		return &requestError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    internalMsg,
		}
	}
}

// requestID returns the id set by the server middleware, or "" when it is not installed.
func requestID(c *gin.Context) string {
	return c.GetString(httperr.RequestIDKey)
}

// writeError serializes a requestError as the JSON HTTP response.
func writeError(c *gin.Context, err *requestError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
