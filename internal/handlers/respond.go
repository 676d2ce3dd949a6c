package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/middleware"
)

// respondError writes {"error": msg} with the status for err's kind. Server
// side failures are logged with their stack.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := apperrors.As(err)
	status := apperrors.HTTPStatus(appErr.Kind)

	if status >= 500 {
		logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(appErr.Err),
			zap.ByteString("stack", appErr.StackTrace()),
		)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": appErr.Message})
}

// decodeRequired reads the JSON object body, reports the first key of
// required that is absent, and then decodes the body into dst.
// Presence is all that is checked; a null value counts as present.
func decodeRequired(c *gin.Context, required []string, dst any) (missing string, err error) {
	body, err := c.GetRawData()
	if err != nil {
		return "", err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", err
	}
	if fields == nil {
		return "", errors.New("request body must be a JSON object")
	}

	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return key, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return "", nil
}
