package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/medlmo/gcpRSM/internal/api/middleware"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// MustGetUser extracts the authenticated user injected by the session
// middleware. On a misordered chain it writes 401 and returns ok=false;
// the caller should return immediately.
func MustGetUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		response.Unauthorized(c, 10002, "authentication required")
		return nil, false
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		response.Unauthorized(c, 10002, "authentication required")
		return nil, false
	}
	return user, true
}

// invalidBody answers a body that failed binding. Validation failures
// name the first violated field in the details; malformed JSON gets the
// bare message.
func invalidBody(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		v := verrs[0]
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid request body",
			fmt.Sprintf("field '%s' failed on the '%s' rule", v.Field(), v.Tag()))
		return
	}
	response.BadRequest(c, 10001, "invalid request body")
}
