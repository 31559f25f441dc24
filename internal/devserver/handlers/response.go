package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"medclinic-client/internal/utils"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationIssue is one entry of a 422 response.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationResponse is the body of a 422 response.
type ValidationResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

// Error sends a {"detail": ...} error response.
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, detail)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, detail string) {
	Error(c, http.StatusForbidden, detail)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}

// BindAndValidate binds the JSON body to obj and validates it.
// On failure it sends the error response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: []ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "Invalid request payload: " + err.Error(),
			Type: "json_invalid",
		}}})
		return false
	}
	if err := utils.Validate(obj); err != nil {
		fields := utils.FieldErrors(err)
		if fields == nil {
			BadRequest(c, "Validation failed: "+err.Error())
			return false
		}
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		issues := make([]ValidationIssue, len(names))
		for i, name := range names {
			issues[i] = ValidationIssue{
				Loc:  []string{"body", name},
				Msg:  "Field " + name + " failed rule " + fields[name],
				Type: fields[name],
			}
		}
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: issues})
		return false
	}
	return true
}
