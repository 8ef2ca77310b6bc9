package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every success body carries the resource plus a numeric status echo;
// every error body carries a message, with an errors map added on
// validation failures. This mirrors the API contract the client
// library decodes.

func respond(c *gin.Context, code int, resource string, value any) {
	c.JSON(code, gin.H{resource: value, "status": code})
}

func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message, "status": code})
}

func respondValidation(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"message": "Invalid request data",
		"errors":  bindingErrors(err),
		"status":  code,
	})
}

// bindingErrors flattens gin binding failures into a field -> rule map.
func bindingErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return out
	}

	out["body"] = err.Error()
	return out
}

// parseID reads a numeric path parameter; the second return value
// reports whether it was a valid positive integer.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
