package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

var kindStatus = map[services.ErrorKind]int{
	services.KindNotFound:          http.StatusNotFound,
	services.KindForbidden:         http.StatusForbidden,
	services.KindInvalidTransition: http.StatusUnprocessableEntity,
	services.KindValidation:        http.StatusBadRequest,
	services.KindInternal:          http.StatusInternalServerError,
}

// respondError maps a service error kind to an HTTP status and writes the
// standard error envelope.
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(kind)})
}

// paramID parses a numeric path parameter. Writes a 400 and returns false
// when the value is not a positive integer.
func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(v), true
}
