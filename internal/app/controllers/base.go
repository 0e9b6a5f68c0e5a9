package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse documents the failure envelope
type ErrorResponse struct {
	Code    int         `json:"code" example:"100002"`
	Message string      `json:"message" example:"invalid request parameters"`
	Data    interface{} `json:"data"`
}

// currentUserID returns the authenticated account id set by the JWT
// middleware
func currentUserID(ctx *gin.Context) uint {
	if v, exists := ctx.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// currentAdminID returns the tenancy scope set by the JWT middleware: an
// admin's own id, or the society owner for a resident token
func currentAdminID(ctx *gin.Context) uint {
	if v, exists := ctx.Get("adminID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// idParam parses the :id path parameter
func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
