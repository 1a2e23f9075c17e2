package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/pkg/apperr"
)

// MySQL server error numbers recognized by the translator.
const (
	mysqlErrForeignKey   = 1452 // cannot add or update a child row
	mysqlErrInvalidValue = 1366 // incorrect value for column type
)

// MsgRouteNotFound is the catch-all body for unmatched routes, worded
// distinctly from entity-level "not found".
const MsgRouteNotFound = "404: url not found"

const msgServerError = "internal server error"

// OK writes a 200 with the given envelope.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the given envelope.
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Err writes an error body of the form {"msg": ...}.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// BadRequest writes the canonical 400 body.
func BadRequest(c *gin.Context) {
	Err(c, http.StatusBadRequest, apperr.MsgBadRequest)
}

// FromError is the single point translating failures to HTTP responses.
// Stage 1 recognizes store-level errors: a missing row maps to 404 and
// MySQL driver errors for foreign-key violations and type mismatches
// map to 404 and 400. Stage 2 emits typed apperr failures verbatim.
// Anything else becomes a 500 with a defined body.
func FromError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Err(c, http.StatusNotFound, apperr.MsgNotFound)
		return
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrForeignKey:
			Err(c, http.StatusNotFound, apperr.MsgNotFound)
			return
		case mysqlErrInvalidValue:
			Err(c, http.StatusBadRequest, apperr.MsgBadRequest)
			return
		}
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		Err(c, appErr.Status(), appErr.Msg)
		return
	}

	Err(c, http.StatusInternalServerError, msgServerError)
}
