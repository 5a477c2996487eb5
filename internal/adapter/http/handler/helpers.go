package handler

import (
	"errors"

	"fx-wallet-ledger/internal/adapter/http/dto"
	"fx-wallet-ledger/internal/adapter/http/middleware"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// currentUser writes AUTH_001 and returns false when no identity is set.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON writes a validation error and returns false on bad input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(validationMessage(err)))
		return false
	}
	return true
}

// validationMessage names the first offending field instead of echoing
// validator internals.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "currency":
			return "Unsupported currency for " + fe.Field()
		case "money":
			return fe.Field() + " must be a positive amount with at most 2 decimal places"
		case "required":
			return fe.Field() + " is required"
		}
		return "Invalid value for " + fe.Field()
	}
	return "Malformed request body"
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(c *gin.Context) (ports.PageParams, bool) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("Invalid pagination"))
		return ports.PageParams{}, false
	}
	return ports.PageParams{Page: q.Page, PageSize: q.PerPage}.Normalize(), true
}
