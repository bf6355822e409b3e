package handler

import (
	"net/http"

	"anoa.com/coursecms/internal/modules/user/dto"
	user "anoa.com/coursecms/internal/modules/user/service"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/response"
	"anoa.com/coursecms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validator.IsValidationError(err) {
			response.ResponseError(c, apperror.MissingField("missing a field: "+validator.FormatValidationError(err)))
			return
		}
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "invalid request body", apperror.ErrBadRequest))
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusCreated, created)
}

// GetUser answers with simple course views; ?expand=true nests full ones.
func (h *UserHandler) GetUser(c *gin.Context) {
	var uri commonDto.GetByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ResponseError(c, apperror.NotFound("User not found!"))
		return
	}

	var query dto.GetUserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "invalid expand flag", apperror.ErrBadRequest))
		return
	}

	if query.Expand {
		found, err := h.service.GetUserExpanded(c.Request.Context(), uri.ID)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		response.ResponseSuccess(c, http.StatusOK, found)
		return
	}

	found, err := h.service.GetUser(c.Request.Context(), uri.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, found)
}
