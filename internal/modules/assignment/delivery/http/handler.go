package handler

import (
	"errors"
	"io"
	"net/http"

	"anoa.com/coursecms/internal/modules/assignment/dto"
	assignment "anoa.com/coursecms/internal/modules/assignment/service"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/response"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	service assignment.AssignmentService
}

func NewAssignmentHandler(service assignment.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var uri commonDto.GetByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ResponseError(c, apperror.NotFound("Course not found!"))
		return
	}

	// An empty body falls through so the service reports the course or the
	// missing fields. Any other decode failure is still judged after the
	// course lookup.
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		if err := h.service.CheckCourse(c.Request.Context(), uri.ID); err != nil {
			response.ResponseError(c, err)
			return
		}
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "invalid request body", apperror.ErrBadRequest))
		return
	}

	created, err := h.service.CreateAssignment(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusCreated, created)
}
