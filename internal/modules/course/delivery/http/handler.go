package handler

import (
	"net/http"

	"anoa.com/coursecms/internal/modules/course/dto"
	course "anoa.com/coursecms/internal/modules/course/service"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/response"
	"anoa.com/coursecms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	service course.CourseService
}

func NewCourseHandler(service course.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// courseID reads the :id path segment. Anything that is not a positive
// integer cannot name a course, so it is reported as not found.
func courseID(c *gin.Context) (uint, bool) {
	var req commonDto.GetByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.ResponseError(c, apperror.NotFound("Course not found!"))
		return 0, false
	}
	return req.ID, true
}

func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, courses)
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validator.IsValidationError(err) {
			response.ResponseError(c, apperror.MissingField("missing a field: "+validator.FormatValidationError(err)))
			return
		}
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "invalid request body", apperror.ErrBadRequest))
		return
	}

	created, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusCreated, created)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, found)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, deleted)
}

func (h *CourseHandler) AddUserToCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	// Decode errors are ignored: fields that decoded are kept and the rest
	// stay nil, so the service still reports an unknown course before it
	// looks at type or user.
	var req dto.AddUserRequest
	_ = c.ShouldBindJSON(&req)

	updated, err := h.service.AddUserToCourse(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, updated)
}

func (h *CourseHandler) SearchCourses(c *gin.Context) {
	var query dto.SearchCoursesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, err.Error(), apperror.ErrBadRequest))
		return
	}

	results, err := h.service.SearchCourses(c.Request.Context(), query.Q)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.ResponseSuccess(c, http.StatusOK, results)
}
