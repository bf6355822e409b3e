package search

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/pkg/apperror"
	"anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/logger"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const coursesIndex = "courses"

const defaultSearchLimit = 20

type CourseSearchService interface {
	IndexCourse(course *entity.Course) error
	DeleteCourse(id uint) error
	SearchCourses(query string) ([]dto.CourseSimpleResponse, error)
	Enabled() bool
}

type courseDoc struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type searchHits struct {
	Hits []courseDoc `json:"hits"`
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

// NewCourseSearchService wraps client. With a nil client every write is a
// no-op and searching reports ErrUnavailable.
func NewCourseSearchService(client meilisearch.ServiceManager) CourseSearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	if client != nil {
		s.initIndex()
	}
	return s
}

func (s *meiliSearchService) Enabled() bool {
	return s.client != nil
}

func (s *meiliSearchService) initIndex() {
	searchable := []string{"code", "name"}
	if _, err := s.client.Index(coursesIndex).UpdateSearchableAttributes(&searchable); err != nil {
		logger.Warn().Err(err).Msg("failed to update course searchable attributes")
		return
	}
	logger.Info().Str("index", coursesIndex).Msg("meilisearch index initialized")
}

func (s *meiliSearchService) cleanText(text string) string {
	sanitized := s.sanitizer.Sanitize(text)
	return strings.Join(strings.Fields(html.UnescapeString(sanitized)), " ")
}

func (s *meiliSearchService) IndexCourse(course *entity.Course) error {
	if s.client == nil {
		return nil
	}

	doc := courseDoc{
		ID:   course.ID,
		Code: s.cleanText(course.Code),
		Name: s.cleanText(course.Name),
	}

	task, err := s.client.Index(coursesIndex).AddDocuments([]courseDoc{doc}, strPtr("id"))
	if err != nil {
		return fmt.Errorf("failed to index course %d: %w", course.ID, err)
	}
	logger.Debug().Uint("course_id", course.ID).Int64("task_uid", task.TaskUID).Msg("course indexed")
	return nil
}

func (s *meiliSearchService) DeleteCourse(id uint) error {
	if s.client == nil {
		return nil
	}
	if _, err := s.client.Index(coursesIndex).DeleteDocument(strconv.FormatUint(uint64(id), 10)); err != nil {
		return fmt.Errorf("failed to remove course %d from index: %w", id, err)
	}
	return nil
}

func (s *meiliSearchService) SearchCourses(query string) ([]dto.CourseSimpleResponse, error) {
	if s.client == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "course search is not configured", apperror.ErrUnavailable)
	}

	raw, err := s.client.Index(coursesIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Limit: defaultSearchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}

	var result searchHits
	if err := json.Unmarshal(*raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search hits: %w", err)
	}

	return toCourseResults(result.Hits), nil
}

func toCourseResults(hits []courseDoc) []dto.CourseSimpleResponse {
	courses := make([]dto.CourseSimpleResponse, 0, len(hits))
	for _, hit := range hits {
		courses = append(courses, dto.CourseSimpleResponse{
			ID:   hit.ID,
			Code: hit.Code,
			Name: hit.Name,
		})
	}
	return courses
}

func strPtr(s string) *string {
	return &s
}
