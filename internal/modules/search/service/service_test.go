package search

import (
	"testing"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledSearch(t *testing.T) {
	s := NewCourseSearchService(nil)

	assert.False(t, s.Enabled())
	assert.NoError(t, s.IndexCourse(entity.NewCourse("CS1", "Intro")))
	assert.NoError(t, s.DeleteCourse(1))

	_, err := s.SearchCourses("intro")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
	assert.Equal(t, 503, apperror.MapErrorToStatus(err))
}

func TestCleanText(t *testing.T) {
	s := NewCourseSearchService(nil).(*meiliSearchService)

	assert.Equal(t, "Intro to CS", s.cleanText("<b>Intro</b>   to\n CS"))
	assert.Equal(t, "Tom & Jerry", s.cleanText("Tom &amp; Jerry"))
}

func TestToCourseResults(t *testing.T) {
	assert.Empty(t, toCourseResults(nil))
	assert.NotNil(t, toCourseResults(nil))

	got := toCourseResults([]courseDoc{{ID: 3, Code: "CS3", Name: "Systems"}})
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}
