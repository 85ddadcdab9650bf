package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestQueryIntDefaults(t *testing.T) {
	assert.Equal(t, 1, queryInt(queryContext(t, ""), "page", 1))
	assert.Equal(t, 3, queryInt(queryContext(t, "page=3"), "page", 1))
	assert.Equal(t, 1, queryInt(queryContext(t, "page=abc"), "page", 1))
	assert.Equal(t, 1, queryInt(queryContext(t, "page=0"), "page", 1))
	assert.Equal(t, 1, queryInt(queryContext(t, "page=-2"), "page", 1))
}

func TestQueryBoolTriState(t *testing.T) {
	assert.Nil(t, queryBool(queryContext(t, ""), "featured"))
	assert.Nil(t, queryBool(queryContext(t, "featured=maybe"), "featured"))

	v := queryBool(queryContext(t, "featured=true"), "featured")
	require.NotNil(t, v)
	assert.True(t, *v)

	v = queryBool(queryContext(t, "featured=false"), "featured")
	require.NotNil(t, v)
	assert.False(t, *v)
}

func TestActiveFilterDefaultsToTrue(t *testing.T) {
	v := activeFilter(queryContext(t, ""))
	require.NotNil(t, v)
	assert.True(t, *v)

	v = activeFilter(queryContext(t, "isActive=false"))
	require.NotNil(t, v)
	assert.False(t, *v)

	// "all" disables the filter for admin listings.
	assert.Nil(t, activeFilter(queryContext(t, "isActive=all")))
}
