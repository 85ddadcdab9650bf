package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/radianceacademy/radiance-backend/internal/model"
)

func rbacTestContext(t *testing.T, admin *model.Admin) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	if admin != nil {
		c.Set(ContextKeyAdmin, admin)
	}
	return c, w
}

func TestRequirePermissionGranted(t *testing.T) {
	admin := &model.Admin{
		Role:        model.RoleAdmin,
		Permissions: []string{model.PermissionCourses},
		IsActive:    true,
	}
	c, _ := rbacTestContext(t, admin)

	RequirePermission(model.PermissionCourses)(c)
	assert.False(t, c.IsAborted())
}

func TestRequirePermissionDenied(t *testing.T) {
	admin := &model.Admin{
		Role:        model.RoleAdmin,
		Permissions: []string{model.PermissionGallery},
		IsActive:    true,
	}
	c, w := rbacTestContext(t, admin)

	RequirePermission(model.PermissionCourses)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), model.PermissionCourses)
}

func TestRequirePermissionSuperAdminBypass(t *testing.T) {
	admin := &model.Admin{
		Role:     model.RoleSuperAdmin,
		IsActive: true,
	}
	c, _ := rbacTestContext(t, admin)

	RequirePermission(model.PermissionContacts)(c)
	assert.False(t, c.IsAborted())
}

func TestRequirePermissionWithoutAdmin(t *testing.T) {
	c, w := rbacTestContext(t, nil)

	RequirePermission(model.PermissionCourses)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
