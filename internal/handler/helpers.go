package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
)

// parseID converts the :id route param into an ObjectID, responding 400 on a
// malformed value. The resource name feeds the error message.
func parseID(c *gin.Context, resource string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid "+resource+" ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryInt parses a positive integer query param, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// queryBool parses a true/false query param into a tri-state filter. Anything
// else leaves the filter unset.
func queryBool(c *gin.Context, key string) *bool {
	switch c.Query(key) {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	}
	return nil
}

// activeFilter reads the isActive query param. Public listings default to
// active documents only; "all" disables the filter for admin views.
func activeFilter(c *gin.Context) *bool {
	switch c.DefaultQuery("isActive", "true") {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	}
	return nil
}

// formUpload extracts the uploaded file under the given multipart field, if
// any. The returned closer must run after the upload is consumed.
func formUpload(c *gin.Context, field string) (*service.Upload, func()) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}
	}
	up := &service.Upload{
		File:        f,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return up, func() { f.Close() }
}

// bindJSONField parses a structured field submitted as a JSON string inside a
// multipart form. A missing or malformed value leaves dst untouched, matching
// the lenient handling the admin panel relies on.
func bindJSONField(c *gin.Context, key string, dst interface{}) {
	raw := c.PostForm(key)
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

// writeError maps service and repository failures onto the response envelope.
func writeError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrImageRequired):
		response.Fail(c, http.StatusBadRequest, "Please upload an image")
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, "Image exceeds the maximum upload size")
	default:
		response.Fail(c, http.StatusInternalServerError, serverMsg)
	}
}
