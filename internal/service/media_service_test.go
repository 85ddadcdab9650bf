package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/radiance-academy/abc123.jpg",
			want: "radiance-academy/abc123",
		},
		{
			name: "unversioned url",
			url:  "https://res.cloudinary.com/demo/image/upload/radiance-academy/abc123.png",
			want: "radiance-academy/abc123",
		},
		{
			name: "no folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v99/abc123.webp",
			want: "abc123",
		},
		{
			name: "not a cloudinary url",
			url:  "https://example.com/images/abc123.jpg",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPublicID(tt.url))
		})
	}
}

func TestUploadValidate(t *testing.T) {
	up := &Upload{
		File:        strings.NewReader("fake image bytes"),
		Filename:    "photo.jpg",
		Size:        16,
		ContentType: "image/jpeg",
	}
	assert.NoError(t, up.Validate(1024))

	up.ContentType = "application/pdf"
	assert.ErrorIs(t, up.Validate(1024), ErrUnsupportedFileType)

	up.ContentType = "image/png"
	up.Size = 2048
	assert.ErrorIs(t, up.Validate(1024), ErrFileTooLarge)
}
