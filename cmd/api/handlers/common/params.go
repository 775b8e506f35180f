package common

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type PageParam struct {
	PageNum  int64 `query:"page"`
	PageSize int64 `query:"limit"`
}

// PathInt64 parses a numeric path parameter.
func PathInt64(c *app.RequestContext, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.RequestErr.WithMessage("Invalid " + name)
	}
	return id, nil
}

// SaveUpload spools a multipart file field to a temp path and returns it.
// A missing field is not an error; the path comes back empty.
func SaveUpload(c *app.RequestContext, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path := filepath.Join(os.TempDir(), strconv.FormatInt(utils.GenID(), 10)+filepath.Ext(header.Filename))
	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", errno.ServiceErr.WithMessage("Failed to store upload")
	}
	return path, nil
}

// ReadUpload reads a multipart file field into memory, for small images.
func ReadUpload(c *app.RequestContext, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", errno.RequestErr.WithMessage(field + " file is required")
	}
	file, err := header.Open()
	if err != nil {
		return nil, "", errno.ServiceErr.WithMessage("Failed to read upload")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errno.ServiceErr.WithMessage("Failed to read upload")
	}
	return data, header.Header.Get("Content-Type"), nil
}
