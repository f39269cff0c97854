package models

import (
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// CloudStoragePayload addresses one object in the finance bucket. Object names
// always use forward slashes, whatever the host OS.
type CloudStoragePayload struct {
	Filename string
	Path     string
}

func (c CloudStoragePayload) GetFilePath() string {
	return path.Join(c.Path, c.Filename)
}

func NewCloudStoragePayload(objectName string) CloudStoragePayload {
	objectName = path.Clean(strings.TrimPrefix(objectName, "/"))

	dir, file := path.Split(objectName)
	return CloudStoragePayload{Filename: file, Path: strings.TrimSuffix(dir, "/")}
}

// WriteStreamResult is the pending outcome of a streamed upload.
type WriteStreamResult struct {
	errCh <-chan error
	url   string
}

func NewWriteStreamResult(errCh <-chan error, url string) WriteStreamResult {
	return WriteStreamResult{errCh: errCh, url: url}
}

// Wait blocks until the upload is closed and returns the object url along with
// every write and close error.
func (r WriteStreamResult) Wait() (string, error) {
	var errs *multierror.Error
	for e := range r.errCh {
		errs = multierror.Append(errs, e)
	}

	return r.url, errs.ErrorOrNil()
}
