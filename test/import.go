package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MultipartFile wraps content as a multipart form file upload.
//
// The body is returned as a buffer and a map for the HTTP request headers.
func MultipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	_, err = w.Write(content)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
