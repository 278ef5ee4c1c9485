package forms

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
)

// MultipartBody assembles an outgoing multipart/form-data body. The first
// error sticks and is reported by Finish.
type MultipartBody struct {
	buf    *bytes.Buffer
	writer *multipart.Writer
	err    error
}

func NewMultipartBody() *MultipartBody {
	buf := &bytes.Buffer{}
	return &MultipartBody{buf: buf, writer: multipart.NewWriter(buf)}
}

func (m *MultipartBody) Field(name, value string) *MultipartBody {
	if m.err != nil {
		return m
	}
	m.err = m.writer.WriteField(name, value)
	return m
}

// OptionalField writes the field only when value is not empty.
func (m *MultipartBody) OptionalField(name, value string) *MultipartBody {
	if value == "" {
		return m
	}
	return m.Field(name, value)
}

func (m *MultipartBody) Reader(name, filename string, r io.Reader) *MultipartBody {
	if m.err != nil {
		return m
	}
	part, err := m.writer.CreateFormFile(name, filename)
	if err != nil {
		m.err = err
		return m
	}
	_, m.err = io.Copy(part, r)
	return m
}

// Attach copies the content of f into the body. Empty files are skipped.
func (m *MultipartBody) Attach(ctx context.Context, name string, f File, opener StagedOpener) *MultipartBody {
	if m.err != nil || f.IsZero() {
		return m
	}
	content, filename, err := f.Open(ctx, opener)
	if err != nil {
		m.err = err
		return m
	}
	defer content.Close()
	return m.Reader(name, filename, content)
}

// Finish closes the body and returns it with its content type.
func (m *MultipartBody) Finish() ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	if err := m.writer.Close(); err != nil {
		return nil, "", err
	}
	return m.buf.Bytes(), m.writer.FormDataContentType(), nil
}
