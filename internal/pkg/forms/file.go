package forms

import (
	"bytes"
	"context"
	"errors"
	"giya-service/internal/pkg/exceptions"
	"io"
	"mime/multipart"
	"reflect"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLength matches the number of leading bytes mimetype reads by default.
const sniffLength = 3072

// File is a file-typed form field. It carries either a part uploaded with
// the request or the id of a file staged earlier through the uploads
// endpoint. Accept holds the field's accept group for staged files.
type File struct {
	Header   *multipart.FileHeader
	UploadID string
	Accept   string
}

var fileType = reflect.TypeOf(File{})

func (f File) IsZero() bool {
	return f.Header == nil && f.UploadID == ""
}

func (f File) Staged() bool {
	return f.Header == nil && f.UploadID != ""
}

func (f File) Filename() string {
	if f.Header != nil {
		return f.Header.Filename
	}
	return f.UploadID
}

// StagedOpener reads back a staged upload by id.
type StagedOpener interface {
	OpenStaged(ctx context.Context, uploadID string) (io.ReadCloser, string, error)
}

// Open returns the content and file name of f, reading staged uploads
// through opener. Staged content is sniffed against Accept.
func (f File) Open(ctx context.Context, opener StagedOpener) (io.ReadCloser, string, error) {
	if f.Header != nil {
		file, err := f.Header.Open()
		if err != nil {
			return nil, "", err
		}
		return file, f.Header.Filename, nil
	}

	content, filename, err := opener.OpenStaged(ctx, f.UploadID)
	if err != nil || f.Accept == "" {
		return content, filename, err
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		content.Close()
		return nil, "", exceptions.ErrFileOpen(err)
	}
	head = head[:n]

	contentType := mimetype.Detect(head).String()
	if err := CheckContentType(contentType, f.Accept); err != nil {
		content.Close()
		return nil, "", exceptions.ErrFileType(err, contentType, AcceptedTypes[f.Accept])
	}
	return sniffedFile{Reader: io.MultiReader(bytes.NewReader(head), content), Closer: content}, filename, nil
}

type sniffedFile struct {
	io.Reader
	io.Closer
}
