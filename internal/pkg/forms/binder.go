// Package forms binds request form data into typed payload structs and
// builds the multipart bodies sent on to the backend.
package forms

import (
	"errors"
	"fmt"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
)

const (
	fieldTag  = "schema"
	acceptTag = "accept"

	// MaxSliceSize caps the length of indexed form slices such as
	// "videos.N.video", for text values and file parts alike.
	MaxSliceSize = 100
)

type Binder struct {
	maxMemory int64
	decoder   *schema.Decoder
	validate  *validator.Validate
}

func NewBinder(maxMemory int64) *Binder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag(fieldTag)
	decoder.IgnoreUnknownKeys(true)
	decoder.MaxSize(MaxSliceSize)
	decoder.RegisterConverter(File{}, func(value string) reflect.Value {
		if value == "" {
			return reflect.ValueOf(File{})
		}
		if !validUploadID(value) {
			return reflect.Value{}
		}
		return reflect.ValueOf(File{UploadID: value})
	})
	decoder.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(parsed)
	})

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{fieldTag, "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if f, ok := v.Interface().(File); ok && !f.IsZero() {
			return f.Filename()
		}
		return ""
	}, File{})

	return &Binder{maxMemory: maxMemory, decoder: decoder, validate: validate}
}

// Bind fills dst from the request body according to its content type,
// then validates it. Errors are *exceptions.CustomError values ready to be
// rendered.
func (b *Binder) Bind(r *http.Request, dst interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))

	switch mediaType {
	case constvars.MIMEMultipartForm:
		err := r.ParseMultipartForm(b.maxMemory)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return exceptions.ErrFileTooLarge(err)
			}
			return exceptions.ErrCannotParseMultipartForm(err)
		}
		err = b.decoder.Decode(dst, r.MultipartForm.Value)
		if err != nil {
			return decodeError(err)
		}
		err = bindFiles(reflect.ValueOf(dst), "", r.MultipartForm.File)
		if err != nil {
			return exceptions.ErrCannotParseMultipartForm(err)
		}
		err = checkAccept(reflect.ValueOf(dst), "")
		if err != nil {
			return err
		}
	case constvars.MIMEApplicationForm:
		err := r.ParseForm()
		if err != nil {
			return exceptions.ErrCannotParseForm(err)
		}
		err = b.decoder.Decode(dst, r.PostForm)
		if err != nil {
			return decodeError(err)
		}
		err = checkAccept(reflect.ValueOf(dst), "")
		if err != nil {
			return err
		}
	default:
		if r.Body == nil || r.Body == http.NoBody {
			break
		}
		err := json.NewDecoder(r.Body).Decode(dst)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
	}

	return b.Validate(dst)
}

// BindQuery decodes URL query values into dst and validates it.
func (b *Binder) BindQuery(r *http.Request, dst interface{}) error {
	err := b.decoder.Decode(dst, r.URL.Query())
	if err != nil {
		return decodeError(err)
	}
	return b.Validate(dst)
}

func (b *Binder) Validate(dst interface{}) error {
	err := b.validate.Struct(dst)
	if err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return exceptions.ErrServerProcess(err)
		}
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// decodeError reports values that could not be converted, one per key.
func decodeError(err error) error {
	var multiErr schema.MultiError
	if errors.As(err, &multiErr) {
		fields := make(map[string]string, len(multiErr))
		for key := range multiErr {
			fields[key] = "is invalid"
		}
		return exceptions.ErrCannotParseForm(err).WithFields(fields)
	}
	return exceptions.ErrCannotParseForm(err)
}

// FieldErrors returns the per-field messages of a binding error.
func FieldErrors(err error) map[string]string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.Fields != nil {
		return customErr.Fields
	}
	return exceptions.FieldMessages(err)
}

func fieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get(fieldTag), ",", 2)[0]
	if name == "" {
		return field.Name
	}
	return name
}

// bindFiles walks the struct behind v and copies multipart file parts onto
// its File fields. Nested slices use dotted keys such as "videos.0.video".
func bindFiles(v reflect.Value, prefix string, files map[string][]*multipart.FileHeader) error {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "-" {
			continue
		}
		key := prefix + name
		fv := v.Field(i)

		switch {
		case field.Type == fileType:
			if headers := files[key]; len(headers) > 0 {
				fv.Set(reflect.ValueOf(File{Header: headers[0]}))
			}
		case field.Type.Kind() == reflect.Slice && field.Type.Elem() == fileType:
			headers := files[key]
			if len(headers) == 0 {
				continue
			}
			list := reflect.MakeSlice(field.Type, 0, len(headers))
			list = reflect.AppendSlice(list, fv)
			for _, header := range headers {
				list = reflect.Append(list, reflect.ValueOf(File{Header: header}))
			}
			fv.Set(list)
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct:
			indexes, err := fileIndexes(key+".", files)
			if err != nil {
				return err
			}
			size := fv.Len()
			for index := range indexes {
				if index+1 > size {
					size = index + 1
				}
			}
			for j := fv.Len(); j < size; j++ {
				if !indexes[j] {
					return fmt.Errorf("form key %s.%d is missing", key, j)
				}
			}
			if size > fv.Len() {
				grown := reflect.MakeSlice(field.Type, size, size)
				reflect.Copy(grown, fv)
				fv.Set(grown)
			}
			for j := 0; j < fv.Len(); j++ {
				if err := bindFiles(fv.Index(j).Addr(), fmt.Sprintf("%s.%d.", key, j), files); err != nil {
					return err
				}
			}
		case field.Type.Kind() == reflect.Struct:
			if err := bindFiles(fv.Addr(), key+".", files); err != nil {
				return err
			}
		}
	}
	return nil
}

// fileIndexes collects the slice indexes used by file keys under prefix.
// Indexes at or above MaxSliceSize are rejected.
func fileIndexes(prefix string, files map[string][]*multipart.FileHeader) (map[int]bool, error) {
	indexes := map[int]bool{}
	for key := range files {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)
		indexPart := strings.SplitN(rest, ".", 2)[0]
		index, err := strconv.Atoi(indexPart)
		if err != nil || index < 0 {
			continue
		}
		if index >= MaxSliceSize {
			return nil, fmt.Errorf("form key %s index %d exceeds the limit of %d", key, index, MaxSliceSize)
		}
		indexes[index] = true
	}
	return indexes, nil
}

// validUploadID accepts only the canonical form of the ids handed out by
// the uploads endpoint.
func validUploadID(value string) bool {
	parsed, err := uuid.Parse(value)
	return err == nil && parsed.String() == value
}

// checkAccept sniffs every uploaded part bound to a field with an accept
// tag. Staged uploads keep the tag and are sniffed when they are opened.
func checkAccept(v reflect.Value, prefix string) error {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := prefix + fieldName(field)
		fv := v.Field(i)
		accept := field.Tag.Get(acceptTag)

		switch {
		case field.Type == fileType:
			if err := checkFile(fv, key, accept); err != nil {
				return err
			}
		case field.Type.Kind() == reflect.Slice && field.Type.Elem() == fileType:
			for j := 0; j < fv.Len(); j++ {
				if err := checkFile(fv.Index(j), key, accept); err != nil {
					return err
				}
			}
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct:
			for j := 0; j < fv.Len(); j++ {
				if err := checkAccept(fv.Index(j), fmt.Sprintf("%s.%d.", key, j)); err != nil {
					return err
				}
			}
		case field.Type.Kind() == reflect.Struct:
			if err := checkAccept(fv, key+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFile(fv reflect.Value, key, accept string) error {
	f := fv.Interface().(File)
	if accept == "" || f.IsZero() {
		return nil
	}
	if f.Staged() {
		f.Accept = accept
		fv.Set(reflect.ValueOf(f))
		return nil
	}
	file, err := f.Header.Open()
	if err != nil {
		return exceptions.ErrFileOpen(err)
	}
	defer file.Close()

	contentType, err := DetectContentType(file)
	if err != nil {
		return exceptions.ErrFileOpen(err)
	}
	if err := CheckContentType(contentType, accept); err != nil {
		return exceptions.ErrFileType(err, contentType, AcceptedTypes[accept]).
			WithFields(map[string]string{key: constvars.ErrClientInvalidFileType})
	}
	return nil
}
