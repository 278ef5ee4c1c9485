package exceptions

import (
	"errors"
	"fmt"
	"giya-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Fields        map[string]string `json:"errors,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	Err           error             `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithFields attaches per-field messages rendered under "errors".
func (e *CustomError) WithFields(fields map[string]string) *CustomError {
	e.Fields = fields
	return e
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		Err:           err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}

// Ensure keeps err when it already is a *CustomError and wraps it with
// build otherwise.
func Ensure(err error, build func(error) *CustomError) error {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}
	return build(err)
}
