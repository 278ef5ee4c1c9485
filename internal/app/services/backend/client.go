// Package backend talks to the counselling REST API. Every call carries the
// caller's token, bypasses caches and is tried exactly once.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var emptyObject = []byte("{}")

type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

var _ contracts.BackendClient = (*Client)(nil)

// WithToken overrides the session token for calls made with ctx. Login uses
// it before a session exists.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_BACKEND_TOKEN_KEY, token)
}

func tokenFrom(ctx context.Context) string {
	if token, ok := ctx.Value(constvars.CONTEXT_BACKEND_TOKEN_KEY).(string); ok && token != "" {
		return token
	}
	if session, ok := models.SessionFromContext(ctx); ok {
		return session.BackendToken
	}
	return ""
}

func isAuthPath(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == constvars.ResourceAuth {
			return true
		}
	}
	return false
}

// BuildURL applies the backend's URL conventions. Login paths are sent as
// written, other paths get a trailing slash unless they carry a query.
func (c *Client) BuildURL(path string, query url.Values) string {
	if strings.Contains(path, "login") {
		return c.BaseUrl + path
	}
	if len(query) > 0 {
		return c.BaseUrl + path + "?" + query.Encode()
	}
	if strings.HasSuffix(path, "/") {
		return c.BaseUrl + path
	}
	return c.BaseUrl + path + "/"
}

func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.BuildURL(path, query)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	req.Header.Set(constvars.HeaderPragma, constvars.PragmaNoCache)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if !isAuthPath(path) {
		if token := tokenFrom(ctx); token != "" {
			req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationTokenPrefix+token)
		}
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backend.Client.Do request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("backend.Client.Do completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrBackendStatus(
			fmt.Errorf("%s", strings.TrimSpace(string(respBody))),
			resp.StatusCode,
			ErrorMessage(respBody),
			method,
			path,
		)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return emptyObject, nil
	}
	return respBody, nil
}

// ErrorMessage picks a human readable message from a backend error body:
// detail, then message, then the first field error.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	doc := gjson.ParseBytes(body)
	for _, key := range []string{"detail", "message", "error"} {
		if value := doc.Get(key); value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}

	message := ""
	doc.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.IsArray() && len(value.Array()) > 0:
			message = fmt.Sprintf("%s: %s", key.String(), value.Array()[0].String())
		case value.Type == gjson.String:
			message = fmt.Sprintf("%s: %s", key.String(), value.String())
		}
		return message == ""
	})
	return message
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = encoded
	}
	return c.Do(ctx, method, path, nil, body, constvars.MIMEApplicationJSON)
}

// parse decodes a backend document into T and maps failures to 502.
func parse[T any](raw []byte, resource string) (*T, error) {
	out, err := schemas.Parse[T](raw)
	if err != nil {
		if schemas.IsValidationError(err) {
			return nil, exceptions.ErrSchemaMismatch(err, resource)
		}
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}
	return &out, nil
}

func idPath(resource string, id int, rest ...string) string {
	parts := append([]string{"", resource, fmt.Sprint(id)}, rest...)
	return strings.Join(parts, "/")
}
