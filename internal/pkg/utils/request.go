package utils

import (
	"errors"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseIDParam validates a numeric backend id taken from the URL path.
func ParseIDParam(param string) (int, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}

	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("parameter must be positive")
	}

	return id, nil
}

// SessionToken reads the Bearer token and falls back to the session cookie.
func SessionToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
