package utils

import (
	"io"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst. An empty body leaves dst untouched.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}
