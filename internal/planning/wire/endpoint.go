package wire

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint appends path to baseURL and sets the userKey query parameter the
// remote API authenticates with.
func Endpoint(baseURL, path, apiKey string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.Path += path
	q := u.Query()
	q.Set("userKey", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
