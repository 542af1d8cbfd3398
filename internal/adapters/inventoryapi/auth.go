package inventoryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
)

// ErrNoToken is returned when a login succeeds but neither a token cookie nor
// an access_token field comes back.
var ErrNoToken = errors.New("login response carried no access token")

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// Login posts the credentials and returns the issued bearer token.
// The API delivers the token as a cookie; a JSON access_token field is accepted as a fallback.
func (c *Client) Login(ctx context.Context, creds domainauth.Credentials) (string, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return "", fmt.Errorf("login: cookie jar: %w", err)
	}
	hc := c.httpClient("")
	hc.Jar = jar

	req, err := c.newRequest(ctx, call{name: "auth.login", method: http.MethodPost, path: "/auth/login", body: creds})
	if err != nil {
		return "", err
	}
	resp, err := c.do(hc, req, "auth.login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	for _, ck := range jar.Cookies(req.URL) {
		if ck.Name == c.cookieName {
			if tok := domainauth.NormalizeToken(ck.Value); tok != "" {
				return tok, nil
			}
		}
	}

	var body loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	if tok := domainauth.NormalizeToken(body.AccessToken); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, reg domainauth.Registration) error {
	return c.doJSON(ctx, call{
		name:   "auth.register",
		method: http.MethodPost,
		path:   "/auth/register",
		body:   reg,
	}, nil)
}
