// Package system wraps the path-style authorization operations used to
// obtain and refresh seller sessions.
package system

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
)

// Operation names.
const (
	MethodGenerateToken         = "/auth/token/create"
	MethodGenerateSecurityToken = "/auth/token/security/create"
	MethodRefreshToken          = "/auth/token/refresh"
	MethodRefreshSecurityToken  = "/auth/token/security/refresh"
)

// Client exposes the token operations.
type Client struct {
	exec aliexpress.Executor
}

// New creates a system client on top of exec.
func New(exec aliexpress.Executor) *Client {
	return &Client{exec: exec}
}

// GenerateTokenRequest exchanges an authorization code for a session.
type GenerateTokenRequest struct {
	Code string `json:"code"`
	UUID string `json:"uuid,omitempty"`
}

// Validate implements validation.Validatable.
func (r GenerateTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required),
	)
}

// RefreshTokenRequest renews a session before it expires.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate implements validation.Validatable.
func (r RefreshTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

// Token is the session issued by the authorization operations. The
// security variants leave the account fields empty.
type Token struct {
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"refresh_token"`
	ExpiresIn             int64  `json:"expires_in"`
	ExpireTime            int64  `json:"expire_time"`
	RefreshExpiresIn      int64  `json:"refresh_expires_in"`
	RefreshTokenValidTime int64  `json:"refresh_token_valid_time"`
	AccountID             string `json:"account_id"`
	SellerID              string `json:"seller_id"`
	UserID                string `json:"user_id"`
	SP                    string `json:"sp"`
	Locale                string `json:"locale"`
	HavanaID              string `json:"havana_id"`
	UserNick              string `json:"user_nick"`
	Account               string `json:"account"`
	AccountPlatform       string `json:"account_platform"`
	RequestID             string `json:"request_id"`
}

// ExpiresAt returns when the access token expires.
func (t *Token) ExpiresAt() time.Time {
	return time.UnixMilli(t.ExpireTime)
}

// RefreshExpiresAt returns when the refresh token expires.
func (t *Token) RefreshExpiresAt() time.Time {
	return time.UnixMilli(t.RefreshTokenValidTime)
}

// tokenError is the un-enveloped failure shape of path-style operations.
type tokenError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
}

// GenerateToken creates a session from an authorization code.
func (c *Client) GenerateToken(ctx context.Context, req GenerateTokenRequest) (*Token, error) {
	return c.token(ctx, MethodGenerateToken, req)
}

// GenerateSecurityToken creates a security session from an authorization code.
func (c *Client) GenerateSecurityToken(ctx context.Context, req GenerateTokenRequest) (*Token, error) {
	return c.token(ctx, MethodGenerateSecurityToken, req)
}

// RefreshToken renews a session.
func (c *Client) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*Token, error) {
	return c.token(ctx, MethodRefreshToken, req)
}

// RefreshSecurityToken renews a security session.
func (c *Client) RefreshSecurityToken(ctx context.Context, req RefreshTokenRequest) (*Token, error) {
	return c.token(ctx, MethodRefreshSecurityToken, req)
}

func (c *Client) token(ctx context.Context, method string, req any) (*Token, error) {
	body, err := aliexpress.Invoke(ctx, c.exec, method, req)
	if err != nil {
		return nil, err
	}

	// Path-style failures arrive at the top level with a non-zero code.
	if _, ok := body["access_token"]; !ok {
		var te tokenError
		if err := aliexpress.Decode(map[string]any(body), &te); err != nil {
			return nil, err
		}
		if te.Code != "" && te.Code != "0" {
			return nil, aliexpress.NewPlatformError(&aliexpress.ErrorResponse{
				Type:      te.Type,
				Code:      te.Code,
				Msg:       te.Message,
				RequestID: te.RequestID,
			}, 0)
		}
		return nil, aliexpress.NewDecodeError("unexpected response shape: missing \"access_token\"", nil)
	}

	var tok Token
	if err := aliexpress.Decode(map[string]any(body), &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
