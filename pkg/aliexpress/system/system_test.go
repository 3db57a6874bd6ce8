package system_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/mocks"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/system"
)

func body(t *testing.T, s string) aliexpress.Body {
	t.Helper()

	b, err := aliexpress.DecodeBody([]byte(s))
	require.NoError(t, err)
	return b
}

const tokenJSON = `{
	"access_token": "50000000a0b1c2",
	"refresh_token": "50001000r0e1f2",
	"expires_in": 86400,
	"expire_time": 1700086400000,
	"refresh_expires_in": 172800,
	"refresh_token_valid_time": 1700172800000,
	"account_id": "2200000000",
	"seller_id": 2200000001,
	"user_id": "2200000002",
	"sp": "ae",
	"locale": "en_US",
	"havana_id": "1",
	"user_nick": "us1234",
	"account": "buyer@example.com",
	"account_platform": "buyerApp",
	"code": "0",
	"request_id": "2101e5a2"
}`

func TestClient_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        system.GenerateTokenRequest
		setupMock  func(m *mocks.MockExecutor)
		wantErr    bool
		wantKind   aliexpress.Kind
		errContain string
	}{
		{
			name: "successful exchange",
			req:  system.GenerateTokenRequest{Code: "3_500_abc", UUID: "u-1"},
			setupMock: func(m *mocks.MockExecutor) {
				m.EXPECT().
					Execute(mock.Anything, system.MethodGenerateToken, aliexpress.Params{"code": "3_500_abc", "uuid": "u-1"}).
					Return(body(t, tokenJSON), nil).
					Once()
			},
		},
		{
			name:       "missing code",
			req:        system.GenerateTokenRequest{},
			setupMock:  func(_ *mocks.MockExecutor) {},
			wantErr:    true,
			wantKind:   aliexpress.KindValidation,
			errContain: "code: cannot be blank",
		},
		{
			name: "platform rejects code",
			req:  system.GenerateTokenRequest{Code: "expired"},
			setupMock: func(m *mocks.MockExecutor) {
				m.EXPECT().
					Execute(mock.Anything, system.MethodGenerateToken, aliexpress.Params{"code": "expired"}).
					Return(body(t, `{"code":"InvalidCode","message":"The authorization code is invalid or expired","type":"ISV","request_id":"req-9"}`), nil).
					Once()
			},
			wantErr:    true,
			wantKind:   aliexpress.KindPlatform,
			errContain: "code InvalidCode",
		},
		{
			name: "unexpected shape",
			req:  system.GenerateTokenRequest{Code: "c"},
			setupMock: func(m *mocks.MockExecutor) {
				m.EXPECT().
					Execute(mock.Anything, system.MethodGenerateToken, mock.Anything).
					Return(body(t, `{"code":"0"}`), nil).
					Once()
			},
			wantErr:    true,
			wantKind:   aliexpress.KindDecode,
			errContain: "access_token",
		},
		{
			name: "executor error passes through",
			req:  system.GenerateTokenRequest{Code: "c"},
			setupMock: func(m *mocks.MockExecutor) {
				m.EXPECT().
					Execute(mock.Anything, system.MethodGenerateToken, mock.Anything).
					Return(nil, aliexpress.NewPlatformError(&aliexpress.ErrorResponse{Code: "15", RequestID: "r"}, 200)).
					Once()
			},
			wantErr:  true,
			wantKind: aliexpress.KindPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockExecutor(t)
			tt.setupMock(m)

			tok, err := system.New(m).GenerateToken(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, tok)
				assert.Equal(t, tt.wantKind, aliexpress.KindOf(err))
				if tt.errContain != "" {
					assert.Contains(t, err.Error(), tt.errContain)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "50000000a0b1c2", tok.AccessToken)
			assert.Equal(t, "50001000r0e1f2", tok.RefreshToken)
			assert.Equal(t, int64(86400), tok.ExpiresIn)
			assert.Equal(t, "2200000001", tok.SellerID)
			assert.Equal(t, "us1234", tok.UserNick)
			assert.Equal(t, "buyerApp", tok.AccountPlatform)
			assert.Equal(t, time.UnixMilli(1700086400000), tok.ExpiresAt())
			assert.Equal(t, time.UnixMilli(1700172800000), tok.RefreshExpiresAt())
		})
	}
}

func TestClient_PlatformErrorRequestID(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockExecutor(t)
	m.EXPECT().
		Execute(mock.Anything, system.MethodRefreshToken, mock.Anything).
		Return(body(t, `{"code":"IllegalRefreshToken","message":"refresh token expired","request_id":"req-77"}`), nil).
		Once()

	_, err := system.New(m).RefreshToken(context.Background(), system.RefreshTokenRequest{RefreshToken: "r"})
	require.Error(t, err)
	assert.ErrorIs(t, err, aliexpress.ErrPlatform)
	assert.Equal(t, "req-77", aliexpress.RequestIDOf(err))
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name   string
		method string
		params aliexpress.Params
		call   func(c *system.Client) (*system.Token, error)
	}{
		{
			name:   "generate security token",
			method: system.MethodGenerateSecurityToken,
			params: aliexpress.Params{"code": "c"},
			call: func(c *system.Client) (*system.Token, error) {
				return c.GenerateSecurityToken(ctx, system.GenerateTokenRequest{Code: "c"})
			},
		},
		{
			name:   "refresh token",
			method: system.MethodRefreshToken,
			params: aliexpress.Params{"refresh_token": "r"},
			call: func(c *system.Client) (*system.Token, error) {
				return c.RefreshToken(ctx, system.RefreshTokenRequest{RefreshToken: "r"})
			},
		},
		{
			name:   "refresh security token",
			method: system.MethodRefreshSecurityToken,
			params: aliexpress.Params{"refresh_token": "r"},
			call: func(c *system.Client) (*system.Token, error) {
				return c.RefreshSecurityToken(ctx, system.RefreshTokenRequest{RefreshToken: "r"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockExecutor(t)
			m.EXPECT().
				Execute(mock.Anything, tt.method, tt.params).
				Return(body(t, tokenJSON), nil).
				Once()

			tok, err := tt.call(system.New(m))
			require.NoError(t, err)
			assert.Equal(t, "50000000a0b1c2", tok.AccessToken)
		})
	}
}

func TestRefreshTokenRequest_Validate(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockExecutor(t)
	_, err := system.New(m).RefreshSecurityToken(context.Background(), system.RefreshTokenRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, aliexpress.ErrValidation)
	assert.Contains(t, err.Error(), "refresh_token: cannot be blank")
}
