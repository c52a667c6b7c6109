package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/testutil"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_AuthVerifier_BearerHeader(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate(time.Minute,
		model.AccessToken{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/getUser", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	ctx = xcontext.WithHTTPRequest(ctx, req)

	newCtx, err := NewAuthVerifier().WithAccessToken().Middleware()(ctx)
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_Cookie(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate(time.Minute,
		model.AccessToken{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/getUser", nil)
	req.AddCookie(&http.Cookie{
		Name:  xcontext.Configs(ctx).Auth.AccessToken.Name,
		Value: token,
	})
	ctx = xcontext.WithHTTPRequest(ctx, req)

	newCtx, err := NewAuthVerifier().WithAccessToken().Middleware()(ctx)
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_InvalidToken(t *testing.T) {
	ctx := testutil.MockContext()

	req := httptest.NewRequest(http.MethodGet, "/getUser", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	ctx = xcontext.WithHTTPRequest(ctx, req)

	_, err := NewAuthVerifier().WithAccessToken().Middleware()(ctx)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
	require.Equal(t, "Invalid access token", errx.Message)
}

func Test_AuthVerifier_MissingToken(t *testing.T) {
	ctx := testutil.MockContext()

	req := httptest.NewRequest(http.MethodGet, "/getUser", nil)
	ctx = xcontext.WithHTTPRequest(ctx, req)

	_, err := NewAuthVerifier().WithAccessToken().Middleware()(ctx)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
	require.Equal(t, "You need to authenticate before", errx.Message)
}
