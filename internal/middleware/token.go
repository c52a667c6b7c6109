package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/questlane/backend/pkg/router"
	"github.com/questlane/backend/pkg/xcontext"
)

type AccessTokenResponse interface {
	AccessTokenInfo() string
}

// HandleSetAccessToken mirrors the issued access token into a cookie so that
// browser clients do not need to manage the Authorization header themselves.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		tokenResp, ok := xcontext.Response(ctx).(AccessTokenResponse)
		if ok {
			http.SetCookie(xcontext.HTTPWriter(ctx), &http.Cookie{
				Name:     xcontext.Configs(ctx).Auth.AccessToken.Name,
				Value:    tokenResp.AccessTokenInfo(),
				Domain:   "",
				Path:     "/",
				Expires:  time.Now().Add(xcontext.Configs(ctx).Auth.AccessToken.Expiration),
				Secure:   true,
				HttpOnly: false,
			})
		}

		return nil, nil
	}
}
