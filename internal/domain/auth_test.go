package domain

import (
	"context"
	"testing"
	"time"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/crypto"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/testutil"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Signup(t *testing.T) {
	ctx := testutil.MockContext()

	trackedUsers := []string{}
	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{
			TrackSignInFunc: func(ctx context.Context, userID string) error {
				trackedUsers = append(trackedUsers, userID)
				return nil
			},
		},
	}

	resp, err := domain.Signup(ctx, &model.SignupRequest{
		Name:     "alice_01",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	// The access token must carry the new user identity.
	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, resp.UserID, accessToken.ID)
	require.Equal(t, "alice_01", accessToken.Name)

	// A new user starts with the welcome gold bonus and a new status.
	user, err := domain.userRepo.GetByID(ctx, resp.UserID)
	require.NoError(t, err)
	require.Equal(t, uint64(20), user.Gold)
	require.Equal(t, uint64(0), user.Diamond)
	require.Equal(t, entity.UserNew, user.Status)

	// Signup counts as the first sign-in.
	require.Equal(t, []string{resp.UserID}, trackedUsers)
}

func Test_authDomain_Signup_DuplicatedName(t *testing.T) {
	ctx := testutil.MockContext()

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	_, err := domain.Signup(ctx, &model.SignupRequest{Name: "bob", Password: "super-secret"})
	require.NoError(t, err)

	_, err = domain.Signup(ctx, &model.SignupRequest{Name: "bob", Password: "another-secret"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_authDomain_Signup_InvalidRequest(t *testing.T) {
	ctx := testutil.MockContext()

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	testcases := []struct {
		name     string
		password string
	}{
		{name: "ab", password: "super-secret"},
		{name: "UpperCase", password: "super-secret"},
		{name: "white space", password: "super-secret"},
		{name: "valid-name", password: "short"},
	}

	for _, tc := range testcases {
		_, err := domain.Signup(ctx, &model.SignupRequest{Name: tc.name, Password: tc.password})
		var errx errorx.Error
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.BadRequest, errx.Code)
	}
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()

	hashedPassword, err := crypto.HashPassword("super-secret")
	require.NoError(t, err)

	user, err := testutil.SampleUser(ctx, &entity.User{HashedPassword: hashedPassword})
	require.NoError(t, err)

	trackedUsers := []string{}
	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{
			TrackSignInFunc: func(ctx context.Context, userID string) error {
				trackedUsers = append(trackedUsers, userID)
				return nil
			},
		},
	}

	resp, err := domain.Login(ctx, &model.LoginRequest{Name: user.Name, Password: "super-secret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, []string{user.ID}, trackedUsers)

	// Login updates the last login time.
	loggedIn, err := domain.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, loggedIn.LastLoginAt.IsZero())
}

func Test_authDomain_Login_InvalidCredentials(t *testing.T) {
	ctx := testutil.MockContext()

	hashedPassword, err := crypto.HashPassword("super-secret")
	require.NoError(t, err)

	user, err := testutil.SampleUser(ctx, &entity.User{HashedPassword: hashedPassword})
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	var errx errorx.Error

	_, err = domain.Login(ctx, &model.LoginRequest{Name: user.Name, Password: "wrong"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.Login(ctx, &model.LoginRequest{Name: "no-such-user", Password: "super-secret"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Login_BannedUser(t *testing.T) {
	ctx := testutil.MockContext()

	hashedPassword, err := crypto.HashPassword("super-secret")
	require.NoError(t, err)

	user, err := testutil.SampleUser(ctx, &entity.User{
		HashedPassword: hashedPassword,
		Status:         entity.UserBanned,
	})
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	_, err = domain.Login(ctx, &model.LoginRequest{Name: user.Name, Password: "super-secret"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_authDomain_Login_DoesNotFailWhenTrackingIsDown(t *testing.T) {
	ctx := testutil.MockContext()

	hashedPassword, err := crypto.HashPassword("super-secret")
	require.NoError(t, err)

	user, err := testutil.SampleUser(ctx, &entity.User{HashedPassword: hashedPassword})
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{
			TrackSignInFunc: func(ctx context.Context, userID string) error {
				return errorx.Unknown
			},
		},
	}

	_, err = domain.Login(ctx, &model.LoginRequest{Name: user.Name, Password: "super-secret"})
	require.NoError(t, err)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	refreshTokenObj := model.RefreshToken{
		Family:  "Foo",
		Counter: 0,
	}

	err = domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     user.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	// Successfully for the first refresh.
	resp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	// Verify access token.
	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, accessToken.ID)

	// The new refresh token belongs to the same family with an increased
	// counter.
	newRefreshToken := model.RefreshToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.RefreshToken, &newRefreshToken)
	require.NoError(t, err)
	require.Equal(t, refreshTokenObj.Family, newRefreshToken.Family)
	require.Equal(t, uint64(1), newRefreshToken.Counter)
}

func Test_authDomain_Refresh_StolenToken(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	refreshTokenObj := model.RefreshToken{
		Family:  "Foo",
		Counter: 0,
	}

	err = domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     user.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	// Reusing the old token is treated as a theft and revokes the whole
	// family.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.StolenDetected, errx.Code)
}

func Test_authDomain_Refresh_ExpiredToken(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		processingCaller: &testutil.MockProcessingCaller{},
	}

	refreshTokenObj := model.RefreshToken{
		Family:  "Foo",
		Counter: 0,
	}

	err = domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     user.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.TokenExpired, errx.Code)
}
