package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
	"yt-companion/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Save(ctx context.Context, s *model.Session) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepo) FindByAccessToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepo) DeleteByAccessToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

type stubYouTube struct{ repository.IYouTube }

type stubFactory struct {
	client repository.IYouTube
	err    error
}

func (f *stubFactory) ClientFor(ctx context.Context, session *model.Session) (repository.IYouTube, error) {
	return f.client, f.err
}

func newTestRouter(sessions repository.ISession, factory repository.IYouTubeFactory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Session(sessions, factory))
	router.GET("/protected", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"token": middleware.TokenFrom(ctx)})
	})
	return router
}

func TestSession_MissingAuthorizationHeader(t *testing.T) {
	sessions := new(MockSessionRepo)
	router := newTestRouter(sessions, &stubFactory{client: stubYouTube{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
	sessions.AssertNotCalled(t, "FindByAccessToken", mock.Anything, mock.Anything)
}

func TestSession_RejectsNonBearerScheme(t *testing.T) {
	sessions := new(MockSessionRepo)
	router := newTestRouter(sessions, &stubFactory{client: stubYouTube{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sessions.AssertNotCalled(t, "FindByAccessToken", mock.Anything, mock.Anything)
}

func TestSession_UnknownTokenIs401(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("FindByAccessToken", mock.Anything, "unknown").Return(nil, model.ErrNotFound)
	router := newTestRouter(sessions, &stubFactory{client: stubYouTube{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer unknown")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "log in again")
}

func TestAuthenticate_ResolvesSessionWithoutClient(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("FindByAccessToken", mock.Anything, "ya29.access").
		Return(&model.Session{ID: 1, AccessToken: "ya29.access"}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(sessions))
	router.POST("/logout-like", func(ctx *gin.Context) {
		_, hasClient := ctx.Get(middleware.ContextYouTubeKey)
		ctx.JSON(http.StatusOK, gin.H{
			"token":      middleware.TokenFrom(ctx),
			"has_client": hasClient,
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout-like", nil)
	req.Header.Set("Authorization", "Bearer ya29.access")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ya29.access")
	assert.Contains(t, w.Body.String(), `"has_client":false`)
}

func TestAuthenticate_MissingHeaderIs401(t *testing.T) {
	sessions := new(MockSessionRepo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(sessions))
	router.POST("/logout-like", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout-like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sessions.AssertNotCalled(t, "FindByAccessToken", mock.Anything, mock.Anything)
}

func TestSession_ValidTokenPopulatesContext(t *testing.T) {
	sessions := new(MockSessionRepo)
	sessions.On("FindByAccessToken", mock.Anything, "ya29.access").
		Return(&model.Session{ID: 1, AccessToken: "ya29.access"}, nil)
	router := newTestRouter(sessions, &stubFactory{client: stubYouTube{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer ya29.access")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ya29.access")
}
