package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yt-companion/domain/model"
	"yt-companion/infrastructure/configuration"
	"yt-companion/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(tokenURL, revokeURL string) *configuration.Config {
	return &configuration.Config{
		Google: configuration.Google{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8000/auth/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/youtube.force-ssl"},
			TokenURL:     tokenURL,
			RevokeURL:    revokeURL,
		},
	}
}

func TestAuthUsecase_AuthURL(t *testing.T) {
	uc := usecase.NewAuthUsecase(testConfig("https://oauth2.googleapis.com/token", ""), new(MockSession), new(MockAuditLog))

	authURL := uc.AuthURL()

	assert.Contains(t, authURL, "https://accounts.google.com/o/oauth2/auth")
	assert.Contains(t, authURL, "access_type=offline")
	assert.Contains(t, authURL, "prompt=consent")
	assert.Contains(t, authURL, "client_id=client-id")
	assert.Contains(t, authURL, "state=")
}

func TestAuthUsecase_HandleCallback_StoresSession(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya29.access","refresh_token":"1//refresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	mockSessions := new(MockSession)
	mockAudit := new(MockAuditLog)
	mockSessions.On("Save", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.AccessToken == "ya29.access" &&
			s.RefreshToken == "1//refresh" &&
			s.TokenEndpoint == tokenServer.URL &&
			s.ClientID == "client-id"
	})).Return(int64(1), nil)
	mockAudit.On("Append", mock.Anything, model.ActionSessionCreated, mock.Anything).Return(nil)

	uc := usecase.NewAuthUsecase(testConfig(tokenServer.URL, ""), mockSessions, mockAudit)
	token, err := uc.HandleCallback(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "ya29.access", token)
	mockSessions.AssertExpectations(t)
}

func TestAuthUsecase_Logout_RevokesAndDeletes(t *testing.T) {
	var revokedToken string
	revokeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revokedToken = r.URL.Query().Get("token")
		w.WriteHeader(http.StatusOK)
	}))
	defer revokeServer.Close()

	mockSessions := new(MockSession)
	mockAudit := new(MockAuditLog)
	mockSessions.On("DeleteByAccessToken", mock.Anything, "ya29.access").Return(int64(1), nil)
	mockAudit.On("Append", mock.Anything, model.ActionSessionRevoked, mock.Anything).Return(nil)

	uc := usecase.NewAuthUsecase(testConfig("https://oauth2.googleapis.com/token", revokeServer.URL), mockSessions, mockAudit)
	err := uc.Logout(context.Background(), "ya29.access")

	require.NoError(t, err)
	assert.Equal(t, "ya29.access", revokedToken)
	mockSessions.AssertExpectations(t)
}

func TestAuthUsecase_Logout_NonOKRevokeStillDeletesRow(t *testing.T) {
	revokeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer revokeServer.Close()

	mockSessions := new(MockSession)
	mockAudit := new(MockAuditLog)
	mockSessions.On("DeleteByAccessToken", mock.Anything, "expired-token").Return(int64(1), nil)
	mockAudit.On("Append", mock.Anything, model.ActionSessionRevoked, mock.Anything).Return(nil)

	uc := usecase.NewAuthUsecase(testConfig("https://oauth2.googleapis.com/token", revokeServer.URL), mockSessions, mockAudit)
	err := uc.Logout(context.Background(), "expired-token")

	require.NoError(t, err)
	mockSessions.AssertCalled(t, "DeleteByAccessToken", mock.Anything, "expired-token")
}

func TestAuthUsecase_Logout_TransportFailureKeepsRow(t *testing.T) {
	mockSessions := new(MockSession)
	mockAudit := new(MockAuditLog)

	uc := usecase.NewAuthUsecase(testConfig("https://oauth2.googleapis.com/token", "http://127.0.0.1:1"), mockSessions, mockAudit)
	err := uc.Logout(context.Background(), "ya29.access")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "revoking token"))
	mockSessions.AssertNotCalled(t, "DeleteByAccessToken", mock.Anything, mock.Anything)
}

func TestLogUsecase_Recent_ClampsLimit(t *testing.T) {
	mockAudit := new(MockAuditLog)
	mockAudit.On("Recent", mock.Anything, 50).Return([]model.AuditEvent{{ID: 1}}, nil).Once()
	mockAudit.On("Recent", mock.Anything, 200).Return([]model.AuditEvent{}, nil).Once()

	uc := usecase.NewLogUsecase(mockAudit)

	events, err := uc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = uc.Recent(context.Background(), 1000)
	require.NoError(t, err)
	mockAudit.AssertExpectations(t)
}

func TestLogUsecase_Recent_EmptyIsNotNil(t *testing.T) {
	mockAudit := new(MockAuditLog)
	mockAudit.On("Recent", mock.Anything, 10).Return(nil, nil)

	uc := usecase.NewLogUsecase(mockAudit)
	events, err := uc.Recent(context.Background(), 10)

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
