package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	validCode           = "valid-code"
	providerAccessToken = "provider-access-token"
	kakaoUserInfo       = `{"id":42,"properties":{"nickname":"모네"},"kakao_account":{"email":"monet@example.com"}}`
)

// newFakeProviderServer serves the token and user info endpoints of a kakao-like provider
func newFakeProviderServer(t *testing.T, userInfo string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != validCode {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"` + providerAccessToken + `","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v2/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+providerAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newFakeProvider(server *httptest.Server) *oauthProvider {
	return &oauthProvider{
		name: ProviderKakao,
		config: &oauth2.Config{
			ClientID:     "kakao-client-id",
			ClientSecret: "kakao-client-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:   server.URL + "/oauth/authorize",
				TokenURL:  server.URL + "/oauth/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			RedirectURL: "http://localhost:8080" + callbackPath + ProviderKakao,
		},
		userInfoURL: server.URL + "/v2/user/me",
		parse:       kakaoAttributes,
	}
}

func TestAttributeParsers(t *testing.T) {
	testCases := []struct {
		name     string
		parse    attributeParser
		userInfo string
		email    string
		nickname string
	}{
		{
			name:     "kakao properties nickname",
			parse:    kakaoAttributes,
			userInfo: kakaoUserInfo,
			email:    "monet@example.com",
			nickname: "모네",
		},
		{
			name:     "kakao profile nickname fallback",
			parse:    kakaoAttributes,
			userInfo: `{"kakao_account":{"email":"a@kakao.com","profile":{"nickname":"마네"}}}`,
			email:    "a@kakao.com",
			nickname: "마네",
		},
		{
			name:     "google",
			parse:    googleAttributes,
			userInfo: `{"sub":"1","email":"g@gmail.com","name":"Gogh"}`,
			email:    "g@gmail.com",
			nickname: "Gogh",
		},
		{
			name:     "naver",
			parse:    naverAttributes,
			userInfo: `{"resultcode":"00","response":{"email":"n@naver.com","nickname":"세잔"}}`,
			email:    "n@naver.com",
			nickname: "세잔",
		},
		{
			name:     "missing email",
			parse:    googleAttributes,
			userInfo: `{"name":"nobody"}`,
			email:    "",
			nickname: "nobody",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := tc.parse(gjson.Parse(tc.userInfo))
			assert.Equal(t, tc.email, attrs.Email)
			assert.Equal(t, tc.nickname, attrs.Nickname)
		})
	}
}

func TestNewProviders_OnlyConfigured(t *testing.T) {
	providers := NewProviders(config.OAuthConfig{
		CallbackBaseURL: "https://api.artfriendly.test",
		Kakao:           config.OAuthProviderConfig{ClientID: "kakao-id", ClientSecret: "secret"},
		Naver:           config.OAuthProviderConfig{ClientID: "naver-id", ClientSecret: "secret"},
	})

	require.Len(t, providers, 2)
	assert.Contains(t, providers, ProviderKakao)
	assert.Contains(t, providers, ProviderNaver)
	assert.NotContains(t, providers, ProviderGoogle)

	authURL, err := url.Parse(providers[ProviderKakao].AuthCodeURL("state-1"))
	require.NoError(t, err)
	assert.Equal(t, "kauth.kakao.com", authURL.Host)
	assert.Equal(t, "state-1", authURL.Query().Get("state"))
	assert.Equal(t, "kakao-id", authURL.Query().Get("client_id"))
	assert.Equal(t, "https://api.artfriendly.test/login/oauth2/code/kakao", authURL.Query().Get("redirect_uri"))
}

func TestFetchAttributes(t *testing.T) {
	server := newFakeProviderServer(t, kakaoUserInfo)
	provider := newFakeProvider(server)

	attrs, err := provider.FetchAttributes(context.Background(), validCode)
	require.NoError(t, err)
	assert.Equal(t, ProviderKakao, attrs.Provider)
	assert.Equal(t, "monet@example.com", attrs.Email)
	assert.Equal(t, "모네", attrs.Nickname)

	_, err = provider.FetchAttributes(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestFetchAttributes_InvalidJSON(t *testing.T) {
	server := newFakeProviderServer(t, `not json`)
	provider := newFakeProvider(server)

	_, err := provider.FetchAttributes(context.Background(), validCode)
	assert.Error(t, err)
}
