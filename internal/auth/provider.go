package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	ProviderKakao  = "kakao"
	ProviderGoogle = "google"
	ProviderNaver  = "naver"

	callbackPath     = "/login/oauth2/code/"
	maxUserInfoBytes = 1 << 20
)

// Provider is an OAuth2 authorization server the member can log in with.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	FetchAttributes(ctx context.Context, code string) (member.OAuth2Attributes, error)
}

// Providers indexes the registered providers by name
type Providers map[string]Provider

type attributeParser func(userInfo gjson.Result) member.OAuth2Attributes

type oauthProvider struct {
	name        string
	config      *oauth2.Config
	userInfoURL string
	parse       attributeParser
}

// NewProviders registers every provider with a configured client id.
func NewProviders(cfg config.OAuthConfig) Providers {
	providers := Providers{}

	register := func(name string, creds config.OAuthProviderConfig, endpoint oauth2.Endpoint, scopes []string, userInfoURL string, parse attributeParser) {
		if creds.ClientID == "" {
			return
		}
		providers[name] = &oauthProvider{
			name: name,
			config: &oauth2.Config{
				ClientID:     creds.ClientID,
				ClientSecret: creds.ClientSecret,
				Endpoint:     endpoint,
				RedirectURL:  cfg.CallbackBaseURL + callbackPath + name,
				Scopes:       scopes,
			},
			userInfoURL: userInfoURL,
			parse:       parse,
		}
	}

	register(ProviderKakao, cfg.Kakao, oauth2.Endpoint{
		AuthURL:   "https://kauth.kakao.com/oauth/authorize",
		TokenURL:  "https://kauth.kakao.com/oauth/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, []string{"account_email", "profile_nickname"}, "https://kapi.kakao.com/v2/user/me", kakaoAttributes)

	register(ProviderGoogle, cfg.Google, oauth2.Endpoint{
		AuthURL:   "https://accounts.google.com/o/oauth2/auth",
		TokenURL:  "https://oauth2.googleapis.com/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, []string{"email", "profile"}, "https://www.googleapis.com/oauth2/v3/userinfo", googleAttributes)

	register(ProviderNaver, cfg.Naver, oauth2.Endpoint{
		AuthURL:   "https://nid.naver.com/oauth2.0/authorize",
		TokenURL:  "https://nid.naver.com/oauth2.0/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, nil, "https://openapi.naver.com/v1/nid/me", naverAttributes)

	return providers
}

func (p *oauthProvider) Name() string {
	return p.name
}

func (p *oauthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// FetchAttributes exchanges the authorization code and reads the user info endpoint
func (p *oauthProvider) FetchAttributes(ctx context.Context, code string) (member.OAuth2Attributes, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return member.OAuth2Attributes{}, fmt.Errorf("%s 토큰 교환 실패: %w", p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return member.OAuth2Attributes{}, err
	}

	resp, err := p.config.Client(ctx, tok).Do(req)
	if err != nil {
		return member.OAuth2Attributes{}, fmt.Errorf("%s 사용자 정보 요청 실패: %w", p.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUserInfoBytes))
	if err != nil {
		return member.OAuth2Attributes{}, fmt.Errorf("%s 사용자 정보 읽기 실패: %w", p.name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return member.OAuth2Attributes{}, fmt.Errorf("%s 사용자 정보 응답 status=%d", p.name, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return member.OAuth2Attributes{}, fmt.Errorf("%s 사용자 정보 JSON 형식 오류", p.name)
	}

	attrs := p.parse(gjson.ParseBytes(body))
	attrs.Provider = p.name
	return attrs, nil
}

func kakaoAttributes(userInfo gjson.Result) member.OAuth2Attributes {
	nickname := userInfo.Get("properties.nickname").String()
	if nickname == "" {
		nickname = userInfo.Get("kakao_account.profile.nickname").String()
	}
	return member.OAuth2Attributes{
		Email:    userInfo.Get("kakao_account.email").String(),
		Nickname: nickname,
	}
}

func googleAttributes(userInfo gjson.Result) member.OAuth2Attributes {
	return member.OAuth2Attributes{
		Email:    userInfo.Get("email").String(),
		Nickname: userInfo.Get("name").String(),
	}
}

// naver wraps the profile in a "response" object
func naverAttributes(userInfo gjson.Result) member.OAuth2Attributes {
	return member.OAuth2Attributes{
		Email:    userInfo.Get("response.email").String(),
		Nickname: userInfo.Get("response.nickname").String(),
	}
}
