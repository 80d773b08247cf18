package auth

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/artfriendly/go-api-server/internal/shared/token"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// oauth login metric results
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	memberService    *member.MemberService
	tokenManager     token.Manager
	providers        Providers
	store            *codeStore
	redirectURL      string
	metrics          *metrics.Metrics
}

func NewAuthService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	memberService *member.MemberService,
	tokenManager token.Manager,
	providers Providers,
	rdb *redis.Client,
	cfg config.OAuthConfig,
	metrics *metrics.Metrics,
) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		memberService:    memberService,
		tokenManager:     tokenManager,
		providers:        providers,
		store:            newCodeStore(rdb, cfg.StateTTL, cfg.OTUCodeTTL),
		redirectURL:      cfg.RedirectURL,
		metrics:          metrics,
	}
}

func (a *AuthService) provider(name string) (Provider, error) {
	provider, ok := a.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider=%q %w", name, ErrUnsupportedProvider)
	}
	return provider, nil
}

// AuthorizationURL issues a state for providerName and returns where to send the browser.
func (a *AuthService) AuthorizationURL(ctx context.Context, providerName string) (string, error) {
	provider, err := a.provider(providerName)
	if err != nil {
		return "", err
	}

	state := uuid.NewString()
	if err := a.store.SaveState(ctx, state, provider.Name()); err != nil {
		return "", fmt.Errorf("state 저장 실패: %w", err)
	}
	return provider.AuthCodeURL(state), nil
}

// HandleCallback completes the authorization code flow and returns the front-end redirect
// carrying a one-time code for the token endpoint.
func (a *AuthService) HandleCallback(ctx context.Context, providerName string, request *CallbackRequest) (redirect string, err error) {
	log := logger.FromContext(ctx).With("provider", providerName)

	provider, err := a.provider(providerName)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			a.metrics.IncOAuthLogin(provider.Name(), resultFailure)
		}
	}()

	issuedFor, err := a.store.ConsumeState(ctx, request.State)
	if err != nil {
		return "", err
	}
	if issuedFor != provider.Name() {
		return "", fmt.Errorf("state provider 불일치 issued=%s callback=%s %w", issuedFor, provider.Name(), ErrInvalidOAuthState)
	}

	if request.Error != "" || request.Code == "" {
		return "", fmt.Errorf("인가 코드 없음 error=%q %w", request.Error, ErrOAuthProviderFailure)
	}

	attrs, err := provider.FetchAttributes(ctx, request.Code)
	if err != nil {
		log.Warn("OAuth 사용자 정보 조회 실패", "error", err)
		return "", fmt.Errorf("%v %w", err, ErrOAuthProviderFailure)
	}
	if attrs.Email == "" {
		return "", fmt.Errorf("provider=%s %w", provider.Name(), ErrOAuthEmailRequired)
	}

	result, err := a.memberService.OAuth2Login(ctx, attrs)
	if err != nil {
		return "", err
	}

	code := uuid.NewString()
	if err := a.store.SaveOTU(ctx, code, result.Member.ID); err != nil {
		return "", fmt.Errorf("인증 코드 저장 실패: %w", err)
	}

	a.metrics.IncOAuthLogin(provider.Name(), resultSuccess)
	log.Info("OAuth 로그인 성공", "member_id", result.Member.ID, "is_existing", result.IsExisting)

	return a.frontendURL(url.Values{
		"code":             {code},
		"isExistingMember": {strconv.FormatBool(result.IsExisting)},
	}), nil
}

// FailureRedirectURL sends the browser back to the front end with the error code of err
func (a *AuthService) FailureRedirectURL(err error) string {
	code := sharedError.InternalServerError.Code
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		code = resp.Code
	}
	return a.frontendURL(url.Values{"error": {code}})
}

func (a *AuthService) frontendURL(params url.Values) string {
	u, err := url.Parse(a.redirectURL)
	if err != nil {
		return a.redirectURL + "?" + params.Encode()
	}

	query := u.Query()
	for key, values := range params {
		query[key] = values
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// IssueToken redeems a one-time code for a token pair
func (a *AuthService) IssueToken(ctx context.Context, code string) (*TokenResponse, error) {
	memberID, err := a.store.ConsumeOTU(ctx, code)
	if err != nil {
		return nil, err
	}

	member, err := a.memberService.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return a.issueTokens(ctx, member)
}

func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*TokenResponse, error) {
	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%v %w", err, ErrInvalidRefreshToken)
	}
	if claims.TokenType != token.REFRESH {
		return nil, fmt.Errorf("token_type=%s %w", claims.TokenType, ErrInvalidRefreshToken)
	}

	memberID, err := strconv.ParseUint(claims.MemberID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("member_id=%q %w", claims.MemberID, ErrInvalidRefreshToken)
	}

	member, err := a.memberService.FindByID(ctx, uint32(memberID))
	if err != nil {
		return nil, err
	}
	return a.issueTokens(ctx, member)
}

// AdminLogin authenticates an ADMIN account with email and password
func (a *AuthService) AdminLogin(ctx context.Context, request *AdminLoginRequest) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	member, err := a.memberRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if database.IsNotFound(err) {
			log.Warn("관리자 로그인 실패 - email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
		}
		return nil, fmt.Errorf("관리자 로그인 실패: %w", err)
	}

	if !member.IsAdmin() || member.Password == nil {
		log.Warn("관리자 로그인 실패 - not admin", "member_id", member.ID)
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*member.Password), []byte(request.Password)); err != nil {
		log.Warn("관리자 로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	return a.issueTokens(ctx, member)
}

func (a *AuthService) issueTokens(ctx context.Context, member *model.Member) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	subject := token.Subject{
		MemberID: strconv.FormatUint(uint64(member.ID), 10),
		Email:    member.Email,
		Role:     member.Role,
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(subject)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(subject)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &TokenResponse{
		MemberID:     member.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
