package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	stateKeyPrefix = "oauth:state:"
	otuKeyPrefix   = "oauth:otu:"
)

// codeStore keeps short-lived OAuth values in redis.
// Every value is read with GETDEL so it can be used only once.
type codeStore struct {
	rdb      *redis.Client
	stateTTL time.Duration
	otuTTL   time.Duration
}

func newCodeStore(rdb *redis.Client, stateTTL, otuTTL time.Duration) *codeStore {
	return &codeStore{rdb: rdb, stateTTL: stateTTL, otuTTL: otuTTL}
}

func (s *codeStore) SaveState(ctx context.Context, state, provider string) error {
	return s.rdb.Set(ctx, stateKeyPrefix+state, provider, s.stateTTL).Err()
}

// ConsumeState returns the provider the state was issued for
func (s *codeStore) ConsumeState(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", fmt.Errorf("state 누락 %w", ErrInvalidOAuthState)
	}

	provider, err := s.rdb.GetDel(ctx, stateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("state 만료 또는 재사용 %w", ErrInvalidOAuthState)
	}
	if err != nil {
		return "", fmt.Errorf("state 조회 실패: %w", err)
	}
	return provider, nil
}

func (s *codeStore) SaveOTU(ctx context.Context, code string, memberID uint32) error {
	return s.rdb.Set(ctx, otuKeyPrefix+code, strconv.FormatUint(uint64(memberID), 10), s.otuTTL).Err()
}

func (s *codeStore) ConsumeOTU(ctx context.Context, code string) (uint32, error) {
	value, err := s.rdb.GetDel(ctx, otuKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("인증 코드 만료 또는 재사용 %w", ErrInvalidOTUCode)
	}
	if err != nil {
		return 0, fmt.Errorf("인증 코드 조회 실패: %w", err)
	}

	memberID, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("인증 코드 값 오류 value=%q %w", value, ErrInvalidOTUCode)
	}
	return uint32(memberID), nil
}
