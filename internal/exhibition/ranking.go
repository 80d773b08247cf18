package exhibition

import (
	"context"
	"fmt"
	"time"

	"github.com/artfriendly/go-api-server/internal/shared/logger"
)

// GetTop10PopularRanking reads the stored ranking, building it once if nothing is stored yet.
func (s *ExhibitionService) GetTop10PopularRanking(ctx context.Context) ([]PopularExhibitionResponse, error) {
	exists, err := s.cache.HasPopular(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.UpdateTop10PopularRanking(ctx); err != nil {
			return nil, err
		}
	}

	ranking, err := s.cache.GetPopular(ctx)
	if err != nil {
		return nil, fmt.Errorf("인기 전시회 순위 조회 실패: %w", err)
	}
	return ranking, nil
}

// UpdateTop10PopularRanking rebuilds the top ten and stores each entry's change against the previous ranking.
func (s *ExhibitionService) UpdateTop10PopularRanking(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordRankingRefresh(err, time.Since(start))
	}()

	previous, err := s.cache.GetPopular(ctx)
	if err != nil {
		return fmt.Errorf("이전 인기 순위 조회 실패: %w", err)
	}
	previousRanks := rankIndex(previous)

	exhibitions, err := s.exhibitionRepository.FindTopByTemperature(ctx, s.db, s.today(), rankingSize)
	if err != nil {
		return fmt.Errorf("인기 전시회 조회 실패: %w", err)
	}

	ranking := make([]PopularExhibitionResponse, 0, len(exhibitions))
	for i := range exhibitions {
		rank := i + 1
		change := RankChange(previousRanks, exhibitions[i].ID, rank)
		ranking = append(ranking, toPopularExhibitionResponse(&exhibitions[i], rank, change))
	}

	if err := s.cache.SetPopular(ctx, ranking); err != nil {
		return fmt.Errorf("인기 순위 저장 실패: %w", err)
	}

	logger.FromContext(ctx).Info("인기 전시회 순위 갱신", "count", len(ranking))
	return nil
}

// RankingJob refreshes the popular ranking on the scheduler
type RankingJob struct {
	service *ExhibitionService
}

func NewRankingJob(service *ExhibitionService) *RankingJob {
	return &RankingJob{service: service}
}

func (j *RankingJob) Name() string {
	return "popular-exhibition-ranking"
}

func (j *RankingJob) Run(ctx context.Context) error {
	return j.service.UpdateTop10PopularRanking(ctx)
}
