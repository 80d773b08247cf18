package exhibition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/cache"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/artfriendly/go-api-server/internal/shared/page"
	"gorm.io/gorm"
)

const (
	pageSize    = 8
	endingLimit = 3
	rankingSize = 10
)

type ExhibitionService struct {
	db                   *gorm.DB
	exhibitionRepository *ExhibitionRepository
	activityRepository   *ActivityRepository
	memberRepository     *member.MemberRepository
	cache                *Cache
	metrics              *metrics.Metrics
	now                  func() time.Time
}

func NewExhibitionService(
	db *gorm.DB,
	exhibitionRepository *ExhibitionRepository,
	activityRepository *ActivityRepository,
	memberRepository *member.MemberRepository,
	cache *Cache,
	metrics *metrics.Metrics,
) *ExhibitionService {
	return &ExhibitionService{
		db:                   db,
		exhibitionRepository: exhibitionRepository,
		activityRepository:   activityRepository,
		memberRepository:     memberRepository,
		cache:                cache,
		metrics:              metrics,
		now:                  time.Now,
	}
}

// today is the UTC date exhibitions ending on it are still open
func (s *ExhibitionService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ExhibitionService) ensureMember(ctx context.Context, db *gorm.DB, memberID uint32) error {
	exists, err := s.memberRepository.ExistsByID(ctx, db, memberID)
	if err != nil {
		return fmt.Errorf("회원 조회 실패: %w", err)
	}
	if !exists {
		return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, member.ErrMemberNotFound)
	}
	return nil
}

func (s *ExhibitionService) findExhibition(ctx context.Context, db *gorm.DB, exhibitionID uint32) (*model.Exhibition, error) {
	exhibition, err := s.exhibitionRepository.FindByID(ctx, db, exhibitionID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("전시회를 찾을 수 없습니다 exhibitionID=%d %w", exhibitionID, ErrExhibitionNotFound)
		}
		return nil, fmt.Errorf("전시회 조회 실패: %w", err)
	}
	return exhibition, nil
}

func (s *ExhibitionService) ensureExhibition(ctx context.Context, db *gorm.DB, exhibitionID uint32) error {
	exists, err := s.exhibitionRepository.ExistsByID(ctx, db, exhibitionID)
	if err != nil {
		return fmt.Errorf("전시회 조회 실패: %w", err)
	}
	if !exists {
		return fmt.Errorf("전시회를 찾을 수 없습니다 exhibitionID=%d %w", exhibitionID, ErrExhibitionNotFound)
	}
	return nil
}

func (s *ExhibitionService) CreateExhibition(ctx context.Context, info model.ExhibitionInfo) (*model.Exhibition, error) {
	exhibition := &model.Exhibition{Info: info}
	if err := s.exhibitionRepository.Create(ctx, s.db, exhibition); err != nil {
		if database.IsDuplicatedKey(err) {
			return nil, fmt.Errorf("이미 등록된 전시회 seq=%s %w", info.Seq, ErrInvalidExhibitionInfo)
		}
		return nil, fmt.Errorf("전시회 생성 실패: %w", err)
	}
	s.invalidateListings(ctx)
	return exhibition, nil
}

// CreateExhibitionList creates every new entry; null entries and already registered seqs are skipped.
func (s *ExhibitionService) CreateExhibitionList(ctx context.Context, request *ExhibitionListRequest) (*ExhibitionListResponse, error) {
	infos, err := toExhibitionInfos(request.Exhibitions)
	if err != nil {
		return nil, err
	}

	response := &ExhibitionListResponse{}
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.exhibitionRepository.FindInfosBySeqs(ctx, tx, seqsOf(infos))
		if err != nil {
			return fmt.Errorf("전시회 seq 조회 실패: %w", err)
		}

		for _, info := range infos {
			if info == nil {
				response.Skipped++
				continue
			}
			if _, ok := existing[info.Seq]; ok {
				response.Skipped++
				continue
			}

			exhibition := &model.Exhibition{Info: *info}
			if err := s.exhibitionRepository.Create(ctx, tx, exhibition); err != nil {
				return fmt.Errorf("전시회 생성 실패 seq=%s: %w", info.Seq, err)
			}
			existing[info.Seq] = &exhibition.Info
			response.Affected++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("전시회 일괄 등록", "created", response.Affected, "skipped", response.Skipped)
	s.invalidateListings(ctx)
	return response, nil
}

// UpdateExhibitionList updates infos matched by seq; unknown seqs are skipped.
func (s *ExhibitionService) UpdateExhibitionList(ctx context.Context, request *ExhibitionListRequest) (*ExhibitionListResponse, error) {
	infos, err := toExhibitionInfos(request.Exhibitions)
	if err != nil {
		return nil, err
	}

	response := &ExhibitionListResponse{}
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.exhibitionRepository.FindInfosBySeqs(ctx, tx, seqsOf(infos))
		if err != nil {
			return fmt.Errorf("전시회 seq 조회 실패: %w", err)
		}

		for _, info := range infos {
			if info == nil {
				response.Skipped++
				continue
			}
			found, ok := existing[info.Seq]
			if !ok {
				response.Skipped++
				continue
			}

			found.UpdateFrom(*info)
			if err := s.exhibitionRepository.SaveInfo(ctx, tx, found); err != nil {
				return fmt.Errorf("전시회 수정 실패 seq=%s: %w", info.Seq, err)
			}
			response.Affected++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("전시회 일괄 수정", "updated", response.Affected, "skipped", response.Skipped)
	s.invalidateListings(ctx)
	return response, nil
}

// GetExhibitionDetails records the member's first view of the exhibition.
func (s *ExhibitionService) GetExhibitionDetails(ctx context.Context, memberID, exhibitionID uint32) (*ExhibitionDetailsResponse, error) {
	var response *ExhibitionDetailsResponse
	var viewed bool

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.ensureMember(ctx, tx, memberID); err != nil {
			return err
		}

		exhibition, err := s.findExhibition(ctx, tx, exhibitionID)
		if err != nil {
			return err
		}

		hope, err := s.activityRepository.FindHope(ctx, tx, memberID, exhibitionID)
		if err != nil && !database.IsNotFound(err) {
			return fmt.Errorf("기대평 조회 실패: %w", err)
		}

		_, err = s.activityRepository.FindLike(ctx, tx, memberID, exhibitionID)
		if err != nil && !database.IsNotFound(err) {
			return fmt.Errorf("좋아요 조회 실패: %w", err)
		}
		isLike := err == nil

		viewed, err = s.activityRepository.CreateViewIfAbsent(ctx, tx, &model.ExhibitionView{
			MemberID:     memberID,
			ExhibitionID: exhibitionID,
		})
		if err != nil {
			return fmt.Errorf("조회 기록 실패: %w", err)
		}
		if viewed {
			if exhibition.Temperature, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID); err != nil {
				return err
			}
		}

		likeCount, err := s.activityRepository.CountLikes(ctx, tx, exhibitionID)
		if err != nil {
			return fmt.Errorf("좋아요 수 조회 실패: %w", err)
		}

		response = toExhibitionDetailsResponse(exhibition, likeCount, hope, isLike)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if viewed {
		s.metrics.IncExhibitionView()
	}
	return response, nil
}

// GetExhibitionPage lists not-ended exhibitions by temperature, 8 per page.
func (s *ExhibitionService) GetExhibitionPage(ctx context.Context, memberID uint32, pageNumber int) (*page.Page[ExhibitionSummary], error) {
	log := logger.FromContext(ctx)

	if err := s.ensureMember(ctx, s.db, memberID); err != nil {
		return nil, err
	}

	result, err := s.cache.GetPage(ctx, pageNumber)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn("전시회 페이지 캐시 조회 실패", "page", pageNumber, "error", err)
		}

		exhibitions, total, err := s.exhibitionRepository.FindPageByTemperature(
			ctx, s.db, s.today(), page.Offset(pageNumber, pageSize), pageSize)
		if err != nil {
			return nil, fmt.Errorf("전시회 페이지 조회 실패: %w", err)
		}

		p := page.New(toExhibitionSummaries(exhibitions), pageNumber, pageSize, total)
		// 범위를 벗어난 페이지는 캐시하지 않는다
		if pageNumber == 0 || pageNumber < p.TotalPages {
			if err := s.cache.SetPage(ctx, pageNumber, p); err != nil {
				log.Warn("전시회 페이지 캐시 저장 실패", "page", pageNumber, "error", err)
			}
		}
		result = &p
	}

	if err := s.fillIsLike(ctx, memberID, result.Content); err != nil {
		return nil, err
	}
	return result, nil
}

// GetTop3ByEndingDate returns the three open exhibitions that close soonest.
func (s *ExhibitionService) GetTop3ByEndingDate(ctx context.Context, memberID uint32) ([]ExhibitionSummary, error) {
	log := logger.FromContext(ctx)
	today := s.today()

	summaries, err := s.cache.GetEnding(ctx, today)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn("종료 임박 전시회 캐시 조회 실패", "error", err)
		}

		exhibitions, err := s.exhibitionRepository.FindTopByEndDate(ctx, s.db, today, endingLimit)
		if err != nil {
			return nil, fmt.Errorf("종료 임박 전시회 조회 실패: %w", err)
		}

		summaries = toExhibitionSummaries(exhibitions)
		if err := s.cache.SetEnding(ctx, today, summaries); err != nil {
			log.Warn("종료 임박 전시회 캐시 저장 실패", "error", err)
		}
	}

	if err := s.fillIsLike(ctx, memberID, summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *ExhibitionService) GetLikedExhibitions(ctx context.Context, memberID uint32) ([]ExhibitionSummary, error) {
	if err := s.ensureMember(ctx, s.db, memberID); err != nil {
		return nil, err
	}

	exhibitions, err := s.exhibitionRepository.FindLikedBy(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("좋아요한 전시회 조회 실패: %w", err)
	}

	summaries := toExhibitionSummaries(exhibitions)
	for i := range summaries {
		summaries[i].IsLike = true
	}
	return summaries, nil
}

// UpdateExhibitionTemperature recomputes the temperature from the rows visible to tx.
func (s *ExhibitionService) UpdateExhibitionTemperature(ctx context.Context, tx *gorm.DB, exhibitionID uint32) (float64, error) {
	likes, err := s.activityRepository.CountLikes(ctx, tx, exhibitionID)
	if err != nil {
		return 0, fmt.Errorf("좋아요 수 조회 실패: %w", err)
	}
	views, err := s.activityRepository.CountViews(ctx, tx, exhibitionID)
	if err != nil {
		return 0, fmt.Errorf("조회 수 조회 실패: %w", err)
	}
	hopes, err := s.activityRepository.HopesOf(ctx, tx, exhibitionID)
	if err != nil {
		return 0, fmt.Errorf("기대평 조회 실패: %w", err)
	}

	temperature := CalculateTemperature(likes, views, hopes)
	if err := s.exhibitionRepository.UpdateTemperature(ctx, tx, exhibitionID, temperature); err != nil {
		return 0, fmt.Errorf("전시회 온도 갱신 실패: %w", err)
	}
	return temperature, nil
}

func (s *ExhibitionService) fillIsLike(ctx context.Context, memberID uint32, summaries []ExhibitionSummary) error {
	ids := make([]uint32, 0, len(summaries))
	for _, summary := range summaries {
		ids = append(ids, summary.ID)
	}

	liked, err := s.activityRepository.LikedExhibitionIDs(ctx, s.db, memberID, ids)
	if err != nil {
		return fmt.Errorf("좋아요 여부 조회 실패: %w", err)
	}
	for i := range summaries {
		summaries[i].IsLike = liked[summaries[i].ID]
	}
	return nil
}

func (s *ExhibitionService) invalidateListings(ctx context.Context) {
	if err := s.cache.InvalidateListings(ctx); err != nil {
		logger.FromContext(ctx).Warn("전시회 목록 캐시 삭제 실패", "error", err)
	}
}

func seqsOf(infos []*model.ExhibitionInfo) []string {
	seqs := make([]string, 0, len(infos))
	for _, info := range infos {
		if info != nil {
			seqs = append(seqs, info.Seq)
		}
	}
	return seqs
}
