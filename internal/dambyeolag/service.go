package dambyeolag

import (
	"context"
	"fmt"

	"github.com/artfriendly/go-api-server/internal/exhibition"
	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/artfriendly/go-api-server/internal/shared/page"
	"github.com/artfriendly/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

const pageSize = 10

// metric action labels
const (
	actionCreate = "create"
	actionDelete = "delete"
)

type DambyeolagService struct {
	db                   *gorm.DB
	dambyeolagRepository *DambyeolagRepository
	exhibitionRepository *exhibition.ExhibitionRepository
	memberRepository     *member.MemberRepository
	metrics              *metrics.Metrics
}

func NewDambyeolagService(
	db *gorm.DB,
	dambyeolagRepository *DambyeolagRepository,
	exhibitionRepository *exhibition.ExhibitionRepository,
	memberRepository *member.MemberRepository,
	metrics *metrics.Metrics,
) *DambyeolagService {
	return &DambyeolagService{
		db:                   db,
		dambyeolagRepository: dambyeolagRepository,
		exhibitionRepository: exhibitionRepository,
		memberRepository:     memberRepository,
		metrics:              metrics,
	}
}

func (s *DambyeolagService) findDambyeolag(ctx context.Context, db *gorm.DB, dambyeolagID uint32) (*model.Dambyeolag, error) {
	dambyeolag, err := s.dambyeolagRepository.FindByID(ctx, db, dambyeolagID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("담벼락을 찾을 수 없습니다 dambyeolagID=%d %w", dambyeolagID, ErrDambyeolagNotFound)
		}
		return nil, fmt.Errorf("담벼락 조회 실패: %w", err)
	}
	return dambyeolag, nil
}

func (s *DambyeolagService) ensureExhibition(ctx context.Context, db *gorm.DB, exhibitionID uint32) error {
	exists, err := s.exhibitionRepository.ExistsByID(ctx, db, exhibitionID)
	if err != nil {
		return fmt.Errorf("전시회 조회 실패: %w", err)
	}
	if !exists {
		return fmt.Errorf("전시회를 찾을 수 없습니다 exhibitionID=%d %w", exhibitionID, exhibition.ErrExhibitionNotFound)
	}
	return nil
}

func (s *DambyeolagService) ensureMember(ctx context.Context, db *gorm.DB, memberID uint32) error {
	exists, err := s.memberRepository.ExistsByID(ctx, db, memberID)
	if err != nil {
		return fmt.Errorf("회원 조회 실패: %w", err)
	}
	if !exists {
		return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, member.ErrMemberNotFound)
	}
	return nil
}

func (s *DambyeolagService) GetDetails(ctx context.Context, memberID, dambyeolagID uint32) (*DambyeolagDetailsResponse, error) {
	dambyeolag, err := s.findDambyeolag(ctx, s.db, dambyeolagID)
	if err != nil {
		return nil, err
	}

	counts, err := s.dambyeolagRepository.BookmarkCounts(ctx, s.db, []uint32{dambyeolagID})
	if err != nil {
		return nil, fmt.Errorf("북마크 수 조회 실패: %w", err)
	}

	_, err = s.dambyeolagRepository.FindBookmark(ctx, s.db, memberID, dambyeolagID)
	if err != nil && !database.IsNotFound(err) {
		return nil, fmt.Errorf("북마크 조회 실패: %w", err)
	}

	return toDambyeolagDetailsResponse(dambyeolag, memberID, counts[dambyeolagID], err == nil), nil
}

// GetPage lists an exhibition's walls, 10 per page, latest first unless sortType is popular.
func (s *DambyeolagService) GetPage(ctx context.Context, request *PageRequest) (*page.Page[DambyeolagResponse], error) {
	if err := s.ensureExhibition(ctx, s.db, request.ExhibitionID); err != nil {
		return nil, err
	}

	sortType := request.SortType
	if sortType == "" {
		sortType = validator.SortLatest
	}

	dambyeolags, total, err := s.dambyeolagRepository.FindPage(
		ctx, s.db, request.ExhibitionID, sortType, page.Offset(request.Page, pageSize), pageSize)
	if err != nil {
		return nil, fmt.Errorf("담벼락 목록 조회 실패: %w", err)
	}

	content, err := s.withBookmarkCounts(ctx, dambyeolags)
	if err != nil {
		return nil, err
	}

	result := page.New(content, request.Page, pageSize, total)
	return &result, nil
}

func (s *DambyeolagService) Create(ctx context.Context, memberID uint32, request *CreateDambyeolagRequest) (*CreateDambyeolagResponse, error) {
	var created *model.Dambyeolag

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.ensureMember(ctx, tx, memberID); err != nil {
			return err
		}
		if err := s.ensureExhibition(ctx, tx, request.ExhibitionID); err != nil {
			return err
		}

		created = &model.Dambyeolag{
			MemberID:     memberID,
			ExhibitionID: request.ExhibitionID,
			Content:      request.Content,
		}
		if err := s.dambyeolagRepository.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("담벼락 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncDambyeolag(actionCreate)
	logger.FromContext(ctx).Info("담벼락 작성", "dambyeolag_id", created.ID, "exhibition_id", created.ExhibitionID)
	return &CreateDambyeolagResponse{ID: created.ID}, nil
}

// Delete removes the wall with its bookmarks; only the writer may delete it.
func (s *DambyeolagService) Delete(ctx context.Context, memberID, dambyeolagID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		dambyeolag, err := s.findDambyeolag(ctx, tx, dambyeolagID)
		if err != nil {
			return err
		}
		if !dambyeolag.IsOwnedBy(memberID) {
			return fmt.Errorf("memberID=%d dambyeolagID=%d %w", memberID, dambyeolagID, ErrNotDambyeolagOwner)
		}

		if err := s.dambyeolagRepository.DeleteByIDs(ctx, tx, []uint32{dambyeolagID}); err != nil {
			return fmt.Errorf("담벼락 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncDambyeolag(actionDelete)
	return nil
}

func (s *DambyeolagService) AddBookmark(ctx context.Context, memberID, dambyeolagID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.ensureMember(ctx, tx, memberID); err != nil {
			return err
		}
		if _, err := s.findDambyeolag(ctx, tx, dambyeolagID); err != nil {
			return err
		}

		_, err := s.dambyeolagRepository.FindBookmark(ctx, tx, memberID, dambyeolagID)
		if err == nil {
			return fmt.Errorf("memberID=%d dambyeolagID=%d %w", memberID, dambyeolagID, ErrExistBookmark)
		}
		if !database.IsNotFound(err) {
			return fmt.Errorf("북마크 조회 실패: %w", err)
		}

		bookmark := &model.DambyeolagBookmark{MemberID: memberID, DambyeolagID: dambyeolagID}
		if err := s.dambyeolagRepository.CreateBookmark(ctx, tx, bookmark); err != nil {
			if database.IsDuplicatedKey(err) {
				return fmt.Errorf("memberID=%d dambyeolagID=%d %w", memberID, dambyeolagID, ErrExistBookmark)
			}
			return fmt.Errorf("북마크 저장 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncBookmark(actionCreate)
	return nil
}

func (s *DambyeolagService) DeleteBookmark(ctx context.Context, memberID, dambyeolagID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		bookmark, err := s.dambyeolagRepository.FindBookmark(ctx, tx, memberID, dambyeolagID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("memberID=%d dambyeolagID=%d %w", memberID, dambyeolagID, ErrBookmarkNotFound)
			}
			return fmt.Errorf("북마크 조회 실패: %w", err)
		}

		if err := s.dambyeolagRepository.DeleteBookmark(ctx, tx, bookmark); err != nil {
			return fmt.Errorf("북마크 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncBookmark(actionDelete)
	return nil
}

func (s *DambyeolagService) DeleteBookmarksByMember(ctx context.Context, memberID uint32) error {
	deleted, err := s.dambyeolagRepository.DeleteBookmarksByMember(ctx, s.db, memberID)
	if err != nil {
		return fmt.Errorf("회원 북마크 삭제 실패: %w", err)
	}

	logger.FromContext(ctx).Debug("회원 북마크 삭제", "member_id", memberID, "count", deleted)
	return nil
}

func (s *DambyeolagService) GetBookmarked(ctx context.Context, memberID uint32) ([]DambyeolagResponse, error) {
	dambyeolags, err := s.dambyeolagRepository.FindBookmarkedBy(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("북마크한 담벼락 조회 실패: %w", err)
	}
	return s.withBookmarkCounts(ctx, dambyeolags)
}

// RemoveMemberActivity deletes the member's bookmarks and walls, including other members' bookmarks on those walls.
func (s *DambyeolagService) RemoveMemberActivity(ctx context.Context, tx *gorm.DB, memberID uint32) error {
	if _, err := s.dambyeolagRepository.DeleteBookmarksByMember(ctx, tx, memberID); err != nil {
		return fmt.Errorf("회원 북마크 삭제 실패: %w", err)
	}

	ids, err := s.dambyeolagRepository.FindIDsByMember(ctx, tx, memberID)
	if err != nil {
		return fmt.Errorf("회원 담벼락 조회 실패: %w", err)
	}
	if err := s.dambyeolagRepository.DeleteByIDs(ctx, tx, ids); err != nil {
		return fmt.Errorf("회원 담벼락 삭제 실패: %w", err)
	}
	return nil
}

func (s *DambyeolagService) withBookmarkCounts(ctx context.Context, dambyeolags []model.Dambyeolag) ([]DambyeolagResponse, error) {
	ids := make([]uint32, 0, len(dambyeolags))
	for _, d := range dambyeolags {
		ids = append(ids, d.ID)
	}

	counts, err := s.dambyeolagRepository.BookmarkCounts(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("북마크 수 조회 실패: %w", err)
	}

	responses := make([]DambyeolagResponse, 0, len(dambyeolags))
	for i := range dambyeolags {
		responses = append(responses, toDambyeolagResponse(&dambyeolags[i], counts[dambyeolags[i].ID]))
	}
	return responses, nil
}
