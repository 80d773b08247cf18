package exhibition

import (
	"context"
	"fmt"

	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// metric action labels
const (
	actionAdd    = "add"
	actionUpdate = "update"
	actionDelete = "delete"
)

func (s *ExhibitionService) AddExhibitionLike(ctx context.Context, memberID, exhibitionID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.ensureMember(ctx, tx, memberID); err != nil {
			return err
		}
		if err := s.ensureExhibition(ctx, tx, exhibitionID); err != nil {
			return err
		}

		_, err := s.activityRepository.FindLike(ctx, tx, memberID, exhibitionID)
		if err == nil {
			return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrExistExhibitionLike)
		}
		if !database.IsNotFound(err) {
			return fmt.Errorf("좋아요 조회 실패: %w", err)
		}

		like := &model.ExhibitionLike{MemberID: memberID, ExhibitionID: exhibitionID}
		if err := s.activityRepository.CreateLike(ctx, tx, like); err != nil {
			if database.IsDuplicatedKey(err) {
				return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrExistExhibitionLike)
			}
			return fmt.Errorf("좋아요 저장 실패: %w", err)
		}

		_, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.IncExhibitionLike(actionAdd)
	return nil
}

func (s *ExhibitionService) DeleteExhibitionLike(ctx context.Context, memberID, exhibitionID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		like, err := s.activityRepository.FindLike(ctx, tx, memberID, exhibitionID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrNotExistExhibitionLike)
			}
			return fmt.Errorf("좋아요 조회 실패: %w", err)
		}

		if err := s.activityRepository.DeleteLike(ctx, tx, like); err != nil {
			return fmt.Errorf("좋아요 삭제 실패: %w", err)
		}

		_, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.IncExhibitionLike(actionDelete)
	return nil
}

func (s *ExhibitionService) AddExhibitionHope(ctx context.Context, memberID, exhibitionID uint32, hopeIndex int) error {
	hope, ok := model.HopeFromIndex(hopeIndex)
	if !ok {
		return fmt.Errorf("hopeIndex=%d %w", hopeIndex, ErrHopeIndexNotFound)
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.ensureMember(ctx, tx, memberID); err != nil {
			return err
		}
		if err := s.ensureExhibition(ctx, tx, exhibitionID); err != nil {
			return err
		}

		_, err := s.activityRepository.FindHope(ctx, tx, memberID, exhibitionID)
		if err == nil {
			return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrExistExhibitionHope)
		}
		if !database.IsNotFound(err) {
			return fmt.Errorf("기대평 조회 실패: %w", err)
		}

		entity := &model.ExhibitionHope{MemberID: memberID, ExhibitionID: exhibitionID, Hope: hope}
		if err := s.activityRepository.CreateHope(ctx, tx, entity); err != nil {
			if database.IsDuplicatedKey(err) {
				return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrExistExhibitionHope)
			}
			return fmt.Errorf("기대평 저장 실패: %w", err)
		}

		_, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.IncExhibitionHope(actionAdd)
	return nil
}

func (s *ExhibitionService) UpdateExhibitionHope(ctx context.Context, memberID, exhibitionID uint32, hopeIndex int) error {
	hope, ok := model.HopeFromIndex(hopeIndex)
	if !ok {
		return fmt.Errorf("hopeIndex=%d %w", hopeIndex, ErrHopeIndexNotFound)
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		entity, err := s.activityRepository.FindHope(ctx, tx, memberID, exhibitionID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrNotExistExhibitionHope)
			}
			return fmt.Errorf("기대평 조회 실패: %w", err)
		}
		if entity.Hope == hope {
			return fmt.Errorf("hope=%s %w", hope, ErrSameExhibitionHope)
		}

		if err := s.activityRepository.UpdateHope(ctx, tx, entity, hope); err != nil {
			return fmt.Errorf("기대평 수정 실패: %w", err)
		}

		_, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.IncExhibitionHope(actionUpdate)
	return nil
}

func (s *ExhibitionService) DeleteExhibitionHope(ctx context.Context, memberID, exhibitionID uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		entity, err := s.activityRepository.FindHope(ctx, tx, memberID, exhibitionID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("memberID=%d exhibitionID=%d %w", memberID, exhibitionID, ErrNotExistExhibitionHope)
			}
			return fmt.Errorf("기대평 조회 실패: %w", err)
		}

		if err := s.activityRepository.DeleteHope(ctx, tx, entity); err != nil {
			return fmt.Errorf("기대평 삭제 실패: %w", err)
		}

		_, err = s.UpdateExhibitionTemperature(ctx, tx, exhibitionID)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.IncExhibitionHope(actionDelete)
	return nil
}

// RemoveMemberActivity deletes the member's likes, hopes and views and recomputes the affected temperatures.
func (s *ExhibitionService) RemoveMemberActivity(ctx context.Context, tx *gorm.DB, memberID uint32) error {
	exhibitionIDs, err := s.activityRepository.ExhibitionIDsTouchedBy(ctx, tx, memberID)
	if err != nil {
		return fmt.Errorf("회원 활동 조회 실패: %w", err)
	}

	if err := s.activityRepository.DeleteByMember(ctx, tx, memberID); err != nil {
		return fmt.Errorf("회원 활동 삭제 실패: %w", err)
	}

	for _, exhibitionID := range exhibitionIDs {
		if _, err := s.UpdateExhibitionTemperature(ctx, tx, exhibitionID); err != nil {
			return err
		}
	}

	logger.FromContext(ctx).Debug("전시회 활동 삭제", "member_id", memberID, "exhibitions", len(exhibitionIDs))
	return nil
}
