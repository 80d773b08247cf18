package dambyeolag

import (
	"time"

	"github.com/artfriendly/go-api-server/internal/model"
)

type CreateDambyeolagRequest struct {
	ExhibitionID uint32 `json:"exhibitionId" binding:"required"`
	Content      string `json:"content" binding:"required,min=1,max=500"`
}

type PageRequest struct {
	Page         int    `form:"page" binding:"min=0,max=10000"`
	ExhibitionID uint32 `form:"exhibitionId" binding:"required"`
	SortType     string `form:"sortType" binding:"sorttype"`
}

type WriterResponse struct {
	MemberID uint32 `json:"memberId"`
	Nickname string `json:"nickname"`
	ImageURL string `json:"imageUrl"`
}

type DambyeolagResponse struct {
	ID            uint32         `json:"id"`
	Content       string         `json:"content"`
	Writer        WriterResponse `json:"writer"`
	BookmarkCount int64          `json:"bookmarkCount"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type DambyeolagDetailsResponse struct {
	ID              uint32         `json:"id"`
	Content         string         `json:"content"`
	Writer          WriterResponse `json:"writer"`
	ExhibitionID    uint32         `json:"exhibitionId"`
	ExhibitionTitle string         `json:"exhibitionTitle"`
	BookmarkCount   int64          `json:"bookmarkCount"`
	IsBookmarked    bool           `json:"isBookmarked"`
	IsMine          bool           `json:"isMine"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type CreateDambyeolagResponse struct {
	ID uint32 `json:"id"`
}

func toWriterResponse(m *model.Member) WriterResponse {
	return WriterResponse{
		MemberID: m.ID,
		Nickname: m.Nickname,
		ImageURL: m.Image.ImageURL,
	}
}

func toDambyeolagResponse(d *model.Dambyeolag, bookmarkCount int64) DambyeolagResponse {
	return DambyeolagResponse{
		ID:            d.ID,
		Content:       d.Content,
		Writer:        toWriterResponse(&d.Member),
		BookmarkCount: bookmarkCount,
		CreatedAt:     d.CreatedAt,
	}
}

func toDambyeolagDetailsResponse(d *model.Dambyeolag, memberID uint32, bookmarkCount int64, isBookmarked bool) *DambyeolagDetailsResponse {
	return &DambyeolagDetailsResponse{
		ID:              d.ID,
		Content:         d.Content,
		Writer:          toWriterResponse(&d.Member),
		ExhibitionID:    d.ExhibitionID,
		ExhibitionTitle: d.Exhibition.Info.Title,
		BookmarkCount:   bookmarkCount,
		IsBookmarked:    isBookmarked,
		IsMine:          d.IsOwnedBy(memberID),
		CreatedAt:       d.CreatedAt,
	}
}
