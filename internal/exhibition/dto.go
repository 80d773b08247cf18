package exhibition

import (
	"github.com/artfriendly/go-api-server/internal/model"
)

const dateLayout = "2006-01-02"

type PageRequest struct {
	Page int `form:"page" binding:"min=0,max=10000"`
}

// HopeIndex is a pointer so an explicit 0 reaches the index check instead of failing binding
type HopeRequest struct {
	HopeIndex *int `json:"hopeIndex" binding:"required"`
}

// ExhibitionInfoRequest is validated by toExhibitionInfo; bulk entries may be null
type ExhibitionInfoRequest struct {
	Seq       string `json:"seq"`
	Title     string `json:"title"`
	Place     string `json:"place"`
	Area      string `json:"area"`
	Realm     string `json:"realm"`
	Price     string `json:"price"`
	Phone     string `json:"phone"`
	ImageURL  string `json:"imageUrl"`
	DetailURL string `json:"detailUrl"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ExhibitionListRequest is the admin bulk payload; null entries are skipped
type ExhibitionListRequest struct {
	Exhibitions []*ExhibitionInfoRequest `json:"exhibitions" binding:"required"`
}

type ExhibitionListResponse struct {
	Affected int `json:"affected"`
	Skipped  int `json:"skipped"`
}

type ExhibitionSummary struct {
	ID          uint32  `json:"id"`
	Title       string  `json:"title"`
	Place       string  `json:"place"`
	Area        string  `json:"area"`
	ImageURL    string  `json:"imageUrl"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Temperature float64 `json:"temperature"`
	IsLike      bool    `json:"isLike"`
}

type ExhibitionDetailsResponse struct {
	ID          uint32  `json:"id"`
	Seq         string  `json:"seq"`
	Title       string  `json:"title"`
	Place       string  `json:"place"`
	Area        string  `json:"area"`
	Realm       string  `json:"realm"`
	Price       string  `json:"price"`
	Phone       string  `json:"phone"`
	ImageURL    string  `json:"imageUrl"`
	DetailURL   string  `json:"detailUrl"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Temperature float64 `json:"temperature"`
	LikeCount   int64   `json:"likeCount"`
	Hope        *string `json:"hope"` // 회원이 남긴 기대평 메시지, 없으면 null
	IsLike      bool    `json:"isLike"`
}

type PopularExhibitionResponse struct {
	Rank        int     `json:"rank"`
	RankChange  string  `json:"rankChange"`
	ID          uint32  `json:"id"`
	Title       string  `json:"title"`
	Place       string  `json:"place"`
	ImageURL    string  `json:"imageUrl"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Temperature float64 `json:"temperature"`
}

func toExhibitionSummary(e *model.Exhibition) ExhibitionSummary {
	return ExhibitionSummary{
		ID:          e.ID,
		Title:       e.Info.Title,
		Place:       e.Info.Place,
		Area:        e.Info.Area,
		ImageURL:    e.Info.ImageURL,
		StartDate:   e.Info.StartDate.Format(dateLayout),
		EndDate:     e.Info.EndDate.Format(dateLayout),
		Temperature: e.Temperature,
	}
}

func toExhibitionSummaries(list []model.Exhibition) []ExhibitionSummary {
	summaries := make([]ExhibitionSummary, 0, len(list))
	for i := range list {
		summaries = append(summaries, toExhibitionSummary(&list[i]))
	}
	return summaries
}

func toExhibitionDetailsResponse(e *model.Exhibition, likeCount int64, hope *model.ExhibitionHope, isLike bool) *ExhibitionDetailsResponse {
	response := &ExhibitionDetailsResponse{
		ID:          e.ID,
		Seq:         e.Info.Seq,
		Title:       e.Info.Title,
		Place:       e.Info.Place,
		Area:        e.Info.Area,
		Realm:       e.Info.Realm,
		Price:       e.Info.Price,
		Phone:       e.Info.Phone,
		ImageURL:    e.Info.ImageURL,
		DetailURL:   e.Info.DetailURL,
		StartDate:   e.Info.StartDate.Format(dateLayout),
		EndDate:     e.Info.EndDate.Format(dateLayout),
		Temperature: e.Temperature,
		LikeCount:   likeCount,
		IsLike:      isLike,
	}
	if hope != nil {
		message := hope.Hope.Message()
		response.Hope = &message
	}
	return response
}

func toPopularExhibitionResponse(e *model.Exhibition, rank int, rankChange string) PopularExhibitionResponse {
	return PopularExhibitionResponse{
		Rank:        rank,
		RankChange:  rankChange,
		ID:          e.ID,
		Title:       e.Info.Title,
		Place:       e.Info.Place,
		ImageURL:    e.Info.ImageURL,
		StartDate:   e.Info.StartDate.Format(dateLayout),
		EndDate:     e.Info.EndDate.Format(dateLayout),
		Temperature: e.Temperature,
	}
}
