package exhibition

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/artfriendly/go-api-server/internal/model"
)

const (
	maxSeqLength   = 50
	maxTitleLength = 500
)

// toExhibitionInfo parses request dates in UTC
func toExhibitionInfo(req *ExhibitionInfoRequest) (model.ExhibitionInfo, error) {
	seq := strings.TrimSpace(req.Seq)
	title := strings.TrimSpace(req.Title)
	if seq == "" || title == "" {
		return model.ExhibitionInfo{}, fmt.Errorf("seq/title 누락 %w", ErrInvalidExhibitionInfo)
	}
	if utf8.RuneCountInString(seq) > maxSeqLength || utf8.RuneCountInString(title) > maxTitleLength {
		return model.ExhibitionInfo{}, fmt.Errorf("seq=%s 길이 초과 %w", seq, ErrInvalidExhibitionInfo)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return model.ExhibitionInfo{}, fmt.Errorf("seq=%s startDate=%s %w", seq, req.StartDate, ErrInvalidExhibitionInfo)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return model.ExhibitionInfo{}, fmt.Errorf("seq=%s endDate=%s %w", seq, req.EndDate, ErrInvalidExhibitionInfo)
	}
	if end.Before(start) {
		return model.ExhibitionInfo{}, fmt.Errorf("seq=%s 종료일이 시작일보다 빠름 %w", seq, ErrInvalidExhibitionInfo)
	}

	return model.ExhibitionInfo{
		Seq:       seq,
		Title:     title,
		Place:     req.Place,
		Area:      req.Area,
		Realm:     req.Realm,
		Price:     req.Price,
		Phone:     req.Phone,
		ImageURL:  req.ImageURL,
		DetailURL: req.DetailURL,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// toExhibitionInfos converts every non-nil entry, failing on the first invalid one
func toExhibitionInfos(reqs []*ExhibitionInfoRequest) ([]*model.ExhibitionInfo, error) {
	infos := make([]*model.ExhibitionInfo, 0, len(reqs))
	for _, req := range reqs {
		if req == nil {
			infos = append(infos, nil)
			continue
		}
		info, err := toExhibitionInfo(req)
		if err != nil {
			return nil, err
		}
		infos = append(infos, &info)
	}
	return infos, nil
}
