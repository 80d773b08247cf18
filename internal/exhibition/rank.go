package exhibition

import "strconv"

const rankNew = "new"

// RankChange compares the current rank with the previous ranking.
// A positive value means the exhibition moved up.
func RankChange(previous map[uint32]int, exhibitionID uint32, currentRank int) string {
	previousRank, ok := previous[exhibitionID]
	if !ok {
		return rankNew
	}
	return strconv.Itoa(previousRank - currentRank)
}

func rankIndex(ranking []PopularExhibitionResponse) map[uint32]int {
	index := make(map[uint32]int, len(ranking))
	for _, r := range ranking {
		index[r.ID] = r.Rank
	}
	return index
}
