package model

// Hope is a member's five-level sentiment toward an exhibition
type Hope string

const (
	HopeWantToSee   Hope = "WANT_TO_SEE"
	HopeGood        Hope = "GOOD"
	HopeInteresting Hope = "INTERESTING"
	HopeSoSo        Hope = "SO_SO"
	HopeNotGood     Hope = "NOT_GOOD"
)

// hopes is indexed by hope index - 1
var hopes = [...]Hope{HopeWantToSee, HopeGood, HopeInteresting, HopeSoSo, HopeNotGood}

var hopeMessages = map[Hope]string{
	HopeWantToSee:   "보고 싶어요",
	HopeGood:        "좋아요",
	HopeInteresting: "흥미로워요",
	HopeSoSo:        "그저 그래요",
	HopeNotGood:     "별로예요",
}

var hopeWeights = map[Hope]float64{
	HopeWantToSee:   1.0,
	HopeGood:        0.7,
	HopeInteresting: 0.5,
	HopeSoSo:        0.2,
	HopeNotGood:     -0.5,
}

// HopeFromIndex maps 1..5 to a Hope
func HopeFromIndex(index int) (Hope, bool) {
	if index < 1 || index > len(hopes) {
		return "", false
	}
	return hopes[index-1], true
}

// Hopes returns every hope level in index order
func Hopes() []Hope {
	return hopes[:]
}

// Message is the text shown to members
func (h Hope) Message() string {
	return hopeMessages[h]
}

// Weight is the hope's contribution to the exhibition temperature
func (h Hope) Weight() float64 {
	return hopeWeights[h]
}
