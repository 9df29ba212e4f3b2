// internal/model/rank.go
package model

// Rank はポイント合計から決まる階級
type Rank string

const (
	RankStudent   Rank = "Student"
	RankCadet     Rank = "Cadet"
	RankCrew      Rank = "Crew"
	RankProCrew   Rank = "Pro Crew"
	RankEliteCrew Rank = "Elite Crew"
	RankCaptain   Rank = "Captain"
)

type rankThreshold struct {
	Rank      Rank
	MinPoints int
}

// rankTable は低い順。閾値ちょうどは上位の階級に属する。
var rankTable = []rankThreshold{
	{RankStudent, 0},
	{RankCadet, 1000},
	{RankCrew, 2000},
	{RankProCrew, 3000},
	{RankEliteCrew, 4000},
	{RankCaptain, 5000},
}

// CalculateRank は上位の閾値から順に評価して階級を返す
func CalculateRank(points int) Rank {
	for i := len(rankTable) - 1; i >= 0; i-- {
		if points >= rankTable[i].MinPoints {
			return rankTable[i].Rank
		}
	}
	return RankStudent
}

// PointsToNextRank は次の階級までの残りポイント。Captain なら 0。
func PointsToNextRank(points int) int {
	current := CalculateRank(points)
	for i, rt := range rankTable {
		if rt.Rank != current {
			continue
		}
		if i == len(rankTable)-1 {
			return 0
		}
		return rankTable[i+1].MinPoints - points
	}
	return 0
}

// Level は階級の序列 (Student=0 ... Captain=5)
func (r Rank) Level() int {
	for i, rt := range rankTable {
		if rt.Rank == r {
			return i
		}
	}
	return -1
}
