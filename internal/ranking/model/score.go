package model

// ComponentScores: 가중 합성 점수의 입력이 되는 5개 구성 점수 (각 0–100)
type ComponentScores struct {
	Sales        float64
	OrderCount   float64
	ConfirmSpeed float64
	CancelRate   float64
	DataQuality  float64
}

// SellerScore: 한 번의 랭킹 계산에서 파생되는 셀러 점수.
// 매 실행마다 새로 계산되며 제자리 수정 없이 통째로 교체된다.
type SellerScore struct {
	SellerID        string
	SalesScore      int64
	OrderCountScore int64
	ActivityScore   int64
	TotalScore      float64
	Rank            int // RankTracker가 부여 (1..N dense)
}
