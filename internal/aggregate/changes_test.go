package aggregate

import (
	"testing"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectStoreChanges_Classification(t *testing.T) {
	records := map[string]model.StoreRecord{
		"N1": {StoreCode: "N1", StoreName: "D201 신규점", Channel: model.ChannelRetail, Current: snapshot(400)},
		"C1": {StoreCode: "C1", StoreName: "D105 철수점", Channel: model.ChannelOutlet, Previous: snapshot(800)},
		"R1": {StoreCode: "R1", StoreName: "D077 리뉴얼점", Channel: model.ChannelRetail, Closed: true, Previous: snapshot(600)},
		"K1": {StoreCode: "K1", StoreName: "D001 기존점", Channel: model.ChannelRetail, Current: snapshot(500), Previous: snapshot(450)},
		"O1": {StoreCode: "O1", StoreName: "자사몰", Channel: model.ChannelOnline, Current: snapshot(9000)},
	}

	changes := DetectStoreChanges(records, nil)

	assert.Equal(t, []string{"신규점"}, changes.NewStores)
	assert.Equal(t, []string{"철수점"}, changes.ClosedStores)
	assert.Equal(t, []string{"리뉴얼점"}, changes.RenovatedStores)
}

func TestDetectStoreChanges_ClosedOutletScenario(t *testing.T) {
	// 당월 매출 0, 전년 800, 폐점 플래그 없음 → 철수 목록
	records := map[string]model.StoreRecord{
		"B": {StoreCode: "B", StoreName: "B001 목동아울렛", Channel: model.ChannelOutlet,
			Current: snapshot(0), Previous: snapshot(800)},
	}

	changes := DetectStoreChanges(records, nil)
	assert.Equal(t, []string{"목동아울렛"}, changes.ClosedStores)

	// 같은 레코드는 영업 매장 분류에서는 제외된다
	active := ClassifyActiveStores(records, nil)
	assert.Empty(t, active)
}

func TestDetectStoreChanges_NameLookupTable(t *testing.T) {
	records := map[string]model.StoreRecord{
		"N1": {StoreCode: "N1", StoreName: "D201 신규점", Channel: model.ChannelRetail, Current: snapshot(100)},
	}
	names := map[string]string{"N1": "롯데백화점 본점"}

	changes := DetectStoreChanges(records, names)
	assert.Equal(t, []string{"롯데백화점 본점"}, changes.NewStores)
}

func TestStripCodeToken(t *testing.T) {
	assert.Equal(t, "롯데본점", stripCodeToken("D123 롯데본점"))
	assert.Equal(t, "현대 판교점", stripCodeToken("A01 현대 판교점"))
	assert.Equal(t, "코드없는점", stripCodeToken("코드없는점"))
	// 선행 토큰이 코드 형태가 아니면 그대로 둔다
	assert.Equal(t, "신세계 강남점", stripCodeToken("신세계 강남점"))
}
