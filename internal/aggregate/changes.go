package aggregate

import (
	"strings"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// DetectStoreChanges classifies non-Online records into new, closed, and
// renovated name lists. The three classifications are mutually exclusive:
//
//	신규:   당월 매출 있음, 전년 없음
//	철수:   전년 매출 있음, 당월 없음, 폐점 플래그 없음
//	리뉴얼: 전년 매출 있음, 당월 없음, 폐점 플래그 있음
//
// Records with sales in both periods, or in neither, are excluded.
//
// names 는 기준정보의 매장 코드→공식 매장명 테이블이다. 테이블에 없으면
// 원본 매장명에서 선행 코드 토큰을 떼어 표시명으로 쓴다.
func DetectStoreChanges(records map[string]model.StoreRecord, names map[string]string) *model.StoreChanges {
	changes := &model.StoreChanges{
		NewStores:       []string{},
		ClosedStores:    []string{},
		RenovatedStores: []string{},
	}

	for _, code := range sortedCodes(records) {
		r := records[code]
		if r.Channel == model.ChannelOnline {
			continue
		}
		current := r.CurrentNetSales()
		previous := r.PreviousNetSales()

		name := resolveStoreName(r, names)
		switch {
		case current > 0 && previous <= 0:
			changes.NewStores = append(changes.NewStores, name)
		case previous > 0 && current <= 0 && !r.Closed:
			changes.ClosedStores = append(changes.ClosedStores, name)
		case previous > 0 && current <= 0 && r.Closed:
			changes.RenovatedStores = append(changes.RenovatedStores, name)
		}
	}
	return changes
}

func resolveStoreName(r model.StoreRecord, names map[string]string) string {
	if name, ok := names[r.StoreCode]; ok && name != "" {
		return name
	}
	return stripCodeToken(r.StoreName)
}

// stripCodeToken drops a leading alphanumeric code token from a raw store
// name ("D123 롯데본점" → "롯데본점").
func stripCodeToken(name string) string {
	token, rest, found := strings.Cut(name, " ")
	if !found || rest == "" {
		return name
	}
	for _, r := range token {
		isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlnum {
			return name
		}
	}
	return rest
}
