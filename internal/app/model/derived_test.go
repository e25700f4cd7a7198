package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYoy_SentinelLaw(t *testing.T) {
	// 전년 0, 당년 있음 → 반드시 신규 센티널, 절대 0 이나 100 이 아님
	y := NewYoy(500, 0)
	assert.True(t, y.New)
	assert.NotEqual(t, 0.0, y.Ord())

	// 전년도 당년도 0 → 0
	assert.Equal(t, Yoy{}, NewYoy(0, 0))

	// 일반 케이스
	assert.Equal(t, 200.0, NewYoy(1000, 500).Value)
}

func TestYoy_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Yoy{New: true})
	require.NoError(t, err)
	assert.Equal(t, `"new"`, string(data))

	data, err = json.Marshal(Yoy{Value: 123.4})
	require.NoError(t, err)
	assert.Equal(t, `123.4`, string(data))
}

func TestYoy_UnmarshalJSON(t *testing.T) {
	var y Yoy
	require.NoError(t, json.Unmarshal([]byte(`"new"`), &y))
	assert.True(t, y.New)

	require.NoError(t, json.Unmarshal([]byte(`87.5`), &y))
	assert.False(t, y.New)
	assert.Equal(t, 87.5, y.Value)
}

func TestPeriodCommentary_SectionMap(t *testing.T) {
	c := &PeriodCommentary{Sections: `{"summary":"11월 실적 양호","risk":"재고 증가"}`}
	sections := c.SectionMap()
	assert.Equal(t, "11월 실적 양호", sections["summary"])
	assert.Equal(t, "재고 증가", sections["risk"])
}

func TestPeriodCommentary_SectionMap_CorruptFallsBackToDefault(t *testing.T) {
	c := &PeriodCommentary{Sections: `{broken json`}
	assert.Equal(t, map[string]string{"summary": DefaultCommentary}, c.SectionMap())

	var nilC *PeriodCommentary
	assert.Equal(t, map[string]string{"summary": DefaultCommentary}, nilC.SectionMap())
}

func TestStoreRecord_NetSalesDefaults(t *testing.T) {
	r := StoreRecord{StoreCode: "A"}
	assert.Equal(t, 0.0, r.CurrentNetSales())
	assert.Equal(t, 0.0, r.PreviousNetSales())
}
