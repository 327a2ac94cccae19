package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParty_StripsLegalEntityTokens(t *testing.T) {
	cases := map[string]string{
		"(주)한미약품":        "한미약품",
		"주식회사 대웅제약":      "대웅제약",
		"유한회사  동화":       "동화",
		"재단법인 녹십자재단":     "녹십자재단",
		"Boryung Co., Ltd.": "BORYUNG",
		"  종근당  ":         "종근당",
	}
	for in, want := range cases {
		assert.Equal(t, want, Party(in), "input %q", in)
	}
}

func TestParty_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "서울 약품", Party("  서울   약품  "))
}

func TestParty_Idempotent(t *testing.T) {
	inputs := []string{"(주)한미약품", "주식회사 대웅제약", "  서울   약품  ", "BORYUNG CO.,LTD"}
	for _, in := range inputs {
		once := Party(in)
		assert.Equal(t, once, Party(once), "input %q", in)
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "AMOX500", Key("  amox500 "))
	assert.Equal(t, "10X10", Key("10x10"))
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", "  ", "-", "없음", "미지정", "기타", "n/a", "None", "NULL"} {
		assert.True(t, IsMissing(s), "input %q", s)
	}
	for _, s := range []string{"한미약품", "0", "기타제약"} {
		assert.False(t, IsMissing(s), "input %q", s)
	}
}

func TestAliasMap_PartialOverride(t *testing.T) {
	m := NewAliasMap([][2]string{
		{"(주)한미약품", "한미약품"},
		{"대웅", "대웅제약"},
	})

	// from 쪽은 Party 정규화를 거쳐 매칭된다
	assert.Equal(t, "한미약품", m.Apply(Party("(주)한미약품")))
	assert.Equal(t, "대웅제약", m.Apply("대웅"))
	// 테이블에 없는 값은 그대로 통과
	assert.Equal(t, "종근당", m.Apply("종근당"))
}

func TestAliasMap_NilIsIdentity(t *testing.T) {
	var m AliasMap
	assert.Equal(t, "종근당", m.Apply("종근당"))
	assert.Nil(t, NewAliasMap(nil))
	assert.Nil(t, NewAliasMap([][2]string{{"-", "x"}, {"", ""}}))
}
