// C:\Dev\SM\normalize\normalize.go

package normalize

import "strings"

// legalEntityTokens 는 거래처/제조사 명칭에서 제거할 법인 표기 목록입니다.
// 대문자 변환 후에 이 순서 그대로 단순 부분 문자열 치환으로 제거합니다
// (긴 표기를 먼저 제거해야 "(주)" 제거가 "주식회사"를 깨뜨리지 않습니다).
var legalEntityTokens = []string{
	"주식회사",
	"유한회사",
	"합자회사",
	"재단법인",
	"사단법인",
	"의료법인",
	"농업회사법인",
	"(주)",
	"（주）",
	"(유)",
	"（유）",
	"(합)",
	"(재)",
	"(사)",
	"CO., LTD.",
	"CO.,LTD.",
	"CO.,LTD",
	"CO., LTD",
	"CO. LTD",
	"CORP.",
	"CORP",
	"INC.",
	"INC",
	"LTD.",
	"LTD",
}

// placeholders 는 "값 없음"으로 취급하는 표기 집합입니다(정규화 후 비교).
var placeholders = map[string]bool{
	"":     true,
	"-":    true,
	"--":   true,
	"없음":   true,
	"미지정":  true,
	"기타":   true,
	"해당없음": true,
	"N/A":  true,
	"NA":   true,
	"NONE": true,
	"NULL": true,
}

// Key 는 식별 키 필드(상품명/포장단위)의 정규화입니다. Trim 후 대문자로 통일합니다.
func Key(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Party 는 거래처/제조사 명칭의 정규화입니다.
// 대문자 변환 → 법인 표기 제거 → 연속 공백 1칸으로 축약 → Trim 순서로 적용하며,
// 두 번 적용해도 결과가 달라지지 않습니다.
func Party(s string) string {
	s = strings.ToUpper(s)
	for _, tok := range legalEntityTokens {
		s = strings.ReplaceAll(s, tok, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// IsMissing 은 정규화된 값이 placeholder(값 없음 표기)인지 판정합니다.
func IsMissing(s string) bool {
	return placeholders[strings.ToUpper(strings.TrimSpace(s))]
}
