// C:\Dev\SM\parsers\columns.go

package parsers

import (
	"fmt"
	"strings"
)

// 소스별 컬럼 별칭 테이블. 입력에 존재하는 별칭만 표준 컬럼명으로 바꾸고,
// 모르는 컬럼은 그대로 통과시킵니다.
var (
	salesColumnAliases = map[string]string{
		"거래일자":  "명세일자",
		"일자":    "명세일자",
		"매출처":   "매 출 처",
		"상품명":   "상 품 명",
		"포장 단위": "포장단위",
	}
	purchaseColumnAliases = map[string]string{
		"입고일":   "입고일자",
		"거래처":   "매 입 처",
		"매입처":   "매 입 처",
		"상품명":   "상 품 명",
		"포장 단위": "포장단위",
		"제조사":   "제 조 사",
	}
	stockColumnAliases = map[string]string{
		"거래처":   "매 입 처",
		"매입처":   "매 입 처",
		"상품명":   "상 품 명",
		"포장 단위": "포장단위",
		"제조사":   "제 조 사",
		"재고":    "재고수량",
	}
	aliasTableColumnAliases = map[string]string{
		"FROM": "from",
		"From": "from",
		"TO":   "to",
		"To":   "to",
		"변경전":  "from",
		"변경후":  "to",
	}
)

// 소스별 필수 컬럼(별칭 치환 이후 기준).
var (
	salesRequired    = []string{"명세일자", "매 출 처", "상 품 명", "포장단위", "수량"}
	purchaseRequired = []string{"입고일자", "매 입 처", "상 품 명", "제 조 사", "수량"}
	stockRequired    = []string{"매 입 처", "제 조 사", "상 품 명", "포장단위", "재고수량"}
	aliasRequired    = []string{"from", "to"}
)

// MissingColumnsError 는 필수 컬럼 누락을 나타내는 전제조건 위반입니다.
// 어떤 소스에서 어떤 컬럼이 빠졌는지 전부 열거하며, 계산은 시작하지 않습니다.
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s에 필요한 컬럼이 없습니다: %s", e.Source, strings.Join(e.Columns, ", "))
}

// columnIndex 는 별칭 치환을 적용한 뒤 컬럼명→열 위치 맵을 만듭니다.
// 동일 컬럼명이 중복되면 첫 번째 열이 우선합니다.
func columnIndex(header []string, aliases map[string]string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// requireColumns 는 필수 컬럼 존재를 검증합니다. 누락이 하나라도 있으면
// MissingColumnsError 를 반환합니다.
func requireColumns(source string, idx map[string]int, required []string) error {
	var missing []string
	for _, c := range required {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Source: source, Columns: missing}
	}
	return nil
}
