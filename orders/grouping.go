// C:\Dev\SM\orders\grouping.go

package orders

import (
	"fmt"
	"sort"
	"strings"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/normalize"
)

// UnspecifiedLabel 은 분류값이 없는 행/그룹에 표시하는 라벨입니다.
// 빈 그룹명이나 빈 셀을 그대로 내보내지 않습니다.
const UnspecifiedLabel = "미지정"

// 시트 이름에 넣을 수 없는 문자와 Excel 시트명 길이 제한.
const (
	invalidSheetChars = `[]*?/\:`
	maxSheetNameLen   = 31
)

// Group 은 발주서 한 장으로 내보낼 행 묶음입니다.
type Group struct {
	Name string
	Rows []model.ReconciliationRow
}

// groupLabel 은 그룹 기준에 따른 행의 그룹명을 돌려줍니다.
func groupLabel(r model.ReconciliationRow, mode model.GroupingMode) string {
	manufacturer := displayValue(r.Manufacturer)
	supplier := displayValue(r.Supplier)
	switch mode {
	case model.GroupByManufacturer, model.GroupForcedManufacturerOnly:
		return manufacturer
	case model.GroupByBoth:
		return manufacturer + "-" + supplier
	default: // GroupBySupplier
		return supplier
	}
}

// displayValue 는 placeholder/빈 값을 미지정 라벨로 바꿉니다.
func displayValue(s string) string {
	if normalize.IsMissing(s) {
		return UnspecifiedLabel
	}
	return s
}

// GroupRows 는 최종 테이블을 그룹 기준으로 분할합니다. 그룹명 오름차순이며,
// 각 그룹 내부의 행 순서는 입력 순서(엔진의 정렬 결과)를 유지합니다.
func GroupRows(rows []model.ReconciliationRow, mode model.GroupingMode) []Group {
	byName := make(map[string][]model.ReconciliationRow)
	var names []string
	for _, r := range rows {
		name := groupLabel(r, mode)
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		byName[name] = append(byName[name], r)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Rows: byName[name]})
	}
	return groups
}

// SafeSheetName 은 그룹명을 Excel 시트명 규칙에 맞게 다듬습니다.
// 사용 불가 문자를 제거하고 31자(rune)로 자르며, 비면 미지정으로 대체합니다.
func SafeSheetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalidSheetChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return UnspecifiedLabel
	}
	runes := []rune(cleaned)
	if len(runes) > maxSheetNameLen {
		cleaned = string(runes[:maxSheetNameLen])
	}
	return cleaned
}

// UniqueSheetName 은 정제한 시트명이 이미 사용 중이면 길이 제한을 지키면서
// "(2)", "(3)" 번호를 붙여 고유한 이름을 만듭니다. 번호를 붙일 때는 먼저
// 앞부분을 잘라 전체가 31자(rune)를 넘지 않게 합니다. 반환한 이름은 used 에
// 기록됩니다.
func UniqueSheetName(name string, used map[string]bool) string {
	base := SafeSheetName(name)
	if !used[base] {
		used[base] = true
		return base
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf("(%d)", n)
		runes := []rune(base)
		if limit := maxSheetNameLen - len([]rune(suffix)); len(runes) > limit {
			runes = runes[:limit]
		}
		candidate := string(runes) + suffix
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// HeaderColumns 는 내보내기 컬럼 목록(고정 순서)입니다.
// 제조사 강제 모드에서는 매입처 컬럼을 전부 제거합니다.
func HeaderColumns(mode model.GroupingMode, baselineDays int) []string {
	cols := []string{"제 조 사"}
	if mode != model.GroupForcedManufacturerOnly {
		cols = append(cols, "매 입 처")
	}
	return append(cols,
		"상 품 명",
		"포장단위",
		"재고수량",
		fmt.Sprintf("최근%d일_판매량", baselineDays),
		"기준판매량",
		"최근입고수량",
		"부족수량",
		"과재고",
		"발주수량",
	)
}

// RowCells 는 HeaderColumns 와 같은 순서의 셀 값 목록입니다.
func RowCells(r model.ReconciliationRow, mode model.GroupingMode) []interface{} {
	cells := []interface{}{displayValue(r.Manufacturer)}
	if mode != model.GroupForcedManufacturerOnly {
		cells = append(cells, displayValue(r.Supplier))
	}
	return append(cells,
		r.ProductName,
		r.PackageUnit,
		r.StockQty,
		r.PeriodSalesQty,
		r.BaselineQty,
		r.RecentInboundQty,
		r.ShortageQty,
		r.OverstockQty,
		r.OrderQty,
	)
}
