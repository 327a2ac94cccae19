package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/parsers"
)

// 파이프라인 전 구간(변환→별칭→보완→집계→산식)을 작은 데이터로 관통하는 테스트.

func salesTable(rows ...[]string) *parsers.Table {
	return &parsers.Table{
		Header: []string{"명세일자", "매 출 처", "상 품 명", "포장단위", "수량"},
		Rows:   rows,
	}
}

func purchaseTable(rows ...[]string) *parsers.Table {
	return &parsers.Table{
		Header: []string{"입고일자", "매 입 처", "상 품 명", "포장단위", "제 조 사", "수량"},
		Rows:   rows,
	}
}

func stockTable(rows ...[]string) *parsers.Table {
	return &parsers.Table{
		Header: []string{"매 입 처", "제 조 사", "상 품 명", "포장단위", "재고수량"},
		Rows:   rows,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	in := Input{
		Sales: salesTable(
			[]string{"2026-08-30", "서울약국", "amox500", "10x10", "15"},
			[]string{"2026-08-20", "부산약국", "AMOX500", "10X10", "10"},
			[]string{"2026-05-01", "부산약국", "AMOX500", "10X10", "999"}, // 윈도우 밖
		),
		Purchases: purchaseTable(
			[]string{"2026-08-25", "(주)지오영", "AMOX500", "10X10", "주식회사 한미약품", "0"},
		),
		Stock: stockTable(
			[]string{"", "", "AMOX500", "10X10", "10"},
		),
	}
	opt := model.Options{BaselineDays: 30, OrderOnly: true}

	result, err := Run(in, opt)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	r := result.Rows[0]
	assert.Equal(t, "AMOX500", r.ProductName)
	assert.Equal(t, 25, r.BaselineQty)
	assert.Equal(t, 10, r.StockQty)
	assert.Equal(t, 15, r.ShortageQty)
	assert.Equal(t, 15, r.OrderQty)
	// 현재고의 빈 제조사/매입처가 매입 이력에서 보완된다(법인 표기 제거 포함)
	assert.Equal(t, "한미약품", r.Manufacturer)
	assert.Equal(t, "지오영", r.Supplier)

	assert.Equal(t, 1, result.Summary.TotalItems)
	assert.Equal(t, 1, result.Summary.ToOrderItems)
	assert.Equal(t, 15, result.Summary.TotalShortage)
}

func TestRun_BackfillLatestWins(t *testing.T) {
	// 동일 식별 키의 매입 이력이 제조사 A(이전), B(최신)이면 B 로 보완된다
	in := Input{
		Sales: salesTable([]string{"2026-08-30", "서울약국", "AMOX500", "10X10", "5"}),
		Purchases: purchaseTable(
			[]string{"2026-08-01", "지오영", "AMOX500", "10X10", "A제약", "0"},
			[]string{"2026-08-10", "지오영", "AMOX500", "10X10", "B제약", "0"},
		),
		Stock: stockTable([]string{"지오영", "", "AMOX500", "10X10", "0"}),
	}

	result, err := Run(in, model.Options{BaselineDays: 30})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "B제약", result.Rows[0].Manufacturer)
}

func TestRun_RecentInboundDisabled(t *testing.T) {
	in := Input{
		Sales: salesTable([]string{"2026-08-30", "서울약국", "AMOX500", "10X10", "25"}),
		Purchases: purchaseTable(
			[]string{"2026-08-29", "지오영", "AMOX500", "10X10", "한미약품", "20"},
		),
		Stock: stockTable([]string{"지오영", "한미약품", "AMOX500", "10X10", "10"}),
	}

	// 반영 켬: 25−10−20 → 부족 0
	on, err := Run(in, model.Options{BaselineDays: 30, UseRecentInbound: true, RecentDays: 14})
	require.NoError(t, err)
	require.Len(t, on.Rows, 1)
	assert.Equal(t, 0, on.Rows[0].ShortageQty)
	assert.Equal(t, 20, on.Rows[0].RecentInboundQty)

	// 반영 끔: 최근입고 0 으로 간주 → 부족 15
	off, err := Run(in, model.Options{BaselineDays: 30, UseRecentInbound: false})
	require.NoError(t, err)
	require.Len(t, off.Rows, 1)
	assert.Equal(t, 0, off.Rows[0].RecentInboundQty)
	assert.Equal(t, 15, off.Rows[0].ShortageQty)
}

func TestRun_AliasTablesApplied(t *testing.T) {
	in := Input{
		Sales: salesTable([]string{"2026-08-30", "서울약국", "AMOX500", "10X10", "5"}),
		Purchases: purchaseTable(
			[]string{"2026-08-10", "(주)지오영", "AMOX500", "10X10", "한미", "0"},
		),
		Stock: stockTable([]string{"", "", "AMOX500", "10X10", "0"}),
		GenericAlias: &parsers.Table{
			Header: []string{"from", "to"},
			Rows:   [][]string{{"(주)지오영", "지오영 본사"}},
		},
		ManufacturerAlias: &parsers.Table{
			Header: []string{"변경전", "변경후"},
			Rows:   [][]string{{"한미", "한미약품"}},
		},
	}

	result, err := Run(in, model.Options{BaselineDays: 30})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "지오영 본사", result.Rows[0].Supplier)
	assert.Equal(t, "한미약품", result.Rows[0].Manufacturer)
}

func TestRun_MissingColumnsReportedPerSource(t *testing.T) {
	in := Input{
		Sales:     &parsers.Table{Header: []string{"명세일자"}},
		Purchases: purchaseTable(),
		Stock:     &parsers.Table{Header: []string{"상 품 명"}},
	}

	_, err := Run(in, model.Options{})
	require.Error(t, err)
	// 두 소스의 누락이 한 번에 보고된다
	assert.Contains(t, err.Error(), "매출자료에 필요한 컬럼이 없습니다")
	assert.Contains(t, err.Error(), "현재고에 필요한 컬럼이 없습니다")
	assert.Contains(t, err.Error(), "재고수량")
}

func TestRun_EmptyResultIsNotAnError(t *testing.T) {
	in := Input{
		Sales:     salesTable(), // 매출 0건
		Purchases: purchaseTable(),
		Stock:     stockTable([]string{"지오영", "한미약품", "AMOX500", "10X10", "10"}),
	}

	result, err := Run(in, model.Options{BaselineDays: 30, OrderOnly: true})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.Summary.TotalItems)
}

func TestRun_DefectCounts(t *testing.T) {
	in := Input{
		Sales: salesTable(
			[]string{"2026-08-30", "서울약국", "AMOX500", "10X10", "5"},
			[]string{"날짜아님", "서울약국", "AMOX500", "10X10", "5"},
		),
		Purchases: purchaseTable(),
		Stock:     stockTable([]string{"", "", "AMOX500", "10X10", "0"}),
	}

	result, err := Run(in, model.Options{BaselineDays: 30})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Defects.UnparseableSalesDates)
	require.Len(t, result.Rows, 1)
	// 보완 이력이 없으므로 제조사/매입처 결측으로 집계된다
	assert.Equal(t, 1, result.Summary.Defects.MissingManufacturer)
	assert.Equal(t, 1, result.Summary.Defects.MissingSupplier)
}
