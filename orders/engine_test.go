package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woohaehyun/SM/model"
)

func row(name string, stock, baseline, inbound int) model.ReconciliationRow {
	return model.ReconciliationRow{
		ProductName:      name,
		PackageUnit:      "10X10",
		StockQty:         stock,
		PeriodSalesQty:   baseline,
		BaselineQty:      baseline,
		RecentInboundQty: inbound,
	}
}

func TestCompute_ShortageScenario(t *testing.T) {
	// 재고 10, 기준판매량 25, 최근입고 0 → 부족 15, 과재고 0, 발주 15
	out := Compute([]model.ReconciliationRow{row("AMOX500", 10, 25, 0)}, model.Options{})
	require.Len(t, out, 1)
	assert.Equal(t, 15, out[0].ShortageQty)
	assert.Equal(t, 0, out[0].OverstockQty)
	assert.Equal(t, 15, out[0].OrderQty)
}

func TestCompute_OverstockScenario(t *testing.T) {
	// 재고 30, 기준판매량 10 → 부족 0, 과재고 20, 발주 0
	out := Compute([]model.ReconciliationRow{row("AMOX500", 30, 10, 0)}, model.Options{})
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].ShortageQty)
	assert.Equal(t, 20, out[0].OverstockQty)
	assert.Equal(t, 0, out[0].OrderQty)
}

func TestCompute_RecentInboundAbsorbsGap(t *testing.T) {
	// 재고 10, 기준판매량 25, 최근입고 20 → 25−10−20=−5 → 부족 0, 과재고 0
	out := Compute([]model.ReconciliationRow{row("AMOX500", 10, 25, 20)}, model.Options{})
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].ShortageQty)
	assert.Equal(t, 0, out[0].OverstockQty)
}

func TestCompute_NonNegativity(t *testing.T) {
	rows := []model.ReconciliationRow{
		row("A", 0, 100, 0),
		row("B", 100, 0, 0),
		row("C", 50, 50, 30),
		row("D", 3, 7, 99),
	}
	for _, r := range Compute(rows, model.Options{}) {
		assert.GreaterOrEqual(t, r.ShortageQty, 0, r.ProductName)
		assert.GreaterOrEqual(t, r.OverstockQty, 0, r.ProductName)
	}
}

func TestCompute_MinShortageFilter(t *testing.T) {
	rows := []model.ReconciliationRow{
		row("A", 0, 5, 0),  // 부족 5
		row("B", 0, 20, 0), // 부족 20
	}
	out := Compute(rows, model.Options{MinShortage: 10})
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].ProductName)
}

func TestCompute_OrderOnlyFilter(t *testing.T) {
	rows := []model.ReconciliationRow{
		row("A", 30, 10, 0), // 발주 0
		row("B", 0, 20, 0),  // 발주 20
	}
	out := Compute(rows, model.Options{OrderOnly: true})
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].ProductName)
}

func TestCompute_DeduplicatesResidualJoins(t *testing.T) {
	rows := []model.ReconciliationRow{
		row("A", 10, 25, 0),
		row("A", 99, 1, 0), // 동일 식별 키의 잔여 중복
	}
	out := Compute(rows, model.Options{})
	require.Len(t, out, 1)
	assert.Equal(t, 15, out[0].ShortageQty)
}

func TestCompute_SortOrder(t *testing.T) {
	a := row("B상품", 0, 1, 0)
	a.Manufacturer, a.Supplier = "나제약", "가약품"
	b := row("A상품", 0, 1, 0)
	b.Manufacturer, b.Supplier = "가제약", "나약품"
	c := row("C상품", 0, 1, 0)
	c.Manufacturer, c.Supplier = "가제약", "가약품"

	out := Compute([]model.ReconciliationRow{a, b, c}, model.Options{})
	require.Len(t, out, 3)
	assert.Equal(t, "C상품", out[0].ProductName) // (가제약, 가약품)
	assert.Equal(t, "A상품", out[1].ProductName) // (가제약, 나약품)
	assert.Equal(t, "B상품", out[2].ProductName) // (나제약, …)
}

func TestSummarize(t *testing.T) {
	out := Compute([]model.ReconciliationRow{
		row("A", 10, 25, 0), // 부족 15
		row("B", 30, 10, 0), // 과재고 20
	}, model.Options{})

	s := Summarize(out)
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, 1, s.ToOrderItems)
	assert.Equal(t, 15, s.TotalShortage)
	assert.Equal(t, 20, s.TotalOverstock)
}
