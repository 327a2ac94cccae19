// C:\Dev\SM\aggregation\aggregation.go

// Package aggregation 은 기준판매량(최근 N일 매출수량)과 최근입고수량을 각각
// 집계하고, 현재고와 조인하여 발주 판단의 입력 테이블을 만듭니다.
package aggregation

import (
	"sort"
	"time"

	"github.com/woohaehyun/SM/model"
)

/**
 * @brief 최근 N일 매출수량을 식별 키별로 합산합니다.
 * @param sales 매출 레코드 전체
 * @param days 집계 일수 N
 * @return 식별 키별 합계, 최종 매출일(max_sale_date)
 * @details
 * 윈도우는 (max_sale_date − N일, max_sale_date] 입니다. 하한은 미포함,
 * 상한은 포함 — 정확히 N일 전 날짜의 레코드는 집계에서 빠집니다.
 * 날짜 파싱에 실패한(zero time) 레코드는 max 계산과 합산 모두에서 제외합니다.
 */
func BaselineSales(sales []model.SalesRecord, days int) (map[model.IdentityKey]int, time.Time) {
	var maxDate time.Time
	for _, s := range sales {
		if s.DocumentDate.After(maxDate) {
			maxDate = s.DocumentDate
		}
	}

	sums := make(map[model.IdentityKey]int)
	if maxDate.IsZero() {
		return sums, maxDate
	}

	lower := maxDate.AddDate(0, 0, -days)
	for _, s := range sales {
		if s.DocumentDate.IsZero() {
			continue
		}
		if s.DocumentDate.After(lower) && !s.DocumentDate.After(maxDate) {
			key := model.IdentityKey{ProductName: s.ProductName, PackageUnit: s.PackageUnit}
			sums[key] += s.Quantity
		}
	}
	return sums, maxDate
}

// RecentInbound 는 최근 입고수량을 식별 키별로 합산합니다.
// 기준일은 매출이 아니라 최종 입고일(max_purchase_date)이며, 하한 포함입니다:
// received_date >= max_purchase_date − recentDays.
func RecentInbound(purchases []model.PurchaseRecord, recentDays int) map[model.IdentityKey]int {
	var maxDate time.Time
	for _, p := range purchases {
		if p.ReceivedDate.After(maxDate) {
			maxDate = p.ReceivedDate
		}
	}

	sums := make(map[model.IdentityKey]int)
	if maxDate.IsZero() {
		return sums
	}

	cutoff := maxDate.AddDate(0, 0, -recentDays)
	for _, p := range purchases {
		if p.ReceivedDate.IsZero() || p.ReceivedDate.Before(cutoff) {
			continue
		}
		key := model.IdentityKey{ProductName: p.ProductName, PackageUnit: p.PackageUnit}
		sums[key] += p.Quantity
	}
	return sums
}

// DedupStock 은 식별 키 중복 현재고 행에서 첫 번째 행만 남깁니다.
func DedupStock(stock []model.StockRecord) []model.StockRecord {
	seen := make(map[model.IdentityKey]bool, len(stock))
	out := make([]model.StockRecord, 0, len(stock))
	for _, s := range stock {
		key := model.IdentityKey{ProductName: s.ProductName, PackageUnit: s.PackageUnit}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

/**
 * @brief 기준판매량 집계에 현재고/최근입고를 left join 하여 조정 테이블을 만듭니다.
 * @details
 * 주도 집합은 기준판매량 쪽입니다. 윈도우 내 매출이 없는 품목은 현재고가 있어도
 * 기본적으로 결과에 나타나지 않습니다. includeZeroSales 를 켜면 그런 재고 품목도
 * 기준판매량 0 으로 포함합니다. 수량 계산(부족/과재고/발주)은 여기서 하지 않습니다.
 */
func Join(baseline map[model.IdentityKey]int, stock []model.StockRecord, inbound map[model.IdentityKey]int, includeZeroSales bool) []model.ReconciliationRow {
	stockByKey := make(map[model.IdentityKey]model.StockRecord, len(stock))
	for _, s := range DedupStock(stock) {
		stockByKey[model.IdentityKey{ProductName: s.ProductName, PackageUnit: s.PackageUnit}] = s
	}

	keys := make([]model.IdentityKey, 0, len(baseline))
	for key := range baseline {
		keys = append(keys, key)
	}
	if includeZeroSales {
		for key := range stockByKey {
			if _, ok := baseline[key]; !ok {
				keys = append(keys, key)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ProductName != keys[j].ProductName {
			return keys[i].ProductName < keys[j].ProductName
		}
		return keys[i].PackageUnit < keys[j].PackageUnit
	})

	rows := make([]model.ReconciliationRow, 0, len(keys))
	for _, key := range keys {
		sales := baseline[key]
		st := stockByKey[key]
		rows = append(rows, model.ReconciliationRow{
			Manufacturer:     st.Manufacturer,
			Supplier:         st.Supplier,
			ProductName:      key.ProductName,
			PackageUnit:      key.PackageUnit,
			StockQty:         st.QuantityOnHand,
			PeriodSalesQty:   sales,
			BaselineQty:      sales, // 기준판매량 = 최근 N일 판매량 (현행 정책상 동일)
			RecentInboundQty: inbound[key],
		})
	}
	return rows
}

// Period 는 분석 기간(참고용 매출 조회 범위)을 결정하고 기간 내 매출수량을
// 합산합니다. 자동 모드는 최종 매출일로부터 과거 3개월입니다.
func Period(sales []model.SalesRecord, maxSaleDate time.Time, opt model.Options) (start, end time.Time, qty int) {
	if opt.PeriodMode == model.PeriodManual && !opt.PeriodStart.IsZero() && !opt.PeriodEnd.IsZero() {
		start, end = opt.PeriodStart, opt.PeriodEnd
	} else {
		end = maxSaleDate
		start = end.AddDate(0, -3, 0)
	}
	for _, s := range sales {
		if s.DocumentDate.IsZero() {
			continue
		}
		if !s.DocumentDate.Before(start) && !s.DocumentDate.After(end) {
			qty += s.Quantity
		}
	}
	return start, end, qty
}
