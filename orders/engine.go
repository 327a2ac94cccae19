// C:\Dev\SM\orders\engine.go

package orders

import (
	"sort"

	"github.com/woohaehyun/SM/model"
)

/**
 * @brief 조정 테이블에 부족/과재고/발주수량 산식과 표시 필터를 적용합니다.
 * @param rows 집계·조인이 끝난 조정 테이블(산술값 미계산 상태)
 * @param opt 실행 옵션(부족수량 하한, 발주 필요 항목만 보기)
 * @return 산식과 필터, 중복 제거, 정렬까지 끝난 최종 테이블
 * @details
 * 부족수량 = max(0, 기준판매량 − 재고수량 − 최근입고수량)
 * 과재고   = max(0, 재고수량 − 기준판매량)
 * 발주수량 = 부족수량 (현행 정책 1:1, 포장 배수 반올림·안전재고 없음)
 * 필터 순서: (a) 부족수량 하한 → (b) 발주수량>0. 이후 식별 키 중복을 제거하고
 * (제조사, 매입처, 상품명) 순으로 정렬합니다. 순수 계산이며 입출력이 없습니다.
 */
func Compute(rows []model.ReconciliationRow, opt model.Options) []model.ReconciliationRow {
	out := make([]model.ReconciliationRow, 0, len(rows))
	for _, r := range rows {
		r.ShortageQty = clampZero(r.BaselineQty - r.StockQty - r.RecentInboundQty)
		r.OverstockQty = clampZero(r.StockQty - r.BaselineQty)
		r.OrderQty = r.ShortageQty

		if opt.MinShortage > 0 && r.ShortageQty < opt.MinShortage {
			continue
		}
		if opt.OrderOnly && r.OrderQty == 0 {
			continue
		}
		out = append(out, r)
	}

	// 잔여 조인 중복 방지(첫 행 우선)
	seen := make(map[model.IdentityKey]bool, len(out))
	deduped := out[:0]
	for _, r := range out {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		deduped = append(deduped, r)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.Manufacturer != b.Manufacturer {
			return a.Manufacturer < b.Manufacturer
		}
		if a.Supplier != b.Supplier {
			return a.Supplier < b.Supplier
		}
		return a.ProductName < b.ProductName
	})
	return deduped
}

// Summarize 는 최종 테이블의 KPI 요약을 만듭니다.
func Summarize(rows []model.ReconciliationRow) model.RunSummary {
	var s model.RunSummary
	s.TotalItems = len(rows)
	for _, r := range rows {
		if r.OrderQty > 0 {
			s.ToOrderItems++
		}
		s.TotalShortage += r.ShortageQty
		s.TotalOverstock += r.OverstockQty
	}
	return s
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
