// C:\Dev\SM\backfill\backfill.go

// Package backfill 은 현재고에 비어 있는 제조사/매입처를 매입 이력으로 보완합니다.
//
// 전략은 순서가 있는 목록으로 적용합니다. 1차: 식별 키(상품명+포장단위) 완전
// 일치, 2차: 상품명 단독 일치. 앞선 전략(또는 현재고 자체)이 채운 값은 뒤의
// 전략이 절대 덮어쓰지 않습니다. 각 전략 안에서는 "시간순 마지막 non-missing
// 값"이 이깁니다(입고일 오름차순 안정 정렬 후 나중 행 우선 — 같은 날짜면
// 입력 순서상 뒤의 행).
package backfill

import (
	"sort"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/normalize"
)

// attribution 은 한 그룹 키에 대해 매입 이력에서 복원한 분류값입니다.
type attribution struct {
	manufacturer string
	supplier     string
}

// strategy 는 현재고 한 건의 빈 분류값을 채우는 단계입니다.
type strategy func(rec *model.StockRecord)

// Apply 는 현재고 전체에 보완 전략을 순서대로 적용한 사본을 반환합니다.
// 원본 슬라이스는 변경하지 않습니다.
func Apply(stock []model.StockRecord, purchases []model.PurchaseRecord) []model.StockRecord {
	strategies := []strategy{
		byIdentityKey(purchases),
		byProductName(purchases),
	}

	out := make([]model.StockRecord, len(stock))
	copy(out, stock)
	for i := range out {
		for _, s := range strategies {
			s(&out[i])
		}
	}
	return out
}

// sortedByDate 는 입고일 오름차순 안정 정렬된 매입 이력 사본을 반환합니다.
// 날짜 파싱 실패(zero time) 행은 맨 앞으로 밀려 우선순위가 가장 낮아집니다.
func sortedByDate(purchases []model.PurchaseRecord) []model.PurchaseRecord {
	sorted := make([]model.PurchaseRecord, len(purchases))
	copy(sorted, purchases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReceivedDate.Before(sorted[j].ReceivedDate)
	})
	return sorted
}

// byIdentityKey 는 식별 키 완전 일치 기준의 1차 전략을 만듭니다.
func byIdentityKey(purchases []model.PurchaseRecord) strategy {
	attrs := make(map[model.IdentityKey]attribution)
	for _, p := range sortedByDate(purchases) {
		key := model.IdentityKey{ProductName: p.ProductName, PackageUnit: p.PackageUnit}
		a := attrs[key]
		if !normalize.IsMissing(p.Manufacturer) {
			a.manufacturer = p.Manufacturer
		}
		if !normalize.IsMissing(p.Supplier) {
			a.supplier = p.Supplier
		}
		attrs[key] = a
	}
	return func(rec *model.StockRecord) {
		fill(rec, attrs[model.IdentityKey{ProductName: rec.ProductName, PackageUnit: rec.PackageUnit}])
	}
}

// byProductName 은 포장단위를 무시하고 상품명만으로 매칭하는 2차 전략을 만듭니다.
func byProductName(purchases []model.PurchaseRecord) strategy {
	attrs := make(map[string]attribution)
	for _, p := range sortedByDate(purchases) {
		a := attrs[p.ProductName]
		if !normalize.IsMissing(p.Manufacturer) {
			a.manufacturer = p.Manufacturer
		}
		if !normalize.IsMissing(p.Supplier) {
			a.supplier = p.Supplier
		}
		attrs[p.ProductName] = a
	}
	return func(rec *model.StockRecord) {
		fill(rec, attrs[rec.ProductName])
	}
}

// fill 은 비어 있는 필드만 채웁니다. 이미 값이 있으면 건드리지 않습니다.
func fill(rec *model.StockRecord, a attribution) {
	if normalize.IsMissing(rec.Manufacturer) && a.manufacturer != "" {
		rec.Manufacturer = a.manufacturer
	}
	if normalize.IsMissing(rec.Supplier) && a.supplier != "" {
		rec.Supplier = a.supplier
	}
}
