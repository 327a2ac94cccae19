// C:\Dev\SM\orders\pipeline.go

package orders

import (
	"errors"

	"github.com/woohaehyun/SM/aggregation"
	"github.com/woohaehyun/SM/backfill"
	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/normalize"
	"github.com/woohaehyun/SM/parsers"
)

// Input 은 1회 분석 실행의 입력 테이블 묶음입니다.
// GenericAlias/ManufacturerAlias 는 선택 입력이며 nil 일 수 있습니다.
type Input struct {
	Sales             *parsers.Table
	Purchases         *parsers.Table
	Stock             *parsers.Table
	GenericAlias      *parsers.Table
	ManufacturerAlias *parsers.Table
}

// Result 는 파이프라인 실행 결과입니다.
type Result struct {
	Rows    []model.ReconciliationRow `json:"rows"`
	Summary model.RunSummary          `json:"summary"`
	Options model.Options             `json:"options"`
}

/**
 * @brief 발주 분석 파이프라인의 단일 진입점입니다.
 * @param in 업로드된 입력 테이블(매출/매입/현재고 + 선택 별칭 테이블)
 * @param opt 실행 옵션(불변 스냅샷, 전역 상태·설정 파일과 무관)
 * @return 최종 조정 테이블과 실행 요약
 * @details
 * 흐름: 레코드 변환(필수 컬럼 검증 포함) → 별칭 치환 → 제조사/매입처 보완 →
 * 기준판매량·최근입고 집계 → 현재고 조인 → 산식/필터 적용.
 * 필수 컬럼 누락은 세 소스 모두 검사한 뒤 한꺼번에 보고하고 계산 없이
 * 중단합니다. 날짜 파싱 실패 같은 품질 결함은 건수만 세고 진행합니다.
 */
func Run(in Input, opt model.Options) (*Result, error) {
	opt = sanitizeOptions(opt)

	sales, badSaleDates, salesErr := parsers.BuildSalesRecords(in.Sales)
	purchases, badPurchaseDates, purchaseErr := parsers.BuildPurchaseRecords(in.Purchases)
	stock, stockErr := parsers.BuildStockRecords(in.Stock)
	if err := errors.Join(salesErr, purchaseErr, stockErr); err != nil {
		return nil, err
	}

	generic, manufacturerOnly, err := buildAliasMaps(in)
	if err != nil {
		return nil, err
	}
	purchases = applyAliases(purchases, generic, manufacturerOnly)
	stock = applyStockAliases(stock, generic, manufacturerOnly)

	stock = backfill.Apply(stock, purchases)

	baseline, maxSaleDate := aggregation.BaselineSales(sales, opt.BaselineDays)
	inbound := map[model.IdentityKey]int{}
	if opt.UseRecentInbound {
		inbound = aggregation.RecentInbound(purchases, opt.RecentDays)
	}
	joined := aggregation.Join(baseline, stock, inbound, opt.IncludeZeroSales)

	rows := Compute(joined, opt)

	summary := Summarize(rows)
	summary.PeriodStart, summary.PeriodEnd, summary.PeriodSalesQty =
		aggregation.Period(sales, maxSaleDate, opt)
	summary.Defects = model.DefectCounts{
		UnparseableSalesDates:    badSaleDates,
		UnparseablePurchaseDates: badPurchaseDates,
	}
	for _, r := range rows {
		if normalize.IsMissing(r.Manufacturer) {
			summary.Defects.MissingManufacturer++
		}
		if normalize.IsMissing(r.Supplier) {
			summary.Defects.MissingSupplier++
		}
	}

	return &Result{Rows: rows, Summary: summary, Options: opt}, nil
}

// sanitizeOptions 는 옵션값을 허용 범위로 보정하고 기본값을 채웁니다.
func sanitizeOptions(opt model.Options) model.Options {
	if opt.BaselineDays < 1 {
		opt.BaselineDays = 30
	}
	if opt.BaselineDays > 365 {
		opt.BaselineDays = 365
	}
	if opt.RecentDays < 1 {
		opt.RecentDays = 14
	}
	if opt.RecentDays > 90 {
		opt.RecentDays = 90
	}
	if opt.MinShortage < 0 {
		opt.MinShortage = 0
	}
	switch opt.Grouping {
	case model.GroupBySupplier, model.GroupByManufacturer, model.GroupByBoth, model.GroupForcedManufacturerOnly:
	default:
		opt.Grouping = model.GroupBySupplier
	}
	switch opt.Export {
	case model.ExportZipPerGroup, model.ExportSingleWorkbook:
	default:
		opt.Export = model.ExportZipPerGroup
	}
	if opt.PeriodMode != model.PeriodManual {
		opt.PeriodMode = model.PeriodAuto
	}
	return opt
}

// buildAliasMaps 는 선택 입력인 두 별칭 테이블을 조회 맵으로 만듭니다.
// generic 은 매입처/제조사 양쪽에, manufacturerOnly 는 제조사에만 적용됩니다.
func buildAliasMaps(in Input) (generic, manufacturerOnly normalize.AliasMap, err error) {
	if in.GenericAlias != nil {
		pairs, err := parsers.BuildAliasPairs(in.GenericAlias)
		if err != nil {
			return nil, nil, err
		}
		generic = normalize.NewAliasMap(pairs)
	}
	if in.ManufacturerAlias != nil {
		pairs, err := parsers.BuildAliasPairs(in.ManufacturerAlias)
		if err != nil {
			return nil, nil, err
		}
		manufacturerOnly = normalize.NewAliasMap(pairs)
	}
	return generic, manufacturerOnly, nil
}

func applyAliases(purchases []model.PurchaseRecord, generic, manufacturerOnly normalize.AliasMap) []model.PurchaseRecord {
	for i := range purchases {
		purchases[i].Supplier = generic.Apply(purchases[i].Supplier)
		purchases[i].Manufacturer = manufacturerOnly.Apply(generic.Apply(purchases[i].Manufacturer))
	}
	return purchases
}

func applyStockAliases(stock []model.StockRecord, generic, manufacturerOnly normalize.AliasMap) []model.StockRecord {
	for i := range stock {
		stock[i].Supplier = generic.Apply(stock[i].Supplier)
		stock[i].Manufacturer = manufacturerOnly.Apply(generic.Apply(stock[i].Manufacturer))
	}
	return stock
}
