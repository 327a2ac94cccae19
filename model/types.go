// C:\Dev\SM\model\types.go

package model

import "time"

// IdentityKey 는 모든 소스를 조인할 때 사용하는 식별 키입니다.
// 상품명과 포장단위는 반드시 Trim + 대문자 정규화 후에 키로 사용합니다.
type IdentityKey struct {
	ProductName string `json:"productName"`
	PackageUnit string `json:"packageUnit"`
}

// SalesRecord 는 매출자료(출고) 한 행을 표현합니다.
// DocumentDate 가 zero time 이면 날짜 파싱에 실패한 행입니다(집계에서 제외).
type SalesRecord struct {
	DocumentDate time.Time
	Customer     string
	ProductName  string
	PackageUnit  string
	Quantity     int
}

// PurchaseRecord 는 매입자료(입고) 한 행을 표현합니다.
// 최근입고 집계와 제조사/매입처 보완(backfill)의 원천 데이터로 사용됩니다.
type PurchaseRecord struct {
	ReceivedDate time.Time
	Supplier     string
	Manufacturer string
	ProductName  string
	PackageUnit  string
	Quantity     int
}

// StockRecord 는 현재고 한 행을 표현합니다. 식별 키당 재고수량의 기준값입니다.
type StockRecord struct {
	Supplier       string
	Manufacturer   string
	ProductName    string
	PackageUnit    string
	QuantityOnHand int
}

// ReconciliationRow 는 식별 키 하나에 대한 발주 판단 결과 행입니다.
type ReconciliationRow struct {
	Manufacturer     string `json:"manufacturer"`
	Supplier         string `json:"supplier"`
	ProductName      string `json:"productName"`
	PackageUnit      string `json:"packageUnit"`
	StockQty         int    `json:"stockQty"`
	PeriodSalesQty   int    `json:"periodSalesQty"`
	BaselineQty      int    `json:"baselineQty"`
	RecentInboundQty int    `json:"recentInboundQty"`
	ShortageQty      int    `json:"shortageQty"`
	OverstockQty     int    `json:"overstockQty"`
	OrderQty         int    `json:"orderQty"`
}

// Key 는 행의 식별 키를 반환합니다.
func (r ReconciliationRow) Key() IdentityKey {
	return IdentityKey{ProductName: r.ProductName, PackageUnit: r.PackageUnit}
}

// GroupingMode 는 발주서 그룹 기준입니다.
type GroupingMode string

const (
	GroupBySupplier     GroupingMode = "supplier"     // 매 입 처 기준
	GroupByManufacturer GroupingMode = "manufacturer" // 제 조 사 기준
	GroupByBoth         GroupingMode = "both"         // 제조사+매입처 복합 기준
	// GroupForcedManufacturerOnly 는 요청과 무관하게 제조사 기준으로 강제하고,
	// 모든 출력에서 매입처 컬럼을 제거하는 운영 모드입니다.
	GroupForcedManufacturerOnly GroupingMode = "manufacturerOnly"
)

// ExportMode 는 발주서 파일 구성 방식입니다.
type ExportMode string

const (
	ExportZipPerGroup    ExportMode = "zip"      // 그룹별 개별 Excel 을 ZIP 으로 묶음
	ExportSingleWorkbook ExportMode = "workbook" // Excel 1개, 그룹별 시트
)

// PeriodMode 는 분석 기간 산정 방식입니다(기간 매출 조회용, 기준판매량과 무관).
type PeriodMode string

const (
	PeriodAuto   PeriodMode = "auto"   // 최근 3개월 (최종 매출일 기준)
	PeriodManual PeriodMode = "manual" // 시작일/종료일 직접 지정
)

// Options 는 1회 분석 실행의 모든 설정값입니다.
// 파이프라인에 진입한 이후에는 절대 변경하지 않습니다(불변 스냅샷).
type Options struct {
	BaselineDays     int          `json:"baselineDays"`     // 기준판매량 집계 일수 N (1~365)
	UseRecentInbound bool         `json:"useRecentInbound"` // 최근 입고수량 반영 여부
	RecentDays       int          `json:"recentDays"`       // 최근 입고 반영 일수 (1~90)
	MinShortage      int          `json:"minShortage"`      // 부족수량 하한(이상만 표시)
	OrderOnly        bool         `json:"orderOnly"`        // 발주수량>0 행만 표시
	IncludeZeroSales bool         `json:"includeZeroSales"` // 기간 판매 0 재고 품목도 포함할지
	Grouping         GroupingMode `json:"grouping"`
	Export           ExportMode   `json:"export"`
	PeriodMode       PeriodMode   `json:"periodMode"`
	PeriodStart      time.Time    `json:"periodStart"`
	PeriodEnd        time.Time    `json:"periodEnd"`
}

// DefectCounts 는 치명적이지 않은 데이터 품질 문제의 건수입니다.
// 파이프라인을 중단시키지 않고 요약에만 노출합니다.
type DefectCounts struct {
	UnparseableSalesDates    int `json:"unparseableSalesDates"`
	UnparseablePurchaseDates int `json:"unparseablePurchaseDates"`
	MissingManufacturer      int `json:"missingManufacturer"`
	MissingSupplier          int `json:"missingSupplier"`
}

// RunSummary 는 화면 상단 KPI 에 해당하는 실행 요약입니다.
type RunSummary struct {
	TotalItems     int          `json:"totalItems"`     // 총 품목수
	ToOrderItems   int          `json:"toOrderItems"`   // 발주 필요 품목수
	TotalShortage  int          `json:"totalShortage"`  // 부족수량 합계
	TotalOverstock int          `json:"totalOverstock"` // 과재고 합계
	PeriodStart    time.Time    `json:"periodStart"`
	PeriodEnd      time.Time    `json:"periodEnd"`
	PeriodSalesQty int          `json:"periodSalesQty"` // 분석 기간 내 매출수량 합계(참고용)
	Defects        DefectCounts `json:"defects"`
}
