// C:\Dev\SM\parsers\records.go

package parsers

import (
	"strconv"
	"strings"
	"time"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/normalize"
)

// 입력 파일에서 흔히 보이는 날짜 표기들. 전부 실패하면 zero time 으로 두고
// 결함 건수만 센다(해당 행은 기간 집계에서 자연히 빠진다).
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseQty 는 "1,234" / "12.0" 같은 표기를 정수로 읽습니다. 실패하면 0 입니다.
func parseQty(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// BuildSalesRecords 는 매출자료 Table 을 SalesRecord 목록으로 변환합니다.
// 두 번째 반환값은 날짜 파싱에 실패한 행의 수입니다.
func BuildSalesRecords(t *Table) ([]model.SalesRecord, int, error) {
	idx := columnIndex(t.Header, salesColumnAliases)
	if err := requireColumns("매출자료", idx, salesRequired); err != nil {
		return nil, 0, err
	}

	records := make([]model.SalesRecord, 0, len(t.Rows))
	badDates := 0
	for _, row := range t.Rows {
		rec := model.SalesRecord{
			DocumentDate: parseDate(cell(row, idx["명세일자"])),
			Customer:     normalize.Party(cell(row, idx["매 출 처"])),
			ProductName:  normalize.Key(cell(row, idx["상 품 명"])),
			PackageUnit:  normalize.Key(cell(row, idx["포장단위"])),
			Quantity:     parseQty(cell(row, idx["수량"])),
		}
		if rec.ProductName == "" {
			continue
		}
		if rec.DocumentDate.IsZero() {
			badDates++
		}
		records = append(records, rec)
	}
	return records, badDates, nil
}

// BuildPurchaseRecords 는 매입자료 Table 을 PurchaseRecord 목록으로 변환합니다.
func BuildPurchaseRecords(t *Table) ([]model.PurchaseRecord, int, error) {
	idx := columnIndex(t.Header, purchaseColumnAliases)
	if err := requireColumns("매입자료", idx, purchaseRequired); err != nil {
		return nil, 0, err
	}

	// 포장단위는 매입자료에서 필수는 아니지만 있으면 식별 키에 사용한다.
	unitIdx, hasUnit := idx["포장단위"]

	records := make([]model.PurchaseRecord, 0, len(t.Rows))
	badDates := 0
	for _, row := range t.Rows {
		rec := model.PurchaseRecord{
			ReceivedDate: parseDate(cell(row, idx["입고일자"])),
			Supplier:     normalize.Party(cell(row, idx["매 입 처"])),
			Manufacturer: normalize.Party(cell(row, idx["제 조 사"])),
			ProductName:  normalize.Key(cell(row, idx["상 품 명"])),
			Quantity:     parseQty(cell(row, idx["수량"])),
		}
		if hasUnit {
			rec.PackageUnit = normalize.Key(cell(row, unitIdx))
		}
		if rec.ProductName == "" {
			continue
		}
		if rec.ReceivedDate.IsZero() {
			badDates++
		}
		records = append(records, rec)
	}
	return records, badDates, nil
}

// BuildStockRecords 는 현재고 Table 을 StockRecord 목록으로 변환합니다.
func BuildStockRecords(t *Table) ([]model.StockRecord, error) {
	idx := columnIndex(t.Header, stockColumnAliases)
	if err := requireColumns("현재고", idx, stockRequired); err != nil {
		return nil, err
	}

	records := make([]model.StockRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := model.StockRecord{
			Supplier:       normalize.Party(cell(row, idx["매 입 처"])),
			Manufacturer:   normalize.Party(cell(row, idx["제 조 사"])),
			ProductName:    normalize.Key(cell(row, idx["상 품 명"])),
			PackageUnit:    normalize.Key(cell(row, idx["포장단위"])),
			QuantityOnHand: parseQty(cell(row, idx["재고수량"])),
		}
		if rec.ProductName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildAliasPairs 는 선택 입력인 별칭 테이블(from, to)을 쌍 목록으로 변환합니다.
func BuildAliasPairs(t *Table) ([][2]string, error) {
	idx := columnIndex(t.Header, aliasTableColumnAliases)
	if err := requireColumns("별칭 테이블", idx, aliasRequired); err != nil {
		return nil, err
	}

	pairs := make([][2]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		from := cell(row, idx["from"])
		to := cell(row, idx["to"])
		if from == "" && to == "" {
			continue
		}
		pairs = append(pairs, [2]string{from, to})
	}
	return pairs, nil
}
