// C:\Dev\SM\exports\excel.go

// Package exports 는 최종 조정 테이블을 발주서 파일(Excel/ZIP/PDF)로
// 직렬화합니다. 수치 계산은 하지 않으며 orders 패키지가 넘겨준 값과
// 컬럼 구성을 그대로 씁니다.
package exports

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/orders"
)

// DefaultSheetName 은 그룹별 개별 파일에서 사용하는 시트 이름입니다.
const DefaultSheetName = "발주서"

const (
	maxColumnWidth     = 40
	shortageFillColor  = "FFE5E5" // 부족/발주 강조(연한 빨강)
	overstockFillColor = "EAF4FF" // 과재고 강조(연한 파랑)
	headerFillColor    = "D9E1F2"
)

// BuildGroupWorkbook 은 그룹 하나를 시트 1장짜리 Excel 로 만듭니다.
func BuildGroupWorkbook(g orders.Group, opt model.Options) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), DefaultSheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, DefaultSheetName, g.Rows, opt); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// BuildWorkbook 은 그룹별 시트로 구성된 Excel 1개를 만듭니다.
// 그룹이 하나도 없으면 헤더만 있는 시트 1장을 만듭니다(빈 결과도 정상 출력).
func BuildWorkbook(groups []orders.Group, opt model.Options) (*excelize.File, error) {
	f := excelize.NewFile()

	if len(groups) == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), DefaultSheetName); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, DefaultSheetName, nil, opt); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	}

	// 시트명 충돌(정제 후 동일해지는 그룹명)은 번호를 붙여 회피한다
	used := make(map[string]bool)
	for i, g := range groups {
		name := orders.UniqueSheetName(g.Name, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				f.Close()
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				f.Close()
				return nil, err
			}
		}
		if err := writeSheet(f, name, g.Rows, opt); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// writeSheet 는 헤더 강조, 부족/과재고 셀 강조, 컬럼 폭 자동 조정까지 포함해
// 시트 1장을 채웁니다.
func writeSheet(f *excelize.File, sheet string, rows []model.ReconciliationRow, opt model.Options) error {
	headers := orders.HeaderColumns(opt.Grouping, opt.BaselineDays)

	headerCells := make([]interface{}, len(headers))
	widths := make([]int, len(headers))
	for i, h := range headers {
		headerCells[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return err
	}

	shortageCol, overstockCol, orderCol := highlightColumns(headers)
	for i, row := range rows {
		cells := orders.RowCells(row, opt.Grouping)
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return err
		}
		for c, v := range cells {
			if w := utf8.RuneCountInString(fmt.Sprint(v)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	if err := applyStyles(f, sheet, rows, opt, shortageCol, overstockCol, orderCol, len(headers)); err != nil {
		return err
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(w + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// highlightColumns 는 강조 대상 컬럼의 0-기준 위치를 찾습니다(없으면 -1).
func highlightColumns(headers []string) (shortage, overstock, order int) {
	shortage, overstock, order = -1, -1, -1
	for i, h := range headers {
		switch h {
		case "부족수량":
			shortage = i
		case "과재고":
			overstock = i
		case "발주수량":
			order = i
		}
	}
	return shortage, overstock, order
}

func applyStyles(f *excelize.File, sheet string, rows []model.ReconciliationRow, opt model.Options, shortageCol, overstockCol, orderCol, columns int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	shortageStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{shortageFillColor}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	overstockStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{overstockFillColor}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		if row.ShortageQty > 0 {
			for _, c := range []int{shortageCol, orderCol} {
				if c < 0 {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(c+1, i+2)
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, axis, axis, shortageStyle); err != nil {
					return err
				}
			}
		}
		if row.OverstockQty > 0 && overstockCol >= 0 {
			axis, err := excelize.CoordinatesToCellName(overstockCol+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, axis, axis, overstockStyle); err != nil {
				return err
			}
		}
	}
	return nil
}
