// C:\Dev\SM\exports\pdf.go

package exports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/orders"
)

const pdfFontFamily = "hangul"

// PDFFileName 은 PDF 내보내기의 다운로드 파일명입니다.
func PDFFileName(opt model.Options) string {
	return fmt.Sprintf("발주서_전체_최근%d일.pdf", opt.BaselineDays)
}

/**
 * @brief 인쇄용 발주서 PDF(그룹당 1페이지 이상)를 기록합니다.
 * @param fontPath 한글 출력용 UTF-8 TTF 경로(설정 파일의 pdfFontPath)
 * @details
 * gofpdf 기본 폰트는 한글을 지원하지 않으므로 시스템 폰트(예: 맑은 고딕)를
 * 로드해 사용합니다. 폰트 파일이 없으면 에러를 반환합니다.
 */
func WritePDF(w io.Writer, groups []orders.Group, opt model.Options, fontPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8Font(pdfFontFamily, "", fontPath)
	if pdf.Err() {
		return fmt.Errorf("PDF 폰트를 불러오지 못했습니다(%s): %s", fontPath, pdf.Error())
	}
	pdf.SetAutoPageBreak(true, 12)

	headers := orders.HeaderColumns(opt.Grouping, opt.BaselineDays)
	widths := columnWidths(len(headers))

	if len(groups) == 0 {
		groups = []orders.Group{{Name: "발주대상없음"}}
	}
	for _, g := range groups {
		pdf.AddPage()
		pdf.SetFont(pdfFontFamily, "", 13)
		pdf.CellFormat(0, 9, fmt.Sprintf("%s 발주서 (최근 %d일 기준)", g.Name, opt.BaselineDays), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont(pdfFontFamily, "", 8)
		pdf.SetFillColor(217, 225, 242)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFillColor(255, 229, 229)
		for _, row := range g.Rows {
			fill := row.ShortageQty > 0
			for i, v := range orders.RowCells(row, opt.Grouping) {
				pdf.CellFormat(widths[i], 6, fmt.Sprint(v), "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	return pdf.Output(w)
}

// columnWidths 는 A4 가로 폭을 문자열 컬럼(상품명 등) 위주로 배분합니다.
func columnWidths(n int) []float64 {
	// 가로 A4 유효 폭 약 277mm. 앞쪽 명칭 컬럼을 넓게 잡는다.
	const usable = 277.0
	widths := make([]float64, n)
	numericCols := 7 // 재고수량 이후의 수치 컬럼 수
	nameCols := n - numericCols

	numericWidth := 18.0
	remaining := usable - numericWidth*float64(numericCols)
	for i := range widths {
		if i < nameCols {
			widths[i] = remaining / float64(nameCols)
		} else {
			widths[i] = numericWidth
		}
	}
	return widths
}
