// C:\Dev\SM\parsers\table.go

package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Table 은 업로드된 표 형식 파일의 원시 내용입니다.
// 첫 행을 헤더로, 이후를 데이터 행으로 취급합니다.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable 은 파일 확장자에 따라 xlsx 또는 csv 를 읽어 Table 로 만듭니다.
// ERP 에서 내려받은 csv 는 CP949(EUC-KR) 인 경우가 많아, UTF-8 이 아니면
// EUC-KR 로 간주하여 변환 후 파싱합니다.
func ReadTable(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readExcel(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("지원하지 않는 파일 형식입니다: %s (xlsx/csv 만 가능)", filename)
	}
}

func readExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel open error: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("시트가 없는 excel 파일입니다")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excel read error: %w", err)
	}
	return fromRows(rows), nil
}

func readCSV(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	// UTF-8 BOM 제거
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(bytes.NewReader(raw), korean.EUCKR.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse error: %w", err)
	}
	return fromRows(rows), nil
}

// fromRows 는 완전히 빈 행을 버리고 첫 행을 헤더로 분리합니다.
func fromRows(rows [][]string) *Table {
	var kept [][]string
	for _, row := range rows {
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return &Table{}
	}
	return &Table{Header: kept[0], Rows: kept[1:]}
}

// cell 은 행에서 idx 번째 값을 꺼냅니다. 행이 짧으면 빈 문자열입니다
// (excelize 의 GetRows 는 행 끝의 빈 셀을 잘라냅니다).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
