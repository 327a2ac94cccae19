// C:\Dev\SM\exports\zip.go

package exports

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/orders"
)

// ZipFileName 은 ZIP 내보내기의 다운로드 파일명입니다.
func ZipFileName(opt model.Options) string {
	return fmt.Sprintf("발주서_전체_최근%d일.zip", opt.BaselineDays)
}

// WorkbookFileName 은 단일 Excel 내보내기의 다운로드 파일명입니다.
func WorkbookFileName(opt model.Options) string {
	return fmt.Sprintf("발주서_전체_최근%d일.xlsx", opt.BaselineDays)
}

// GroupFileName 은 ZIP 안에 들어가는 그룹별 Excel 파일명입니다.
func GroupFileName(groupName string, opt model.Options) string {
	return fmt.Sprintf("%s 발주서(최근%d일).xlsx", orders.SafeSheetName(groupName), opt.BaselineDays)
}

/**
 * @brief 그룹별 개별 Excel 파일을 ZIP 하나로 묶어 기록합니다.
 * @details
 * 그룹이 없으면(필터 결과 0건) 헤더만 있는 발주서 1장을 담은 ZIP 을 만듭니다.
 * 파일명이 정제 후 충돌하면 번호를 붙입니다.
 */
func WriteZip(w io.Writer, groups []orders.Group, opt model.Options) error {
	zw := zip.NewWriter(w)

	if len(groups) == 0 {
		groups = []orders.Group{{Name: "발주대상없음"}}
	}

	used := make(map[string]bool)
	for _, g := range groups {
		name := GroupFileName(orders.UniqueSheetName(g.Name, used), opt)

		f, err := BuildGroupWorkbook(g, opt)
		if err != nil {
			return fmt.Errorf("%s 발주서 생성 실패: %w", g.Name, err)
		}
		entry, err := zw.Create(name)
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Write(entry); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}
	return zw.Close()
}
