// C:\Dev\SM\exports\handler.go

package exports

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/woohaehyun/SM/config"
	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/orders"
)

// ExportHandler 는 분석을 실행한 뒤 설정된 방식(ZIP/단일 Excel)으로
// 발주서를 내려줍니다. 분석 자체는 미리보기와 완전히 동일한 파이프라인입니다.
func ExportHandler(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, opt, ok := runAndGroup(w, r, logger)
		if !ok {
			return
		}

		switch opt.Export {
		case model.ExportSingleWorkbook:
			f, err := BuildWorkbook(groups, opt)
			if err != nil {
				logger.Errorw("발주서 생성 실패", "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			defer f.Close()
			setDownloadHeaders(w, WorkbookFileName(opt), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := f.Write(w); err != nil {
				logger.Errorw("발주서 전송 실패", "error", err)
			}

		default: // model.ExportZipPerGroup
			setDownloadHeaders(w, ZipFileName(opt), "application/zip")
			if err := WriteZip(w, groups, opt); err != nil {
				logger.Errorw("발주서 ZIP 생성 실패", "error", err)
			}
		}
		logger.Infow("발주서 내보내기 완료", "groups", len(groups), "mode", opt.Export)
	}
}

// ExportPDFHandler 는 인쇄용 PDF 발주서를 내려줍니다.
func ExportPDFHandler(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, opt, ok := runAndGroup(w, r, logger)
		if !ok {
			return
		}

		fontPath := config.GetConfig().PdfFontPath
		setDownloadHeaders(w, PDFFileName(opt), "application/pdf")
		if err := WritePDF(w, groups, opt, fontPath); err != nil {
			logger.Errorw("발주서 PDF 생성 실패", "error", err, "fontPath", fontPath)
		}
	}
}

// runAndGroup 은 요청 해석 → 파이프라인 실행 → 그룹 분할까지의 공통 과정입니다.
// 실패 시 이미 응답을 썼으므로 ok=false 를 반환합니다.
func runAndGroup(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger) ([]orders.Group, model.Options, bool) {
	in, opt, err := orders.ParseRunRequest(r)
	if err != nil {
		logger.Warnw("내보내기 요청 해석 실패", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, model.Options{}, false
	}

	result, err := orders.Run(in, opt)
	if err != nil {
		orders.WriteRunError(w, logger, err)
		return nil, model.Options{}, false
	}

	return orders.GroupRows(result.Rows, result.Options.Grouping), result.Options, true
}

func setDownloadHeaders(w http.ResponseWriter, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
}
