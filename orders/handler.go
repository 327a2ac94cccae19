// C:\Dev\SM\orders\handler.go

package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/woohaehyun/SM/config"
	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/normalize"
	"github.com/woohaehyun/SM/parsers"
)

// 업로드 폼의 파일 필드명.
const (
	fileFieldSales             = "sales"
	fileFieldPurchase          = "purchase"
	fileFieldStock             = "stock"
	fileFieldAlias             = "alias"
	fileFieldManufacturerAlias = "manufacturerAlias"
)

const maxUploadBytes = 64 << 20

// AnalyzeHandler 는 업로드된 3종 자료로 발주 분석을 실행하고 미리보기용
// JSON 을 반환합니다. keyword/manufacturers/suppliers 파라미터는 화면 필터로,
// 내보내기 결과에는 영향을 주지 않습니다.
func AnalyzeHandler(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, opt, err := ParseRunRequest(r)
		if err != nil {
			logger.Warnw("분석 요청 해석 실패", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := Run(in, opt)
		if err != nil {
			WriteRunError(w, logger, err)
			return
		}
		logger.Infow("발주 분석 완료",
			"totalItems", result.Summary.TotalItems,
			"toOrderItems", result.Summary.ToOrderItems,
			"baselineDays", opt.BaselineDays,
		)

		result.Rows = filterView(result.Rows, r)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// WriteRunError 는 분석/내보내기 공통의 실패 응답입니다. 전제조건 위반
// (필수 컬럼 누락 등)은 400, 그 외는 500 으로 응답합니다. 어느 쪽이든
// 부분 결과는 내보내지 않습니다.
func WriteRunError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var missing *parsers.MissingColumnsError
	if errors.As(err, &missing) {
		logger.Warnw("입력 검증 실패", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Errorw("발주 분석 실패", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

/**
 * @brief multipart 요청에서 입력 테이블과 실행 옵션을 추출합니다.
 * @details
 * 매출/매입/현재고 3개 파일은 필수이고, 별칭 테이블 2개는 선택입니다.
 * 옵션은 설정 파일의 기본값 위에 폼 값이 있는 항목만 덮어씁니다.
 * 여기서 만든 Options 는 이후 변경되지 않습니다.
 */
func ParseRunRequest(r *http.Request) (Input, model.Options, error) {
	var in Input

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return in, model.Options{}, errors.New("업로드 양식을 해석할 수 없습니다: " + err.Error())
	}

	var err error
	if in.Sales, err = readTableFile(r, fileFieldSales, "매출자료"); err != nil {
		return in, model.Options{}, err
	}
	if in.Purchases, err = readTableFile(r, fileFieldPurchase, "매입자료"); err != nil {
		return in, model.Options{}, err
	}
	if in.Stock, err = readTableFile(r, fileFieldStock, "현재고"); err != nil {
		return in, model.Options{}, err
	}
	if in.GenericAlias, err = readOptionalTableFile(r, fileFieldAlias); err != nil {
		return in, model.Options{}, err
	}
	if in.ManufacturerAlias, err = readOptionalTableFile(r, fileFieldManufacturerAlias); err != nil {
		return in, model.Options{}, err
	}

	return in, optionsFromForm(r), nil
}

func readTableFile(r *http.Request, field, label string) (*parsers.Table, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, errors.New(label + " 파일이 업로드되지 않았습니다")
	}
	defer file.Close()
	return parsers.ReadTable(header.Filename, file)
}

func readOptionalTableFile(r *http.Request, field string) (*parsers.Table, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parsers.ReadTable(header.Filename, file)
}

// optionsFromForm 은 설정 파일의 기본값에 폼 값을 덮어 옵션을 만듭니다.
func optionsFromForm(r *http.Request) model.Options {
	cfg := config.GetConfig()
	opt := model.Options{
		BaselineDays:     cfg.BaselineDays,
		UseRecentInbound: cfg.UseRecentInbound,
		RecentDays:       cfg.RecentDays,
		MinShortage:      cfg.MinShortage,
		OrderOnly:        cfg.OrderOnly,
		IncludeZeroSales: cfg.IncludeZeroSales,
		Grouping:         model.GroupingMode(cfg.Grouping),
		Export:           model.ExportMode(cfg.Export),
		PeriodMode:       model.PeriodAuto,
	}

	formInt(r, "baselineDays", &opt.BaselineDays)
	formBool(r, "useRecentInbound", &opt.UseRecentInbound)
	formInt(r, "recentDays", &opt.RecentDays)
	formInt(r, "minShortage", &opt.MinShortage)
	formBool(r, "orderOnly", &opt.OrderOnly)
	formBool(r, "includeZeroSales", &opt.IncludeZeroSales)

	if v := r.FormValue("grouping"); v != "" {
		opt.Grouping = model.GroupingMode(v)
	}
	if v := r.FormValue("export"); v != "" {
		opt.Export = model.ExportMode(v)
	}
	if r.FormValue("periodMode") == string(model.PeriodManual) {
		opt.PeriodMode = model.PeriodManual
		opt.PeriodStart = formDate(r, "periodStart")
		opt.PeriodEnd = formDate(r, "periodEnd")
	}
	return opt
}

func formInt(r *http.Request, field string, dst *int) {
	if v := strings.TrimSpace(r.FormValue(field)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// formBool 은 체크박스 필드를 해석합니다. 체크박스는 해제 상태에서 아무 값도
// 전송하지 않으므로, 홈 화면 폼은 hidden 동반 필드로 항상 "false"를 함께
// 보냅니다. 값이 하나라도 참이면 참(체크), 값이 있는데 참이 없으면 거짓(해제),
// 필드 자체가 없으면 기본값을 유지합니다.
func formBool(r *http.Request, field string, dst *bool) {
	r.FormValue(field) // 폼 파싱 보장
	values := r.Form[field]
	if len(values) == 0 {
		return
	}
	*dst = false
	for _, v := range values {
		switch strings.ToLower(v) {
		case "true", "on", "1":
			*dst = true
		}
	}
}

func formDate(r *http.Request, field string) time.Time {
	t, err := time.Parse("2006-01-02", r.FormValue(field))
	if err != nil {
		return time.Time{}
	}
	return t
}

// filterView 는 미리보기 전용 필터(상품명 검색, 제조사/매입처 선택)를 적용합니다.
func filterView(rows []model.ReconciliationRow, r *http.Request) []model.ReconciliationRow {
	keyword := strings.ToUpper(strings.TrimSpace(r.FormValue("keyword")))
	manufacturers := splitCSV(r.FormValue("manufacturers"))
	suppliers := splitCSV(r.FormValue("suppliers"))
	if keyword == "" && manufacturers == nil && suppliers == nil {
		return rows
	}

	out := make([]model.ReconciliationRow, 0, len(rows))
	for _, row := range rows {
		if keyword != "" && !strings.Contains(row.ProductName, keyword) {
			continue
		}
		if manufacturers != nil && !manufacturers[displayValue(row.Manufacturer)] {
			continue
		}
		if suppliers != nil && !suppliers[displayValue(row.Supplier)] {
			continue
		}
		out = append(out, row)
	}
	return out
}

func splitCSV(s string) map[string]bool {
	var set map[string]bool
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if normalize.IsMissing(part) && part != UnspecifiedLabel {
			continue
		}
		if set == nil {
			set = make(map[string]bool)
		}
		set[part] = true
	}
	return set
}
