package orders

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/woohaehyun/SM/model"
	"github.com/woohaehyun/SM/parsers"
)

func formRequest(vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/orders/analyze", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// 체크박스를 해제하면 홈 화면 폼은 hidden 동반 필드로 "false"만 전송한다.
// 설정 기본값이 참이어도 폼에서 끌 수 있어야 한다.
func TestOptionsFromForm_UncheckedCheckboxTurnsOffDefault(t *testing.T) {
	vals := url.Values{
		"useRecentInbound": {"false"},
		"orderOnly":        {"false"},
	}
	opt := optionsFromForm(formRequest(vals))

	assert.False(t, opt.UseRecentInbound)
	assert.False(t, opt.OrderOnly)
}

// 체크 상태에서는 hidden 의 "false"와 체크박스의 "true"가 함께 오며,
// 값 순서와 무관하게 참으로 해석한다.
func TestOptionsFromForm_CheckedCheckboxWinsOverHidden(t *testing.T) {
	opt := optionsFromForm(formRequest(url.Values{
		"useRecentInbound": {"false", "true"},
	}))
	assert.True(t, opt.UseRecentInbound)

	opt = optionsFromForm(formRequest(url.Values{
		"includeZeroSales": {"true", "false"},
	}))
	assert.True(t, opt.IncludeZeroSales)
}

// 필드 자체가 없는 요청(폼 외 API 호출)은 설정 기본값을 유지한다.
func TestOptionsFromForm_AbsentFieldKeepsDefaults(t *testing.T) {
	opt := optionsFromForm(formRequest(url.Values{}))

	assert.True(t, opt.UseRecentInbound)
	assert.True(t, opt.OrderOnly)
	assert.False(t, opt.IncludeZeroSales)
	assert.Equal(t, 30, opt.BaselineDays)
}

func TestOptionsFromForm_Overrides(t *testing.T) {
	vals := url.Values{
		"baselineDays": {"60"},
		"grouping":     {string(model.GroupByManufacturer)},
	}
	opt := optionsFromForm(formRequest(vals))

	assert.Equal(t, 60, opt.BaselineDays)
	assert.Equal(t, model.GroupByManufacturer, opt.Grouping)
}

// 필수 컬럼 누락은 400, 그 외 실패는 500 으로 응답한다.
func TestWriteRunError_StatusSplit(t *testing.T) {
	logger := zap.NewNop().Sugar()

	rec := httptest.NewRecorder()
	WriteRunError(rec, logger, &parsers.MissingColumnsError{
		Source:  "매출자료",
		Columns: []string{"수량"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	WriteRunError(rec, logger, errors.New("디스크 오류"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
