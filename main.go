// C:\Dev\SM\main.go

package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/woohaehyun/SM/config"
	"github.com/woohaehyun/SM/exports"
	"github.com/woohaehyun/SM/orders"
	"github.com/woohaehyun/SM/settings"
)

// =======================================================================
// 홈 화면 (파일 업로드 + 옵션 + 미리보기)
// =======================================================================

func serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	const html = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>신명약품 자동발주 - 수량 중심</title>
<style>
  body { font-family: "Malgun Gothic", sans-serif; margin: 20px; }
  fieldset { margin-bottom: 12px; }
  table { border-collapse: collapse; margin-top: 12px; }
  th, td { border: 1px solid #999; padding: 3px 8px; font-size: 13px; }
  th { background: #d9e1f2; }
  td.shortage { background: #ffe5e5; font-weight: 700; }
  td.overstock { background: #eaf4ff; }
  .kpi { display: inline-block; margin-right: 24px; font-size: 15px; }
  .kpi b { font-size: 20px; }
</style>
</head>
<body>
<h1>💊 신명약품 자동발주 - 수량 중심</h1>
<p>가격/단가 정보는 전부 제외하고, 현재고·매출수량·매입수량 대비 발주수량에만 집중합니다.</p>

<form id="runForm">
  <fieldset>
    <legend>📂 파일 업로드 (xlsx/csv)</legend>
    매출자료 <input type="file" name="sales" required>
    매입자료 <input type="file" name="purchase" required>
    현재고 <input type="file" name="stock" required><br><br>
    명칭 별칭표(선택) <input type="file" name="alias">
    제조사 별칭표(선택) <input type="file" name="manufacturerAlias">
  </fieldset>
  <fieldset>
    <legend>⚙️ 발주 기준</legend>
    최근 N일 판매량 <input type="number" name="baselineDays" min="1" max="365" value="30">
    <input type="hidden" name="useRecentInbound" value="false">
    <label><input type="checkbox" name="useRecentInbound" value="true" checked> 최근 입고수량 반영</label>
    반영 일수 <input type="number" name="recentDays" min="1" max="90" value="14">
    부족수량 하한 <input type="number" name="minShortage" min="0" value="0">
    <input type="hidden" name="orderOnly" value="false">
    <label><input type="checkbox" name="orderOnly" value="true" checked> 발주 필요 항목만</label>
    <input type="hidden" name="includeZeroSales" value="false">
    <label><input type="checkbox" name="includeZeroSales" value="true"> 판매 0 재고 품목 포함</label>
  </fieldset>
  <fieldset>
    <legend>📁 그룹/내보내기</legend>
    그룹 기준
    <select name="grouping">
      <option value="supplier">매 입 처</option>
      <option value="manufacturer">제 조 사</option>
      <option value="both">제조사+매입처</option>
      <option value="manufacturerOnly">제조사 고정(매입처 숨김)</option>
    </select>
    내보내기
    <select name="export">
      <option value="zip">그룹별 Excel ZIP</option>
      <option value="workbook">Excel 1개(그룹별 시트)</option>
    </select>
    분석 기간
    <select name="periodMode">
      <option value="auto">자동(최근 3개월)</option>
      <option value="manual">수동 지정</option>
    </select>
    <input type="date" name="periodStart"> ~ <input type="date" name="periodEnd">
  </fieldset>
  <fieldset>
    <legend>🔎 미리보기 필터</legend>
    상품명 검색 <input type="text" name="keyword">
    제조사(쉼표 구분) <input type="text" name="manufacturers">
    매입처(쉼표 구분) <input type="text" name="suppliers">
  </fieldset>
  <button type="button" id="analyzeBtn">📊 분석 실행</button>
  <button type="submit" formaction="/api/orders/export" formmethod="post">📥 발주서 다운로드</button>
  <button type="submit" formaction="/api/orders/export/pdf" formmethod="post">🖨 PDF 발주서</button>
</form>

<div id="summary"></div>
<div id="result"></div>

<script>
const form = document.getElementById('runForm');
document.getElementById('analyzeBtn').addEventListener('click', () => {
  const resultDiv = document.getElementById('result');
  resultDiv.textContent = '분석 중...';
  fetch('/api/orders/analyze', { method: 'POST', body: new FormData(form) })
    .then(resp => resp.ok ? resp.json() : resp.text().then(t => { throw new Error(t); }))
    .then(render)
    .catch(err => { resultDiv.textContent = '오류: ' + err.message; });
});

function render(data) {
  const s = data.summary;
  document.getElementById('summary').innerHTML =
    '<span class="kpi">총 품목수 <b>' + s.totalItems.toLocaleString() + '</b></span>' +
    '<span class="kpi">발주 필요 품목수 <b>' + s.toOrderItems.toLocaleString() + '</b></span>' +
    '<span class="kpi">부족수량 합계 <b>' + s.totalShortage.toLocaleString() + '</b></span>' +
    '<span class="kpi">과재고 합계 <b>' + s.totalOverstock.toLocaleString() + '</b></span>';

  const days = data.options.baselineDays;
  const head = ['제 조 사','매 입 처','상 품 명','포장단위','재고수량','최근'+days+'일_판매량','기준판매량','최근입고수량','부족수량','과재고','발주수량'];
  let html = '<table><tr>' + head.map(h => '<th>' + h + '</th>').join('') + '</tr>';
  for (const r of data.rows) {
    const shortCls = r.shortageQty > 0 ? ' class="shortage"' : '';
    const overCls = r.overstockQty > 0 ? ' class="overstock"' : '';
    html += '<tr><td>' + (r.manufacturer || '미지정') + '</td><td>' + (r.supplier || '미지정') + '</td>' +
      '<td>' + r.productName + '</td><td>' + r.packageUnit + '</td>' +
      '<td>' + r.stockQty.toLocaleString() + '</td><td>' + r.periodSalesQty.toLocaleString() + '</td>' +
      '<td>' + r.baselineQty.toLocaleString() + '</td><td>' + r.recentInboundQty.toLocaleString() + '</td>' +
      '<td' + shortCls + '>' + r.shortageQty.toLocaleString() + '</td>' +
      '<td' + overCls + '>' + r.overstockQty.toLocaleString() + '</td>' +
      '<td' + shortCls + '>' + r.orderQty.toLocaleString() + '</td></tr>';
  }
  document.getElementById('result').innerHTML = html + '</table>';
}
</script>
</body>
</html>
`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// =======================================================================
// main
// =======================================================================

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	if _, err := config.LoadConfig(); err != nil {
		logger.Warnw("설정 파일을 읽지 못해 기본값으로 시작합니다", "error", err)
	}

	http.HandleFunc("/", serveHome)
	http.HandleFunc("/api/orders/analyze", orders.AnalyzeHandler(logger))    // 분석 미리보기
	http.HandleFunc("/api/orders/export", exports.ExportHandler(logger))     // ZIP / 단일 Excel
	http.HandleFunc("/api/orders/export/pdf", exports.ExportPDFHandler(logger)) // 인쇄용 PDF
	http.HandleFunc("/api/settings", settings.Handler(logger))

	logger.Info("서버 시작: http://localhost:8080")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Fatalw("ListenAndServe 실패", "error", err)
	}
}
