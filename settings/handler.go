// C:\Dev\SM\settings\handler.go

package settings

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/woohaehyun/SM/config"
)

// Handler 는 /api/settings 의 GET(조회)/POST(저장)를 처리합니다.
func Handler(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg, err := config.LoadConfig()
			if err != nil {
				http.Error(w, "설정을 불러오지 못했습니다: "+err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cfg)

		case http.MethodPost:
			var payload config.Config
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "요청 본문이 올바르지 않습니다", http.StatusBadRequest)
				return
			}
			if err := config.SaveConfig(payload); err != nil {
				http.Error(w, "설정을 저장하지 못했습니다: "+err.Error(), http.StatusInternalServerError)
				return
			}
			logger.Infow("설정 저장", "baselineDays", payload.BaselineDays, "grouping", payload.Grouping)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "설정을 저장했습니다."})

		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}
