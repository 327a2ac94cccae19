// C:\Dev\SM\config\config.go

package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Config 는 분석 실행 옵션의 사용자 기본값입니다. `config.json`에 저장되며,
// 실제 실행 시에는 요청 파라미터가 이 값 위에 덮어써집니다.
// 파이프라인(orders.Run)은 이 패키지를 직접 읽지 않습니다.
type Config struct {
	BaselineDays     int    `json:"baselineDays"`     // 기준판매량 집계 일수 N
	UseRecentInbound bool   `json:"useRecentInbound"` // 최근 입고수량 반영
	RecentDays       int    `json:"recentDays"`       // 최근 입고 반영 일수
	MinShortage      int    `json:"minShortage"`      // 부족수량 하한
	OrderOnly        bool   `json:"orderOnly"`        // 발주 필요 항목만 보기
	IncludeZeroSales bool   `json:"includeZeroSales"` // 기간 판매 0 재고 품목 포함
	Grouping         string `json:"grouping"`         // 발주서 그룹 기준
	Export           string `json:"export"`           // 내보내기 방식 (zip / workbook)
	PdfFontPath      string `json:"pdfFontPath"`      // PDF 발주서용 한글 TTF 경로
}

var (
	// cfg 는 애플리케이션 전체에서 공유되는 설정 캐시입니다.
	cfg = defaults()
	mu  sync.RWMutex
)

const configFilePath = "./config.json"

// defaults 는 원본 운영값과 동일한 초기 설정입니다(N=30일, 최근입고 14일 반영).
func defaults() Config {
	return Config{
		BaselineDays:     30,
		UseRecentInbound: true,
		RecentDays:       14,
		MinShortage:      0,
		OrderOnly:        true,
		Grouping:         "supplier",
		Export:           "zip",
		PdfFontPath:      `C:\Windows\Fonts\malgun.ttf`,
	}
}

// LoadConfig 는 config.json 을 읽어 메모리에 캐시합니다.
// 파일이 없으면(최초 실행) 기본값을 반환하며 에러로 취급하지 않습니다.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	tempCfg := defaults()
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = tempCfg
	return cfg, nil
}

// SaveConfig 는 설정을 config.json 에 저장하고 캐시를 갱신합니다.
func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

// GetConfig 는 캐시된 현재 설정을 반환합니다.
func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
