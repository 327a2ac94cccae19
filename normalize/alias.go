// C:\Dev\SM\normalize\alias.go

package normalize

// AliasMap 은 사용자 제공 동의어 테이블(from→to)의 조회용 맵입니다.
// from 쪽은 대상 시리즈와 동일한 Party 정규화를 거쳐 키로 저장합니다.
// 테이블에 없는 값은 정규화된 원형 그대로 통과시킵니다(부분 치환).
type AliasMap map[string]string

// NewAliasMap 은 (from, to) 쌍 목록으로 AliasMap 을 만듭니다.
// from 이 placeholder 이거나 to 가 빈 값인 행은 무시합니다.
// 동일 from 이 중복되면 나중 행이 우선합니다.
func NewAliasMap(pairs [][2]string) AliasMap {
	if len(pairs) == 0 {
		return nil
	}
	m := make(AliasMap, len(pairs))
	for _, p := range pairs {
		from := Party(p[0])
		to := p[1]
		if IsMissing(from) || to == "" {
			continue
		}
		m[from] = to
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// Apply 는 정규화된 명칭에 별칭 치환을 적용합니다. nil 맵은 항등 함수입니다.
func (m AliasMap) Apply(canonical string) string {
	if m == nil {
		return canonical
	}
	if to, ok := m[canonical]; ok {
		return to
	}
	return canonical
}
