package simulation

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Kind 시뮬레이션 종류
type Kind string

const (
	KindProfitAnalysis Kind = "PROFIT_ANALYSIS" // 수익성 분석 (4개 조달 시나리오)
	KindKepcoCharge    Kind = "KEPCO_CHARGE"    // 한전 시설부담금
)

// IsValid 유효한 종류인지 확인
func (k Kind) IsValid() bool {
	return k == KindProfitAnalysis || k == KindKepcoCharge
}

// Simulation 저장된 계산 이력
// Maps to simulation.runs table
type Simulation struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Kind      Kind            `json:"kind" db:"kind"`
	Input     json.RawMessage `json:"input" db:"input"`   // 요청 원본 (JSONB)
	Result    json.RawMessage `json:"result" db:"result"` // 계산 결과 (JSONB)
	CreatedTS time.Time       `json:"created_ts" db:"created_ts"`
}

// New 입력/결과를 직렬화하여 새 시뮬레이션 생성
func New(kind Kind, input, result any) (*Simulation, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	in, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		ID:        uuid.New(),
		Kind:      kind,
		Input:     in,
		Result:    out,
		CreatedTS: time.Now(),
	}, nil
}

// ListFilter 시뮬레이션 목록 조회 조건
type ListFilter struct {
	Kind  *Kind
	Limit int // 기본 20, 최대 100
}

// Normalize 조회 조건 정규화
func (f *ListFilter) Normalize() error {
	if f.Kind != nil && !f.Kind.IsValid() {
		return ErrInvalidKind
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return nil
}
