package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 検証失敗・制約違反のカウンタ
// nilのままでも呼べる（メトリクス無効）
type Recorder struct {
	validationFailures *prometheus.CounterVec
	integrityFailures  *prometheus.CounterVec
}

// DI（テストでは専用のregistryを渡す）
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "retail",
				Name:      "validation_failures_total",
				Help:      "検証で弾かれたフィールド数（entity・field別）",
			},
			[]string{"entity", "field"},
		),
		integrityFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "retail",
				Name:      "integrity_violations_total",
				Help:      "DB制約で拒否された書き込み数",
			},
			[]string{"entity"},
		),
	}
	if reg != nil {
		reg.MustRegister(r.validationFailures, r.integrityFailures)
	}
	return r
}

// 不正フィールド1件ごとに+1
// fieldには行番号などを含めない（系列数を固定する）
func (r *Recorder) ValidationFailed(entity string, fields []string) {
	if r == nil {
		return
	}
	for _, f := range fields {
		r.validationFailures.WithLabelValues(entity, f).Inc()
	}
}

// 一意制約・外部キー違反で書き込めなかった
func (r *Recorder) IntegrityViolation(entity string) {
	if r == nil {
		return
	}
	r.integrityFailures.WithLabelValues(entity).Inc()
}
