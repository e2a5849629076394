package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the process-owned metrics observer injected into usecases.
// It is intentionally independent of request-scoped state.
type Recorder interface {
	IncGamesCreated()
	IncGamesPurchased()
	IncGamesQueried()
	IncSettlementsPublished()
	IncSettlementsFailed()
}

type PrometheusRecorder struct {
	gamesCreated         prometheus.Counter
	gamesPurchased       prometheus.Counter
	gamesQueried         prometheus.Counter
	settlementsPublished prometheus.Counter
	settlementsFailed    prometheus.Counter
}

func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		gamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gamestore_games_created_total",
			Help: "Number of games registered in the catalog.",
		}),
		gamesPurchased: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gamestore_games_purchased_total",
			Help: "Number of accepted purchases.",
		}),
		gamesQueried: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gamestore_games_queried_total",
			Help: "Number of catalog list/get queries served.",
		}),
		settlementsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gamestore_settlements_published_total",
			Help: "Number of settlement events delivered to the broker.",
		}),
		settlementsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gamestore_settlements_failed_total",
			Help: "Number of settlement deliveries abandoned after retries.",
		}),
	}
	reg.MustRegister(
		r.gamesCreated,
		r.gamesPurchased,
		r.gamesQueried,
		r.settlementsPublished,
		r.settlementsFailed,
	)
	return r
}

func (r *PrometheusRecorder) IncGamesCreated()         { r.gamesCreated.Inc() }
func (r *PrometheusRecorder) IncGamesPurchased()       { r.gamesPurchased.Inc() }
func (r *PrometheusRecorder) IncGamesQueried()         { r.gamesQueried.Inc() }
func (r *PrometheusRecorder) IncSettlementsPublished() { r.settlementsPublished.Inc() }
func (r *PrometheusRecorder) IncSettlementsFailed()    { r.settlementsFailed.Inc() }

type NopRecorder struct{}

func NewNopRecorder() Recorder { return NopRecorder{} }

func (NopRecorder) IncGamesCreated()         {}
func (NopRecorder) IncGamesPurchased()       {}
func (NopRecorder) IncGamesQueried()         {}
func (NopRecorder) IncSettlementsPublished() {}
func (NopRecorder) IncSettlementsFailed()    {}
