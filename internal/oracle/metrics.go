package oracle

import "github.com/prometheus/client_golang/prometheus"

// Prometheus-метрики оракула. Вызовы оракула — доминирующая статья расходов
// поиска, поэтому их число и попадания в кэш наблюдаемы.
var (
	predictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Name:      "oracle_predictions_total",
		Help:      "Общее число запросов предсказания биома.",
	})
	cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Name:      "oracle_cache_hits_total",
		Help:      "Число предсказаний, обслуженных из кэша BadgerDB.",
	})
)

func init() {
	prometheus.MustRegister(predictionsTotal, cacheHitsTotal)
}
