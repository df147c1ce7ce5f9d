package search

import "github.com/prometheus/client_golang/prometheus"

// Prometheus-метрики поиска
var (
	regionsScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Name:      "regions_scanned_total",
		Help:      "Число обработанных регионов.",
	})
	chunksOnDisk = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Name:      "chunks_on_disk_total",
		Help:      "Число чанков, биомы которых прочитаны из сохранения.",
	})
	chunksPredicted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Name:      "chunks_predicted_total",
		Help:      "Число отсутствующих чанков, заполненных предсказаниями.",
	})
)

func init() {
	prometheus.MustRegister(regionsScanned, chunksOnDisk, chunksPredicted)
}
