package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LaunchpadMetrics holds all Prometheus metrics for the launchpad module
type LaunchpadMetrics struct {
	CampaignsCreated   prometheus.Counter
	BuysTotal          *prometheus.CounterVec
	FinalizationsTotal *prometheus.CounterVec
}

var (
	launchpadMetricsOnce sync.Once
	launchpadMetrics     *LaunchpadMetrics
)

// getLaunchpadMetrics lazily registers the module metrics exactly once;
// subsequent keepers share the same collectors.
func getLaunchpadMetrics() *LaunchpadMetrics {
	launchpadMetricsOnce.Do(func() {
		launchpadMetrics = &LaunchpadMetrics{
			CampaignsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "paw",
				Subsystem: "launchpad",
				Name:      "campaigns_created_total",
				Help:      "Total number of launchpad campaigns created",
			}),
			BuysTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "paw",
				Subsystem: "launchpad",
				Name:      "buys_total",
				Help:      "Total number of bonding curve purchases",
			}, []string{"campaign_id"}),
			FinalizationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "paw",
				Subsystem: "launchpad",
				Name:      "finalizations_total",
				Help:      "Total campaigns finalized, labelled by venue kind",
			}, []string{"venue_kind"}),
		}
	})
	return launchpadMetrics
}
