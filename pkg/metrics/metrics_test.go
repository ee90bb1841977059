package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording streaming engine metrics", func() {
			Convey("Then it should record streamed and discarded players", func() {
				So(func() {
					RecordPlayerStreamed()
					RecordPlayerStreamed()
					RecordPlayerDiscarded()
				}, ShouldNotPanic)
			})

			Convey("And it should record heap replacements and cutoffs", func() {
				So(func() {
					RecordHeapReplacement()
					RecordCutoff()
				}, ShouldNotPanic)
			})

			Convey("And it should record ranking durations", func() {
				So(func() {
					RecordOnlineRankDuration(0.25)
					RecordBatchRankDuration("heap", 1.5)
					RecordBatchRankDuration("quickselect", 2.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording result metrics", func() {
			Convey("Then it should update the gauges", func() {
				So(func() {
					UpdateTopSetSize(50)
					UpdateRosterSize(1000)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording errors", func() {
			Convey("Then it should record by component and reason", func() {
				So(func() {
					RecordRankError("online", "invalid_interval")
					RecordRankError("online", "source_failure")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording simulation metrics", func() {
			Convey("Then it should record generated players", func() {
				So(func() {
					RecordPlayersGenerated(1000)
					RecordGenerationDuration(12.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update the system gauges", func() {
				So(func() {
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(10)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("Then it should be non-nil and gatherable", func() {
			registry := GetRegistry()
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
