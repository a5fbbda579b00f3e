// Package metrics exposes Prometheus collectors for the bot.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	commandsApplied *prometheus.CounterVec
	commandsDropped *prometheus.CounterVec
	catchupsSent    prometheus.Counter
	roomsPlaying    prometheus.Gauge
)

// Init registers collectors with the default registry (idempotent).
// Until Init is called every recording helper is a no-op, which keeps
// tests free of global registry state.
func Init() {
	once.Do(func() {
		commandsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "videosync_commands_applied_total",
			Help: "Moderator commands parsed and applied, by command",
		}, []string{"command"})
		commandsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "videosync_commands_dropped_total",
			Help: "Chat messages dropped before applying, by reason",
		}, []string{"reason"})
		catchupsSent = promauto.NewCounter(prometheus.CounterOpts{
			Name: "videosync_catchups_sent_total",
			Help: "Catchup broadcasts sent to rooms",
		})
		roomsPlaying = promauto.NewGauge(prometheus.GaugeOpts{
			Name: "videosync_rooms_playing",
			Help: "Rooms whose playback clock is currently running",
		})
	})
}

// CommandApplied counts one applied moderator command.
func CommandApplied(command string) {
	if commandsApplied != nil {
		commandsApplied.WithLabelValues(command).Inc()
	}
}

// CommandDropped counts one silently dropped chat message.
func CommandDropped(reason string) {
	if commandsDropped != nil {
		commandsDropped.WithLabelValues(reason).Inc()
	}
}

// CatchupSent counts one outbound catchup broadcast.
func CatchupSent() {
	if catchupsSent != nil {
		catchupsSent.Inc()
	}
}

// SetRoomsPlaying records how many rooms are currently playing.
func SetRoomsPlaying(n int) {
	if roomsPlaying != nil {
		roomsPlaying.Set(float64(n))
	}
}
