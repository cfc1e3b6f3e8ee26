package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storysketch_chat_messages_total",
		Help: "Total number of successfully processed chat messages.",
	})

	fileUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storysketch_file_updates_total",
		Help: "Total number of text files updated through the chat workflow.",
	})

	transcriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storysketch_transcriptions_total",
			Help: "Total number of transcription attempts by status.",
		},
		[]string{"status"},
	)
)
