package kafka

import "time"

// Config holds Kafka producer parameters.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long a writer buffers before flushing.
	// Zero means the package default.
	BatchTimeout time.Duration

	// WriteTimeout bounds a single WriteMessages round trip.
	// Zero means the kafka-go default.
	WriteTimeout time.Duration
}
