// Package messaging is lesson 35: event streaming with Kafka.
//
// Brokers are external infrastructure, so the lesson runs in two modes.
// Offline (the default) it walks the producer/consumer anatomy and
// exercises the event codec. With GOLESSONS_KAFKA set to a broker list
// (for example "localhost:9092") it also performs a live produce and
// consume round trip with segmentio/kafka-go.
package messaging
