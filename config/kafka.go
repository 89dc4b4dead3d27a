package config

import (
	"fmt"
	"net"
	"scorecard/utils"
	"strconv"

	"github.com/segmentio/kafka-go"
)

func CreateTopic(cfg *Config) error {
	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	conn, err := kafka.Dial("tcp", cfg.KafkaBroker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             cfg.KafkaTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 7 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "604800000",
			},
		},
	}
	return controllerConn.CreateTopics(topicConfig)
}

// GetWriter returns a writer for the tournament event topic. Messages are keyed by
// room code so one tournament's events stay ordered.
func GetWriter(cfg *Config) (*kafka.Writer, error) {
	if cfg.KafkaBroker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := CreateTopic(cfg); err != nil {
		return nil, err
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBroker),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}, nil
}
