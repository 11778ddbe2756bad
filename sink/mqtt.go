package sink

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type MQTTConfig struct {
	URL      string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
}

// MQTTSink publishes frames as JSON to a broker topic.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTSink connects to the broker and waits for the connection.
func NewMQTTSink(cfg MQTTConfig) (*MQTTSink, error) {
	if cfg.ClientID == "" {
		cfg.ClientID = "keyframe"
	}
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("sink: mqtt connect %s: %w", cfg.URL, token.Error())
	}
	return &MQTTSink{client: client, topic: cfg.Topic, qos: cfg.QoS}, nil
}

func (s *MQTTSink) Publish(f Frame) error {
	b, err := Encode(f)
	if err != nil {
		return fmt.Errorf("sink: encode frame %d: %w", f.Seq, err)
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("sink: mqtt publish %s: %w", s.topic, err)
	}
	return nil
}

func (s *MQTTSink) Close() error {
	s.client.Disconnect(250)
	return nil
}
