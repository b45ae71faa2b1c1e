package sunrise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultMQTTTopic    = "sunrise"
	defaultMQTTClientID = "sunrise"
	defaultMQTTTimeout  = 5 * time.Second
	disconnectQuiesce   = 250 // milliseconds
)

// Notifier is told the outcome of every job run
type Notifier interface {
	Notify(ctx context.Context, result JobResult) error
}

// JobResult describes one run of a job
type JobResult struct {
	Job     string    `json:"job"`
	Start   time.Time `json:"start"`
	Elapsed float64   `json:"elapsed_seconds"`
	Output  string    `json:"output,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// MQTTConfig locates the broker job results are published to
type MQTTConfig struct {
	Broker   string `json:"broker"` // e.g. tcp://localhost:1883
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

// MQTTNotifier publishes each job result as JSON to Topic/<job name>
type MQTTNotifier struct {
	Client  mqtt.Client
	Topic   string
	Timeout time.Duration
}

// DialMQTT connects to the configured broker. The client keeps
// retrying in the background if the broker cannot be reached yet.
func DialMQTT(cfg MQTTConfig, logger *slog.Logger) (*MQTTNotifier, error) {
	if cfg.Broker == "" {
		return nil, errors.New("mqtt broker not set")
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = defaultMQTTClientID
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetClientID(clientID).
		SetDialer(&net.Dialer{KeepAlive: -1}).
		SetKeepAlive(60 * time.Second).
		SetPingTimeout(2 * time.Second).
		SetConnectRetry(true)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info("connected to mqtt broker", "broker", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("lost mqtt connection", "broker", cfg.Broker, "error", err)
	})

	client := mqtt.NewClient(opts)
	tok := client.Connect()
	if tok.WaitTimeout(defaultMQTTTimeout) && tok.Error() != nil {
		return nil, fmt.Errorf("connect to mqtt broker: %w", tok.Error())
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultMQTTTopic
	}
	return &MQTTNotifier{
		Client:  client,
		Topic:   topic,
		Timeout: defaultMQTTTimeout,
	}, nil
}

// Notify publishes result and waits for the broker to accept it
func (n *MQTTNotifier) Notify(ctx context.Context, result JobResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode job result: %w", err)
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaultMQTTTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	topic := strings.TrimSuffix(n.Topic, "/") + "/" + result.Job
	tok := n.Client.Publish(topic, 1, false, payload)
	select {
	case <-tok.Done():
		if err := tok.Error(); err != nil {
			return fmt.Errorf("publish %s: %w", topic, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w", topic, ctx.Err())
	}
}

// Close disconnects from the broker
func (n *MQTTNotifier) Close() {
	n.Client.Disconnect(disconnectQuiesce)
}
