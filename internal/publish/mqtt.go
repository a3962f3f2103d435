package publish

import (
	"errors"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/five82/svitlo/internal/logging"
)

// Config holds the MQTT connection parameters.
type Config struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
	Retain      bool
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

const (
	publishTimeout = 5 * time.Second
	availOnline    = "online"
	availOffline   = "offline"
)

// MQTTPublisher publishes updates through an Eclipse Paho client.
type MQTTPublisher struct {
	cli    pahoClient
	prefix string
	qos    byte
	retain bool
	log    logging.Logger
}

// NewMQTTPublisher connects to the broker. The availability topic carries
// "online" while connected and "offline" as the last will.
func NewMQTTPublisher(cfg Config) (*MQTTPublisher, error) {
	opts := NewClientOptions(cfg)
	log := logging.New("mqtt")
	p := &MQTTPublisher{
		prefix: strings.Trim(cfg.TopicPrefix, "/"),
		qos:    cfg.QoS,
		retain: cfg.Retain,
		log:    log,
	}
	availTopic := p.availabilityTopic()
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Publish(availTopic, p.qos, true, availOnline); token.WaitTimeout(publishTimeout) && token.Error() != nil {
			log.Errorf("publish availability: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, token.Error())
	}
	p.cli = c
	return p, nil
}

// NewClientOptions builds paho options from Config. An empty client ID is
// replaced by a random one.
func NewClientOptions(cfg Config) *paho.ClientOptions {
	clientID := strings.TrimSpace(cfg.ClientID)
	if clientID == "" {
		clientID = "svitlo-" + uuid.NewString()
	}
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(clientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	prefix := strings.Trim(cfg.TopicPrefix, "/")
	opts.SetWill(prefix+"/availability", availOffline, cfg.QoS, true)
	return opts
}

func (p *MQTTPublisher) availabilityTopic() string {
	return p.prefix + "/availability"
}

// Publish sends every message of the update. All messages are attempted and
// their errors joined.
func (p *MQTTPublisher) Publish(u Update) error {
	if !p.cli.IsConnected() {
		return errors.New("mqtt not connected")
	}
	msgs, err := BuildMessages(p.prefix, u)
	if err != nil {
		return err
	}
	var errs []error
	for _, m := range msgs {
		token := p.cli.Publish(m.Topic, p.qos, p.retain, m.Payload)
		if !token.WaitTimeout(publishTimeout) {
			errs = append(errs, fmt.Errorf("publish %s: timeout", m.Topic))
			continue
		}
		if err := token.Error(); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", m.Topic, err))
		}
	}
	if len(errs) == 0 {
		p.log.Debugf("published %d messages", len(msgs))
	}
	return errors.Join(errs...)
}

// Close marks the publisher offline and disconnects.
func (p *MQTTPublisher) Close() {
	if p.cli.IsConnected() {
		token := p.cli.Publish(p.availabilityTopic(), p.qos, true, availOffline)
		token.WaitTimeout(publishTimeout)
	}
	p.cli.Disconnect(250)
}
