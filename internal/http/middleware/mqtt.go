package middleware

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Displays are pollers; MQTT only nudges them to re-poll right after staff
// edit the schedule instead of waiting out their poll interval. Every notify
// is best-effort: a broker outage never fails an admin write.

var (
	mqttClient mqtt.Client
	brokerURL  = "tcp://0.0.0.0:1883" // Default MQTT broker URL
)

const refreshTopicAll = "displays/all/refresh"

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL allows configuration of the MQTT broker URL
func SetBrokerURL(url string) {
	brokerURL = url
}

// InitMQTT connects the notifier client. The server runs fine without a
// broker; callers log the error and continue.
func InitMQTT(clientName string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	opts.SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	mqttClient = client
	return nil
}

// NotifyScheduleChanged tells every display to re-poll for active content.
func NotifyScheduleChanged() {
	publish(refreshTopicAll)
}

// NotifyDisplay nudges a single paired device.
func NotifyDisplay(deviceID string) {
	publish(fmt.Sprintf("displays/%s/refresh", deviceID))
}

func publish(topic string) {
	if mqttClient == nil || !mqttClient.IsConnected() {
		return
	}
	if token := mqttClient.Publish(topic, 1, false, "refresh"); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish refresh")
	}
}
