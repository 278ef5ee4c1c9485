package messaging

import (
	"fmt"
	"giya-service/internal/app/config"
	"giya-service/internal/pkg/constvars"
	"log"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker that carries notification events. The
// connection is named after the service so it can be found in the broker's
// management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	uri, err := connectionURI(driverConfig)
	if err != nil {
		log.Fatalf("Invalid rabbitMQ configuration: %s", err.Error())
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.AppServiceName)

	conn, err := amqp091.DialConfig(uri, amqp091.Config{
		Heartbeat:  constvars.RabbitMQHeartbeat,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// connectionURI escapes the credentials, which may carry URL reserved
// characters.
func connectionURI(driverConfig *config.DriverConfig) (string, error) {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		return "", fmt.Errorf("port %q: %w", driverConfig.RabbitMQ.Port, err)
	}

	vhost := driverConfig.RabbitMQ.Vhost
	if vhost == "" {
		vhost = constvars.RabbitMQDefaultVhost
	}

	uri := amqp091.URI{
		Scheme:   constvars.RabbitMQURIScheme,
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    vhost,
	}
	return uri.String(), nil
}
