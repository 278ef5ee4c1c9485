package messaging

import (
	"giya-service/internal/app/config"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionURI(t *testing.T) {
	t.Run("credentials with reserved characters survive", func(t *testing.T) {
		driverConfig := &config.DriverConfig{}
		driverConfig.RabbitMQ.Host = "rabbit.giya.internal"
		driverConfig.RabbitMQ.Port = "5673"
		driverConfig.RabbitMQ.Username = "bff"
		driverConfig.RabbitMQ.Password = "p@ss/w:rd#1"
		driverConfig.RabbitMQ.Vhost = "giya"

		uri, err := connectionURI(driverConfig)
		require.NoError(t, err)

		parsed, err := amqp091.ParseURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "rabbit.giya.internal", parsed.Host)
		assert.Equal(t, 5673, parsed.Port)
		assert.Equal(t, "bff", parsed.Username)
		assert.Equal(t, "p@ss/w:rd#1", parsed.Password)
		assert.Equal(t, "giya", parsed.Vhost)
	})

	t.Run("empty vhost falls back to the default", func(t *testing.T) {
		driverConfig := &config.DriverConfig{}
		driverConfig.RabbitMQ.Host = "localhost"
		driverConfig.RabbitMQ.Port = "5672"
		driverConfig.RabbitMQ.Username = "guest"
		driverConfig.RabbitMQ.Password = "guest"

		uri, err := connectionURI(driverConfig)
		require.NoError(t, err)
		parsed, err := amqp091.ParseURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "/", parsed.Vhost)
	})

	t.Run("non numeric port", func(t *testing.T) {
		driverConfig := &config.DriverConfig{}
		driverConfig.RabbitMQ.Port = "amqp"

		_, err := connectionURI(driverConfig)
		assert.Error(t, err)
	})
}
