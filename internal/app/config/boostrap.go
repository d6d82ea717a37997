package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// EventPublisherStop releases the publisher channel, if one was opened.
	EventPublisherStop func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.EventPublisherStop != nil {
		err := b.EventPublisherStop()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing appointment event publisher")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	b.Logger.Info("Successfully closing Redis")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	// Sync on stdout/stderr returns EINVAL on some platforms.
	_ = b.Logger.Sync()
	return nil
}
