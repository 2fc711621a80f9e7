package queue

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"
)

// Publisher sends ShowScheduledEvents to RabbitMQ.  The connection is
// dialled lazily and re-dialled after a failure, so a broker outage
// never blocks startup.  Errors are logged and returned; callers are
// free to ignore them.
type Publisher struct {
    url string
    log *zap.Logger

    mu   sync.Mutex
    conn *amqp.Connection
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string, log *zap.Logger) *Publisher {
    if log == nil {
        log = zap.NewNop()
    }
    return &Publisher{url: url, log: log.Named("publisher")}
}

func (p *Publisher) connection() (*amqp.Connection, error) {
    p.mu.Lock()
    defer p.mu.Unlock()
    if p.conn != nil && !p.conn.IsClosed() {
        return p.conn, nil
    }
    conn, err := amqp.Dial(p.url)
    if err != nil {
        return nil, err
    }
    p.conn = conn
    return conn, nil
}

// PublishShowScheduled publishes ev to the show.scheduled queue as a
// persistent JSON message.
func (p *Publisher) PublishShowScheduled(ctx context.Context, ev ShowScheduledEvent) error {
    conn, err := p.connection()
    if err != nil {
        p.log.Warn("dial failed", zap.Error(err))
        return err
    }

    ch, err := conn.Channel()
    if err != nil {
        p.log.Warn("channel open failed", zap.Error(err))
        return err
    }
    defer func() { _ = ch.Close() }()

    // idempotent; durable so messages survive broker restarts
    if _, err := ch.QueueDeclare(
        ShowScheduledQueue, // name
        true,               // durable
        false,              // autoDelete
        false,              // exclusive
        false,              // noWait
        nil,                // args
    ); err != nil {
        p.log.Warn("queue declare failed", zap.Error(err))
        return err
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",                 // default exchange
        ShowScheduledQueue, // routing key = queue name
        false,              // mandatory
        false,              // immediate
        pub,
    ); err != nil {
        p.log.Warn("publish failed", zap.Error(err), zap.Uint64("show_id", ev.ShowID))
        return err
    }
    return nil
}

// Close releases the broker connection, if any.
func (p *Publisher) Close() error {
    p.mu.Lock()
    defer p.mu.Unlock()
    if p.conn == nil || p.conn.IsClosed() {
        return nil
    }
    return p.conn.Close()
}

// Noop discards events.  It is used when EVENTS_ENABLED is false.
type Noop struct{}

// PublishShowScheduled does nothing.
func (Noop) PublishShowScheduled(context.Context, ShowScheduledEvent) error { return nil }
