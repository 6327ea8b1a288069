// Package queue_publisher publishes session events to RabbitMQ.  Publishing
// never blocks or fails a request: errors are logged and dropped.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/car-rental-web/internal/queue"
	"github.com/iliyamo/car-rental-web/internal/session"
)

// Publisher keeps one broker connection and reopens it after failures.
type Publisher struct {
	url     string
	timeout time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	wg   sync.WaitGroup
}

// NewPublisher returns a publisher for url.  It does not dial until the
// first event.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url, timeout: 5 * time.Second}
}

// EventFromTransition maps a session transition onto the queue payload.
func EventFromTransition(tr session.Transition) q.SessionEvent {
	ev := q.SessionEvent{
		Type:       tr.Kind,
		RemoteIP:   tr.RemoteIP,
		Path:       tr.Path,
		OccurredAt: tr.OccurredAt,
	}
	if tr.Identity != nil {
		ev.Username = tr.Identity.Username
		ev.Role = string(tr.Identity.Role)
	}
	return ev
}

// Observe publishes tr in the background.  It is meant to be registered as
// the session manager's observer.
func (p *Publisher) Observe(tr session.Transition) {
	ev := EventFromTransition(tr)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		_ = p.PublishSessionEvent(ctx, ev)
	}()
}

// PublishSessionEvent publishes event to the session.events queue as a
// persistent JSON message.  Errors are logged and returned so the caller
// can choose to ignore them.
func (p *Publisher) PublishSessionEvent(ctx context.Context, event q.SessionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		log.Printf("rabbitmq: %v", err)
		return err
	}
	err = ch.PublishWithContext(ctx, "", q.SessionEventsQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		p.reset()
		return err
	}
	return nil
}

// channel returns an open channel, dialling and declaring the queue when
// needed.  Callers hold p.mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(q.SessionEventsQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// Close waits for in-flight publishes and closes the connection.
func (p *Publisher) Close() {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}
