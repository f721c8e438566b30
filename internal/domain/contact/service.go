package contact

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Notifier delivers one rendered message to one address.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type Options struct {
	Recipient string
	Brand     string
	Location  *time.Location
}

type Service struct {
	notifier  Notifier
	clock     Clock
	recipient string
	brand     string
	location  *time.Location
}

func NewService(notifier Notifier, clock Clock, opts Options) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		notifier:  notifier,
		clock:     clock,
		recipient: opts.Recipient,
		brand:     opts.Brand,
		location:  opts.Location,
	}
}

// Submit validates in and sends the acknowledgement and the internal alert.
// Both sends are always attempted; any failure is reported as ErrDispatch.
func (s *Service) Submit(ctx context.Context, in Submission) error {
	sub := in.Normalize()
	if err := Validate(sub); err != nil {
		return err
	}

	now := s.clock.Now().In(s.location)
	ack, err := RenderAcknowledgement(sub, s.brand, now)
	if err != nil {
		return err
	}
	alert, err := RenderAlert(sub, now)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return s.send(ctx, sub.Email, ack)
	})
	g.Go(func() error {
		return s.send(ctx, s.recipient, alert)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrDispatch, err)
	}
	return nil
}

func (s *Service) send(ctx context.Context, to string, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("send to %s panicked: %v", to, r)
		}
	}()
	if err := s.notifier.Send(ctx, to, msg.Subject, msg.Body); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}
	return nil
}
