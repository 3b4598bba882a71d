package notify

import (
	"context"
	"errors"
)

// MultiPublisher публикует событие во все настроенные каналы
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, room string, event Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, room, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
