// Package watch provides the runner logic for the foreground reminder loop.
package watch

import (
	"context"
	"errors"
	"fmt"

	"organizer/pkg/reminder"
)

// Watch starts the reminder scheduler and blocks until the context is
// cancelled. Reminders print to the terminal as they fire.
type Watch struct {
	Scheduler *reminder.Scheduler
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not watch, no scheduler")
	}

	if err := n.Scheduler.Start(); err != nil {
		return err
	}
	defer n.Scheduler.Stop()

	fmt.Println("watching for reminders, ctrl-c to stop")
	<-ctx.Done()
	return nil
}
