// Package porter provides the runner logic for backup export, import, and
// wipe.
package porter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"organizer/pkg/backup"
)

// Export writes the backup snapshot to a file, or stdout when Output is
// empty.
type Export struct {
	Output string

	Codec *backup.Codec
}

func (n *Export) Do(ctx context.Context) error {
	if n.Codec == nil {
		return errors.New("can not export, no codec")
	}

	data, err := n.Codec.ExportJSON(time.Now())
	if err != nil {
		return err
	}

	if n.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Output, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported backup to %s\n", n.Output)
	return nil
}

// Import restores collections from a backup file.
type Import struct {
	Input string

	Codec *backup.Codec
}

func (n *Import) Do(ctx context.Context) error {
	if n.Codec == nil {
		return errors.New("can not import, no codec")
	}
	if n.Input == "" {
		return errors.New("no backup file given")
	}

	data, err := os.ReadFile(n.Input)
	if err != nil {
		return err
	}
	if err := n.Codec.Import(data); err != nil {
		return err
	}
	fmt.Printf("imported backup from %s\n", n.Input)
	return nil
}

// Wipe clears every collection and the settings record.
type Wipe struct {
	Codec *backup.Codec
}

func (n *Wipe) Do(ctx context.Context) error {
	if n.Codec == nil {
		return errors.New("can not wipe, no codec")
	}
	if err := n.Codec.Wipe(); err != nil {
		return err
	}
	fmt.Println("wiped journal, events, tasks and settings")
	return nil
}
