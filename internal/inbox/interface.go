package inbox

import "context"

// Processor summarizes one audio file dropped into the inbox.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
