package agent

import (
	"context"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/utils"
	"github.com/MKhiriev/go-pass-agent/models"
)

// journaled reports whether req is written to the journal. Status and
// version are read-only queries about the agent itself.
func journaled(req ipc.Request) bool {
	switch req.(type) {
	case ipc.StatusRequest, ipc.VersionRequest:
		return false
	}
	return true
}

// record appends one event. A journal failure is logged and otherwise
// ignored.
func (a *Agent) record(ctx context.Context, operation, entryID string, err error) {
	event := models.JournalEvent{
		ID:        utils.NewID(),
		Operation: operation,
		EntryID:   entryID,
		Result:    models.JournalSuccess,
		CreatedAt: a.now().UTC(),
	}
	if err != nil {
		event.Result = models.JournalError
		event.ErrorCode = string(ipc.CodeOf(err))
	}

	if jErr := a.journal.Append(ctx, event); jErr != nil {
		logger.FromContext(ctx).Warn().Err(jErr).Str("operation", operation).Msg("failed to write journal event")
	}
}
