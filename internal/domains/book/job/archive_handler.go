package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"library-service/internal/domains/book/service"
	"library-service/internal/shared"
	"library-service/internal/shared/utils"
	"library-service/pkg/logger"
)

// ArchiveOutdatedBooksHandler processes the periodic archival task. Each
// run is one unit of work against the primary store; a failed run is
// rolled back inside the repository and simply waits for the next tick.
type ArchiveOutdatedBooksHandler struct {
	books        service.Service
	defaultYears int
}

func NewArchiveOutdatedBooksHandler(books service.Service, defaultYears int) *ArchiveOutdatedBooksHandler {
	return &ArchiveOutdatedBooksHandler{
		books:        books,
		defaultYears: defaultYears,
	}
}

type archivePayload struct {
	Years int `json:"years"`
}

// NewArchiveTask builds the task the scheduler enqueues.
func NewArchiveTask(years int) (*asynq.Task, error) {
	payload, err := json.Marshal(archivePayload{Years: years})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(shared.TypeArchiveOutdatedBooks, payload), nil
}

func (h *ArchiveOutdatedBooksHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload archivePayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		logger.Error("invalid archive payload, using default years", err)
	}

	years := payload.Years
	if years <= 0 {
		years = h.defaultYears
	}

	archived, err := h.books.ArchiveOlderThan(ctx, years)
	if err != nil {
		return fmt.Errorf("archive outdated books: %w", err)
	}

	if archived > 0 {
		logger.Info("archived outdated books", map[string]interface{}{
			"years": years,
			"count": archived,
		})
	} else {
		logger.Debug("no books required archiving at this run", map[string]interface{}{
			"years": years,
		})
	}

	return nil
}
