package main

import (
	"github.com/hibiken/asynq"

	bookjob "library-service/internal/domains/book/job"
	"library-service/internal/shared"
	"library-service/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	archiveOutdatedBooks *bookjob.ArchiveOutdatedBooksHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		archiveOutdatedBooks: bookjob.NewArchiveOutdatedBooksHandler(
			c.BookService,
			c.Config.Job.ArchiveYears,
		),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeArchiveOutdatedBooks, h.archiveOutdatedBooks.ProcessTask)
}
