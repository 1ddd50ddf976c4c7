package queries

import (
	"bytes"
	"context"
	"time"

	"bakery/internal/core/ports"
)

const exportFilePrefix = "pedidos-"

// ExportOrdersQueryHandler renders all orders, newest first, with the
// configured exporter.
type ExportOrdersQueryHandler struct {
	repo     ports.OrderRepository
	exporter ports.OrderExporter
	now      func() time.Time
}

func NewExportOrdersQueryHandler(repo ports.OrderRepository, exporter ports.OrderExporter) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{repo: repo, exporter: exporter, now: time.Now}
}

func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) (ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	var buf bytes.Buffer
	if err = h.exporter.Export(&buf, orders); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	return ExportOrdersQueryResponse{
		FileName:    exportFilePrefix + h.now().Format(time.DateOnly) + h.exporter.FileExtension(),
		ContentType: h.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
