package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"lectrack/internal/modules/records/domain"
	recordsout "lectrack/internal/modules/records/port/out"
	apperrors "lectrack/internal/platform/errors"
	"lectrack/internal/platform/logging"
)

type RecordService struct {
	store      recordsout.RecordStore
	exporter   recordsout.Exporter
	exportPath string
	log        hclog.Logger
}

func NewRecordService(store recordsout.RecordStore, exporter recordsout.Exporter, exportPath string, log hclog.Logger) *RecordService {
	return &RecordService{
		store:      store,
		exporter:   exporter,
		exportPath: exportPath,
		log:        logging.OrNull(log).Named("records"),
	}
}

func (s *RecordService) Append(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := s.store.Insert(ctx, record); err != nil {
		s.log.Error("insert failed", "group", record.GroupCode, "error", err)
		return err
	}
	s.log.Info("record appended", "group", record.GroupCode, "start", record.Start, "lecture_duration", record.LectureDuration)
	return nil
}

func (s *RecordService) ListAll(ctx context.Context) ([]domain.Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("list failed", "error", err)
		return nil, err
	}
	return records, nil
}

// Export writes every stored record to path, or to the configured export
// path when path is empty.
func (s *RecordService) Export(ctx context.Context, path string) (string, int, int64, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = s.exportPath
	}
	if path == "" {
		return "", 0, 0, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	records, err := s.ListAll(ctx)
	if err != nil {
		return "", 0, 0, err
	}
	written, err := s.exporter.Export(ctx, path, records)
	if err != nil {
		s.log.Error("export failed", "path", path, "error", err)
		return "", 0, 0, err
	}
	s.log.Info("records exported", "path", path, "records", len(records), "bytes", written)
	return path, len(records), written, nil
}
