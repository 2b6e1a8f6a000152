package fileadapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oarkflow/log"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
	"github.com/oarkflow/edi/pkg/utils/fileutil"
)

// Adapter reads or writes flat record files. As a loader it appends records
// to a CSV or JSON file; as a source it streams the file back out.
type Adapter struct {
	mode       string
	Filename   string
	extension  string
	appendMode bool
	appender   contracts.Appender[utils.Record]
}

func New(fileName, mode string, appendMode bool) *Adapter {
	extension := strings.TrimPrefix(filepath.Ext(fileName), ".")
	return &Adapter{
		Filename:   fileName,
		extension:  extension,
		appendMode: appendMode,
		mode:       mode,
	}
}

func (fl *Adapter) Setup(_ context.Context) error {
	if fl.mode != "loader" {
		_, err := os.Stat(fl.Filename)
		return err
	}
	appender, err := fileutil.NewAppender[utils.Record](fl.Filename, fl.extension, fl.appendMode)
	if err != nil {
		return err
	}
	fl.appender = appender
	return nil
}

func (fl *Adapter) StoreBatch(_ context.Context, records []utils.Record) error {
	switch fl.extension {
	case "csv", "json":
		return fl.appender.AppendBatch(records)
	default:
		return fmt.Errorf("unsupported file extension: %s", fl.extension)
	}
}

func (fl *Adapter) StoreSingle(ctx context.Context, rec utils.Record) error {
	return fl.StoreBatch(ctx, []utils.Record{rec})
}

func (fl *Adapter) Close() error {
	if fl.appender != nil {
		return fl.appender.Close()
	}
	return nil
}

func (fl *Adapter) LoadData(_ ...contracts.Option) ([]utils.Record, error) {
	ch, err := fl.Extract(context.Background())
	if err != nil {
		return nil, err
	}
	var records []utils.Record
	for rec := range ch {
		records = append(records, rec)
	}
	return records, nil
}

func (fl *Adapter) Extract(_ context.Context, _ ...contracts.Option) (<-chan utils.Record, error) {
	out := make(chan utils.Record)
	go func() {
		defer close(out)
		_, err := fileutil.ProcessFile(fl.Filename, func(record utils.Record) {
			out <- record
		})
		if err != nil {
			log.Printf("file extraction error: %v", err)
		}
	}()
	return out, nil
}
