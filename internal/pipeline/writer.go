package pipeline

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/restaurant-cli/internal/model"
)

// CSVWriter is the single owner of the output for a run. Region tasks send
// whole batches; one goroutine writes them in arrival order, so rows of a
// batch stay contiguous and ordered. Lines end in CRLF.
type CSVWriter struct {
	batches chan []model.Restaurant
	done    chan struct{}
	rows    int
	err     error
}

// StartCSVWriter writes the header row to out and starts draining batches.
func StartCSVWriter(out io.Writer) *CSVWriter {
	w := &CSVWriter{
		batches: make(chan []model.Restaurant),
		done:    make(chan struct{}),
	}
	go w.loop(out)
	return w
}

func (w *CSVWriter) loop(out io.Writer) {
	defer close(w.done)

	cw := csv.NewWriter(out)
	cw.UseCRLF = true
	if err := cw.Write(model.CSVHeader); err != nil {
		w.err = eris.Wrap(err, "csv: write header")
	}
	cw.Flush()
	if err := cw.Error(); err != nil && w.err == nil {
		w.err = eris.Wrap(err, "csv: write header")
	}

	for batch := range w.batches {
		// After a failure keep receiving so senders never block.
		if w.err != nil {
			continue
		}
		for _, r := range batch {
			if err := cw.Write(r.Row()); err != nil {
				w.err = eris.Wrap(err, "csv: write row")
				break
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil && w.err == nil {
			w.err = eris.Wrap(err, "csv: flush")
		}
		if w.err == nil {
			w.rows += len(batch)
		}
	}
}

// Send queues a batch for writing. It must not be called after Close.
func (w *CSVWriter) Send(batch []model.Restaurant) {
	w.batches <- batch
}

// Close signals that no more batches will be sent, waits for the writer to
// drain, and returns the number of data rows written.
func (w *CSVWriter) Close() (int, error) {
	close(w.batches)
	<-w.done
	return w.rows, w.err
}
