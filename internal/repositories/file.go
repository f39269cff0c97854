package repositories

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
)

type FileRepository interface {
	StreamReadCSVFile(ctx context.Context, fileRead io.ReadCloser) <-chan StreamReadCSVFileResult
}

type fileRepo struct{}

func NewFileRepository() FileRepository {
	return &fileRepo{}
}

type StreamReadCSVFileResult struct {
	// Line is the 1-based record number in the file.
	Line int
	Data []string
	Err  error
}

// StreamReadCSVFile streams each row of the CSV and closes fileRead when done.
// A malformed row is reported on its own result and reading continues.
func (*fileRepo) StreamReadCSVFile(ctx context.Context, fileRead io.ReadCloser) <-chan StreamReadCSVFileResult {
	resultCh := make(chan StreamReadCSVFileResult)

	go func() {
		defer close(resultCh)
		defer fileRead.Close()

		csvReader := csv.NewReader(bufio.NewReader(fileRead))
		csvReader.FieldsPerRecord = -1
		csvReader.TrimLeadingSpace = true

		line := 0
		for {
			row, err := csvReader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			line++

			res := StreamReadCSVFileResult{Line: line, Data: row, Err: err}
			var parseErr *csv.ParseError
			if err != nil && !errors.As(err, &parseErr) {
				res.Data = nil
			}

			select {
			case <-ctx.Done():
				return
			case resultCh <- res:
			}

			if err != nil && !errors.As(err, &parseErr) {
				return
			}
		}
	}()

	return resultCh
}
