package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hrdash/internal"
	"hrdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Records is a header row followed by data rows, all as raw strings
type Records [][]string

// DataReader handles reading delimited and Excel files
type DataReader struct {
	filePath string
	fileType string // "csv", "tsv" or "xlsx"
	log      *internal.Logger
}

// NewDataReader creates a reader whose format is chosen by file extension
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	case ".tsv":
		fileType = "tsv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		log:      internal.DefaultLogger.With("DataReader"),
	}
}

// Read returns the file's records. A missing file yields an error satisfying
// errors.Is(err, fs.ErrNotExist).
func (r *DataReader) Read() (Records, error) {
	r.log.Debug("reading %s file: %s", r.fileType, r.filePath)
	start := time.Now()

	var (
		rows Records
		err  error
	)
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcel()
	default:
		rows, err = r.readDelimited()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 1 || len(rows[0]) == 0 {
		return nil, errors.DataSourceError(fmt.Sprintf("%s has no header row", r.filePath), nil)
	}
	r.log.Info("read %s in %.2fms (%d columns, %d rows)",
		r.filePath, float64(time.Since(start).Nanoseconds())/1e6, len(rows[0]), len(rows)-1)
	return trimRecords(rows), nil
}

func (r *DataReader) readDelimited() (Records, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseDelimited(file, r.fileType == "tsv")
}

func parseDelimited(in io.Reader, tabs bool) (Records, error) {
	buffered := bufio.NewReader(in)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = buffered.Discard(len(utf8BOM))
	}
	reader := csv.NewReader(buffered)
	if tabs {
		reader.Comma = '\t'
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DataSourceError("failed to parse delimited file", err)
	}
	return rows, nil
}

// readExcel reads the first sheet of a workbook
func (r *DataReader) readExcel() (Records, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DataSourceError("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.DataSourceError("Excel file has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.DataSourceError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err)
	}
	return rows, nil
}

// utf8BOM is written at the start of "CSV UTF-8" exports
const utf8BOM = "\ufeff"

// trimRecords trims cells, drops a leading byte-order mark and pads short rows
// to the header width
func trimRecords(rows Records) Records {
	rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	width := len(rows[0])
	out := make(Records, 0, len(rows))
	for _, row := range rows {
		clean := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			clean[j] = strings.TrimSpace(row[j])
		}
		out = append(out, clean)
	}
	return out
}
