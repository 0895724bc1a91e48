package attendance

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	attendanceerrors "github.com/connectwithhassan/all-in-one/internal/attendance/errors"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const (
	FileTypeXLSX = "xlsx"
	FileTypeXLS  = "xls"
	FileTypeCSV  = "csv"

	maxXLSRows = 100000
)

// DetectFileType maps an upload filename to one of the supported export
// formats.
func DetectFileType(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FileTypeXLSX, nil
	case ".xls":
		return FileTypeXLS, nil
	case ".csv":
		return FileTypeCSV, nil
	default:
		return "", attendanceerrors.ErrUnsupportedFormat
	}
}

// DecodeRows reads the first worksheet of an export into raw string rows.
func DecodeRows(filename string, r io.Reader) ([][]string, error) {
	fileType, err := DetectFileType(filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, attendanceerrors.ErrEmptyExport
	}

	var rows [][]string
	switch fileType {
	case FileTypeXLS:
		rows, err = decodeXLS(data)
	case FileTypeCSV:
		rows, err = decodeCSV(data)
	default:
		rows, err = decodeXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, attendanceerrors.ErrEmptyExport
	}
	return rows, nil
}

func decodeXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, attendanceerrors.ErrUnreadableExport.Message, attendanceerrors.ErrUnreadableExport.HTTPStatus)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, attendanceerrors.ErrNoWorksheet
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return keepBlankRows(rows), nil
}

func decodeXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, attendanceerrors.ErrUnreadableExport.Message, attendanceerrors.ErrUnreadableExport.HTTPStatus)
	}
	if workbook.NumSheets() == 0 {
		return nil, attendanceerrors.ErrNoWorksheet
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, attendanceerrors.ErrNoWorksheet
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow) && i < maxXLSRows; i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, []string{""})
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return keepBlankRows(rows), nil
}

// keepBlankRows gives blank sheet rows one empty cell so they survive as
// rows instead of reading as empty lines.
func keepBlankRows(rows [][]string) [][]string {
	for i, row := range rows {
		if len(row) == 0 {
			rows[i] = []string{""}
		}
	}
	return rows
}

func decodeCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, attendanceerrors.ErrUnreadableExport.Message, attendanceerrors.ErrUnreadableExport.HTTPStatus)
	}
	return rows, nil
}
