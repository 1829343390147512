package export

import (
	"errors"
	"strings"
)

// ============================================================
// Multi-Format Exporter
// ============================================================

// ErrExportFailed — ошибка растеризации или сборки файла.
// Сцена при этом не затрагивается, экспорт можно повторить.
var ErrExportFailed = errors.New("export failed")

// Format — тег формата экспортированного артефакта.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
	FormatDXF  Format = "dxf"
)

// ContentType возвращает MIME-тип формата.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	case FormatDXF:
		return "application/dxf"
	}
	return "application/octet-stream"
}

// ParseFormat проверяет тег формата из запроса.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, true
	case FormatJPEG:
		return FormatJPEG, true
	case FormatPDF:
		return FormatPDF, true
	case FormatDXF:
		return FormatDXF, true
	}
	return "", false
}

// Filename строит имя файла экспорта из названия плана:
// пробелы заменяются подчёркиваниями.
func Filename(title string, format Format) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "untitled"
	}
	return strings.ReplaceAll(title, " ", "_") + "_floor_plan." + string(format)
}
