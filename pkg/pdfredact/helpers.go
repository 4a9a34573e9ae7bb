package pdfredact

import (
	"bytes"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var pdfStringUnescaper = strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`)

// decodePDFName turns a raw literal string from the PDF into text.
// Names written as UTF-16BE (leading FE FF) are transcoded, anything else is returned as is.
func decodePDFName(raw string) string {
	name := pdfStringUnescaper.Replace(raw)
	if !strings.HasPrefix(name, "\xfe\xff") {
		return name
	}
	if decoded, err := decodeUTF16BE([]byte(name)); err == nil {
		return decoded
	}
	return name
}

// decodeUTF16BE requires a byte order mark
func decodeUTF16BE(b []byte) (string, error) {
	out, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// getLogger returns the configured logger, defaulting to slog.Default()
func getLogger(config RedactConfig) *slog.Logger {
	if config.Logger == nil {
		return slog.Default()
	}
	return config.Logger
}

// dumpPDFStructure logs the head of the file and the surroundings of the first /OCG entry
func dumpPDFStructure(pdfData []byte, byteCount int, logger *slog.Logger) {
	logger.Info("pdf.dump.head", "bytes", min(byteCount, len(pdfData)), "content", string(window(pdfData, 0, byteCount)))

	if at := bytes.Index(pdfData, []byte("/OCG")); at >= 0 {
		logger.Info("pdf.dump.ocg", "offset", at, "content", string(window(pdfData, at-20, at+100)))
	}
}

// window returns data[from:to] clamped to the slice bounds
func window(data []byte, from, to int) []byte {
	from = max(from, 0)
	to = min(to, len(data))
	if from >= to {
		return nil
	}
	return data[from:to]
}
