package helper

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// FormatDate menampilkan tanggal (UTC) tanpa komponen jam.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDateTime menampilkan timestamp (UTC) untuk tampilan laporan.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}
