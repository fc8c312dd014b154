package pkg

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Messages are keyed by their English text. Indonesian is the default.
var supportedLanguages = []language.Tag{language.Indonesian, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

var indonesian = map[string]string{
	"Invalid request":                                      "Permintaan tidak valid",
	"Invalid job payload":                                  "Data pekerjaan tidak valid",
	"Job not found":                                        "Pekerjaan tidak ditemukan",
	"Required field is missing or invalid":                 "Kolom wajib kosong atau tidak valid",
	"Unknown save type":                                    "Jenis penyimpanan tidak dikenal",
	"Close state can only change through close or reopen":  "Status tutup hanya dapat diubah melalui tutup atau buka kembali",
	"Please confirm closing this job":                      "Mohon konfirmasi penutupan pekerjaan ini",
	"This job has no posted cost; confirm to close anyway": "Pekerjaan ini belum memiliki biaya; konfirmasi untuk tetap menutup",
	"Document number is already assigned to this job":      "Nomor dokumen sudah terpasang pada pekerjaan ini",
	"No free document number, please try again":           "Tidak ada nomor dokumen yang tersedia, silakan coba lagi",
	"Only owner or manager can reopen a job":               "Hanya pemilik atau manajer yang dapat membuka kembali pekerjaan",
	"Save failed, please try again":                        "Gagal menyimpan, silakan coba lagi",
	"Invalid period":                                       "Periode tidak valid",
	"An internal error occurred":                           "Terjadi kesalahan internal",
}

func init() {
	for key, msg := range indonesian {
		_ = message.SetString(language.Indonesian, key, msg)
		_ = message.SetString(language.English, key, key)
	}
}

// PrinterFor picks the best supported language for an Accept-Language header.
func PrinterFor(acceptLanguage string) *message.Printer {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := languageMatcher.Match(tags...)
	return message.NewPrinter(supportedLanguages[idx])
}
