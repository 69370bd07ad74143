package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
)

// SaveCoverImage menyimpan gambar sampul ke UploadDir dan mengembalikan
// nama file yang tersimpan. Gambar yang bisa didecode akan di-encode ulang
// ke webp; selain itu disimpan apa adanya.
func SaveCoverImage(fileHeader *multipart.FileHeader) (string, error) {
	if !constants.IsAllowedImageExt(fileHeader.Filename) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Unsupported image type")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)

	img, decErr := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
	if decErr == nil {
		webpName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
		out, err := os.Create(filepath.Join(configs.UploadDir, webpName))
		if err != nil {
			return "", fmt.Errorf("gagal membuat file: %w", err)
		}
		defer out.Close()
		if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
			return "", fmt.Errorf("gagal encode webp: %w", err)
		}
		return webpName, nil
	}

	// fallback: simpan bytes asli (mis. gif animasi)
	if err := os.WriteFile(filepath.Join(configs.UploadDir, filename), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return filename, nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s-%s-%s", timestamp, uuidStr, sanitizeFilename(originalFilename))
}
