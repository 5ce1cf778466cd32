package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Sisi terpanjang foto profil setelah resize
const profileImageMaxSide = 512

// ConvertProfileImageToWebP: decode jpg/jpeg/png, resize proporsional, lalu
// encode ke WebP (webp pass-through tanpa re-encode).
func ConvertProfileImageToWebP(fileHeader *multipart.FileHeader) (*bytes.Buffer, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		img, derr := imaging.Decode(src, imaging.AutoOrientation(true))
		if derr != nil {
			return nil, fmt.Errorf("file gambar tidak valid: %w", derr)
		}
		if img.Bounds().Dx() > profileImageMaxSide || img.Bounds().Dy() > profileImageMaxSide {
			img = imaging.Fit(img, profileImageMaxSide, profileImageMaxSide, imaging.Lanczos)
		}
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
			return nil, fmt.Errorf("gagal konversi ke WebP: %w", err)
		}
		return buf, nil
	case ".webp":
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(src); err != nil {
			return nil, fmt.Errorf("gagal membaca file WebP: %w", err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("format tidak didukung (jpg, jpeg, png, webp)")
	}
}
