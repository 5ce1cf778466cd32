package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bucket object storage (Supabase Storage kompatibel)
const (
	BucketImage = "image"
	BucketFile  = "file"
)

// ✅ Buat nama unik: folder/tanggal-uuid-slug.ext
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	ext := filepath.Ext(originalFilename)
	base := Slugify(strings.TrimSuffix(originalFilename, ext), 60)
	if ext != "" {
		ext = "." + Slugify(ext[1:], 10)
	}
	return fmt.Sprintf("%s/%s-%s-%s%s", folder, timestamp, uuidStr, base, ext)
}

// UploadBytesToStorage: PUT object + return public URL
func UploadBytesToStorage(bucket, filename, contentType string, data *bytes.Buffer) (string, error) {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_SERVICE_ROLE_KEY")
	if storageURL == "" || storageKey == "" {
		return "", fmt.Errorf("STORAGE_PROJECT_URL atau STORAGE_SERVICE_ROLE_KEY belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, filename)
	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return "", fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 45 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		storageURL, bucket, url.PathEscape(filename))
	return publicURL, nil
}

// UploadFileToStorage: upload multipart apa adanya (file tugas & jawaban)
func UploadFileToStorage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("gagal membaca isi file: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return UploadBytesToStorage(BucketFile, filename, contentType, buf)
}

// ✅ Hapus file dari storage
func DeleteFromStorage(bucket, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("STORAGE_PROJECT_URL"), bucket, path)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("STORAGE_SERVICE_ROLE_KEY"))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ExtractStoragePath: ambil bucket+path dari public URL
func ExtractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("url bukan public object storage")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("gagal ekstrak bucket dan path")
	}
	return pathParts[0], pathParts[1], nil
}
