package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	UploadBasePath = "./uploads"
	PhotosPath     = "./uploads/photos"
	VideosPath     = "./uploads/videos"
)

// MediaKind classifies an upload content type. It returns "" for anything
// the gallery cannot display.
func MediaKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return ""
	}
}

func InitLocalStorage() error {
	for _, dir := range []string{UploadBasePath, PhotosPath, VideosPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

func UploadToLocal(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	folder := PhotosPath
	if MediaKind(file.Header.Get("Content-Type")) == "video" {
		folder = VideosPath
	}

	filename := fmt.Sprintf("%s-%s%s",
		time.Now().Format("20060102-150405"),
		uuid.New().String()[:8],
		strings.ToLower(filepath.Ext(file.Filename)),
	)
	fullPath := filepath.Join(folder, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return "/" + filepath.ToSlash(strings.TrimPrefix(fullPath, "./")), nil
}

// DeleteFromLocal removes a file previously returned by UploadToLocal. Paths
// outside the uploads directory are refused.
func DeleteFromLocal(url string) error {
	rel := strings.TrimPrefix(url, "/")

	absPath, err := filepath.Abs(rel)
	if err != nil {
		return fmt.Errorf("invalid file path: %v", err)
	}
	baseAbs, err := filepath.Abs(UploadBasePath)
	if err != nil {
		return fmt.Errorf("invalid base path: %v", err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	if realBase, err := filepath.EvalSymlinks(baseAbs); err == nil {
		baseAbs = realBase
	}
	if !strings.HasPrefix(absPath, baseAbs+string(filepath.Separator)) {
		return fmt.Errorf("file path outside uploads directory")
	}

	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", url)
		}
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}
