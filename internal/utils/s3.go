package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var (
	S3Session       *session.Session
	S3Bucket        string
	S3Region        string
	CloudFrontURL   string
	UseLocalStorage bool = true
)

func InitS3(bucket, region, cloudfrontURL string) error {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return err
	}

	S3Bucket = bucket
	S3Region = region
	CloudFrontURL = strings.TrimSuffix(cloudfrontURL, "/")
	S3Session = sess
	UseLocalStorage = false
	return nil
}

// UploadFile stores an admin upload and returns the URL the gallery entry
// should reference.
func UploadFile(file *multipart.FileHeader) (string, error) {
	if UseLocalStorage {
		return UploadToLocal(file)
	}
	return UploadToS3(file)
}

func UploadToS3(file *multipart.FileHeader) (string, error) {
	if S3Session == nil {
		return "", fmt.Errorf("S3 not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("gallery/%s/%s%s",
		time.Now().Format("2006/01"),
		uuid.New().String(),
		strings.ToLower(filepath.Ext(file.Filename)),
	)

	_, err = s3.New(S3Session).PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(S3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", err
	}

	return publicS3URL(key), nil
}

func DeleteFile(url string) error {
	if UseLocalStorage {
		return DeleteFromLocal(url)
	}
	return DeleteFromS3(url)
}

func DeleteFromS3(url string) error {
	if S3Session == nil {
		return fmt.Errorf("S3 not initialized")
	}

	key := S3KeyFromURL(url)
	if key == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", url, S3Bucket)
	}

	_, err := s3.New(S3Session).DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(S3Bucket),
		Key:    aws.String(key),
	})
	return err
}

func publicS3URL(key string) string {
	if CloudFrontURL != "" {
		return CloudFrontURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", S3Bucket, S3Region, key)
}

// S3KeyFromURL reverses publicS3URL, returning "" for foreign URLs.
func S3KeyFromURL(url string) string {
	prefixes := []string{fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", S3Bucket, S3Region)}
	if CloudFrontURL != "" {
		prefixes = append(prefixes, CloudFrontURL+"/")
	}
	for _, p := range prefixes {
		if strings.HasPrefix(url, p) {
			return strings.TrimPrefix(url, p)
		}
	}
	return ""
}

// OwnsFile reports whether url was produced by UploadFile in the current
// storage mode and can be passed to DeleteFile.
func OwnsFile(url string) bool {
	if UseLocalStorage {
		return strings.HasPrefix(url, "/uploads/")
	}
	return S3KeyFromURL(url) != ""
}

func GetStorageMode() string {
	if UseLocalStorage {
		return "local"
	}
	return "s3"
}

func SetStorageMode(useLocal bool) {
	UseLocalStorage = useLocal
}
