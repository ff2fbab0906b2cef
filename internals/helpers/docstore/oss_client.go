package docstore

import (
	"fmt"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"practicas_backend/internals/configs"
)

var (
	bucketOnce sync.Once
	bucket     *oss.Bucket
	bucketErr  error
)

// getBucket inicializa el cliente OSS una sola vez.
func getBucket() (*oss.Bucket, error) {
	bucketOnce.Do(func() {
		if configs.OSSBucket == "" {
			bucketErr = fmt.Errorf("document store no configurado (OSS_BUCKET vacío)")
			return
		}
		client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKeyID, configs.OSSAccessSecret)
		if err != nil {
			bucketErr = fmt.Errorf("oss client: %w", err)
			return
		}
		bucket, bucketErr = client.Bucket(configs.OSSBucket)
	})
	return bucket, bucketErr
}

func publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, configs.OSSEndpoint, key)
}
