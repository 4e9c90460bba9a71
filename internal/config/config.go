package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress   string
	SessionSecret   string
	SessionTTL      time.Duration
	StorageBackend  string // "file" or "mongo"
	DataDir         string
	MongoURI        string
	MongoDB         string
	ImageBackend    string // "local" or "s3"
	UploadDir       string
	MaxUploadSizeMB int64
	S3              S3Config
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicURL       string
}

func Load() *Config {
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("SESSION_SECRET", "dev-session-secret")
	viper.SetDefault("SESSION_TTL_HOURS", 720)
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DB", "outfitmatcher")
	viper.SetDefault("IMAGE_BACKEND", "local")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 10)
	viper.SetDefault("S3_ENDPOINT", "http://localhost:9000")
	viper.SetDefault("S3_ACCESS_KEY_ID", "minioadmin")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "minioadmin")
	viper.SetDefault("S3_BUCKET_NAME", "closet-images")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_PUBLIC_URL", "http://localhost:9000")

	viper.AutomaticEnv()

	return &Config{
		ServerAddress:   viper.GetString("SERVER_ADDRESS"),
		SessionSecret:   viper.GetString("SESSION_SECRET"),
		SessionTTL:      time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		StorageBackend:  viper.GetString("STORAGE_BACKEND"),
		DataDir:         viper.GetString("DATA_DIR"),
		MongoURI:        viper.GetString("MONGO_URI"),
		MongoDB:         viper.GetString("MONGO_DB"),
		ImageBackend:    viper.GetString("IMAGE_BACKEND"),
		UploadDir:       viper.GetString("UPLOAD_DIR"),
		MaxUploadSizeMB: viper.GetInt64("MAX_UPLOAD_SIZE_MB"),
		S3: S3Config{
			Endpoint:        viper.GetString("S3_ENDPOINT"),
			AccessKeyID:     viper.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("S3_SECRET_ACCESS_KEY"),
			BucketName:      viper.GetString("S3_BUCKET_NAME"),
			Region:          viper.GetString("S3_REGION"),
			PublicURL:       viper.GetString("S3_PUBLIC_URL"),
		},
	}
}
