package constants

import "os"

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

// Caps the request body on the inspection endpoint. Big type 2 files
// exist but nothing legitimate approaches this.
const MaxUploadBytes = 16 * 1024 * 1024
