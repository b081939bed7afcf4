package cleanup

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults for the serve command
const (
	DefaultMaxAge        = time.Hour
	DefaultSweepInterval = 15 * time.Minute
)

// Service removes stale staged uploads from the work directory.
// Capture and analyze requests stage the incoming WAV there and remove
// it when the request finishes; a crashed request leaves the file
// behind.
type Service struct {
	workDir       string
	maxAge        time.Duration
	sweepInterval time.Duration
	cancel        context.CancelFunc
}

// NewService creates a new cleanup service
func NewService(workDir string, maxAge, sweepInterval time.Duration) *Service {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Service{
		workDir:       workDir,
		maxAge:        maxAge,
		sweepInterval: sweepInterval,
	}
}

// Start begins the periodic sweep
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Sweep whatever a previous run left behind
	s.sweep()

	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-ctx.Done():
				log.Println("[INFO] Upload sweeper stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Upload sweeper started (interval: %v, max age: %v)", s.sweepInterval, s.maxAge)
}

// Stop stops the sweeper
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// sweep removes staged uploads older than maxAge
func (s *Service) sweep() {
	if _, err := os.Stat(s.workDir); os.IsNotExist(err) {
		return
	}

	err := filepath.Walk(s.workDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files with errors
		}
		if info.IsDir() {
			return nil
		}
		if !isStagedUpload(info.Name()) {
			return nil
		}

		if time.Since(info.ModTime()) > s.maxAge {
			log.Printf("[DEBUG] Removing stale staged upload: %s", path)
			if err := os.Remove(path); err != nil {
				log.Printf("[WARN] Failed to remove staged upload %s: %v", path, err)
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("[ERROR] Upload sweep walk error: %v", err)
	}
}

// isStagedUpload matches the temp names the capture and analyze
// handlers stage under the work dir
func isStagedUpload(name string) bool {
	if !strings.HasSuffix(name, ".wav") {
		return false
	}
	return strings.HasPrefix(name, "upload-") || strings.HasPrefix(name, "shard-")
}
