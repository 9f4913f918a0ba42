package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"wrapped/internal/adapters/dataset"
	"wrapped/internal/adapters/email"
	"wrapped/internal/adapters/http/middleware"
	"wrapped/internal/adapters/imaging"
	responseStore "wrapped/internal/adapters/storage/response"
	viewStore "wrapped/internal/adapters/storage/view"

	"golang.org/x/crypto/bcrypt"
)

// Stores holds all storage dependencies.
type Stores struct {
	ViewStore     viewStore.Store
	ResponseStore responseStore.Store
}

// loadCSRFKey reads the CSRF secret from WRAPPED_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("WRAPPED_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("WRAPPED_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("WRAPPED_ENV") == "production" {
		log.Fatal("WRAPPED_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set WRAPPED_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global catalog instance (set by NewMux)
var catalog *dataset.Catalog

// Global renderer instance (set by NewMux)
var renderer *imaging.Renderer

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailNotifyTo string

// Bcrypt hash of the admin password (set by SetAdminCredentials)
var adminPasswordHash []byte

// SetEmailSender sets the global email sender and the notification recipient.
// A nil sender or empty recipient disables feedback notifications.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	emailNotifyTo = notifyTo
}

// SetAdminCredentials sets the admin password hash for the admin pages.
// An empty hash disables the admin login entirely.
func SetAdminCredentials(passwordHash []byte) {
	adminPasswordHash = passwordHash
}

// CheckAdminPassword compares a login attempt against the configured hash.
func CheckAdminPassword(password string) bool {
	if len(adminPasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(password)) == nil
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, cat *dataset.Catalog, r *imaging.Renderer) http.Handler {
	stores = s
	catalog = cat
	renderer = r
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("WRAPPED_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: AccessLog -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.AccessLog,
	)
}
