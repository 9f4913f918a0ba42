package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"golang.org/x/crypto/bcrypt"

	"wrapped/internal/adapters/dataset"
	emailPkg "wrapped/internal/adapters/email"
	web "wrapped/internal/adapters/http"
	"wrapped/internal/adapters/imaging"
	"wrapped/internal/adapters/storage"
	responseStore "wrapped/internal/adapters/storage/response"
	viewStore "wrapped/internal/adapters/storage/view"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	env := envOrDefault("WRAPPED_ENV", "development")

	// Dataset: the precomputed records are read-only input, loaded once.
	dataDir := envOrDefault("WRAPPED_DATA_DIR", "data")
	catalog, err := dataset.Load(dataDir)
	if err != nil {
		if env == "production" {
			log.Fatalf("failed to load dataset from %s: %v", dataDir, err)
		}
		log.Printf("WARNING: dataset not found in %s (%v) — using built-in sample data", dataDir, err)
		catalog = dataset.SampleCatalog()
	}
	log.Printf("Dataset loaded: %d members, %d coaches", catalog.MemberCount(), catalog.CoachCount())

	// Storage backend for views and responses, selected by WRAPPED_STORE.
	stores, cleanup := openStores(envOrDefault("WRAPPED_STORE", "sqlite"))
	defer cleanup()

	// Admin pages: enabled only when a password is configured.
	if adminPassword := os.Getenv("WRAPPED_ADMIN_PASSWORD"); adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		web.SetAdminCredentials(hash)
		log.Println("Admin pages enabled")
	} else {
		log.Println("WRAPPED_ADMIN_PASSWORD not set — admin pages disabled")
	}

	// Configure email sender for feedback notifications
	resendKey := os.Getenv("WRAPPED_RESEND_KEY")
	notifyTo := os.Getenv("WRAPPED_NOTIFY_TO")
	emailFrom := envOrDefault("WRAPPED_RESEND_FROM", "Wrapped <noreply@example.com>")
	if resendKey != "" && notifyTo != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		log.Println("Email sender configured (noop — set WRAPPED_RESEND_KEY and WRAPPED_NOTIFY_TO for real delivery)")
	}

	// Image exporter; without a font file the cards fall back to a bitmap font.
	fontPath := os.Getenv("WRAPPED_FONT_PATH")
	renderer, err := imaging.NewRenderer(fontPath)
	if err != nil {
		log.Fatalf("failed to set up image renderer: %v", err)
	}
	if fontPath == "" {
		log.Println("WRAPPED_FONT_PATH not set — exports use the built-in bitmap font")
	}

	staticDir := envOrDefault("WRAPPED_STATIC_DIR", "static")
	mux := web.NewMux(staticDir, stores, catalog, renderer)

	addr := envOrDefault("WRAPPED_ADDR", ":8080")
	log.Printf("Wrapped %s starting on %s (env=%s)", version, addr, env)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openStores builds the view and response stores for the chosen backend and
// returns a cleanup func for process shutdown.
func openStores(backend string) (*web.Stores, func()) {
	switch backend {
	case "sqlite":
		dbPath := envOrDefault("WRAPPED_DB_PATH", "wrapped.db")
		db, err := sql.Open("sqlite", storage.DSN(dbPath))
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		if err := db.Ping(); err != nil {
			log.Fatalf("database unreachable: %v", err)
		}
		if err := storage.InitDB(db); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		slog.Info("store_opened", "backend", "sqlite", "path", dbPath)
		return &web.Stores{
			ViewStore:     viewStore.NewSQLiteStore(db),
			ResponseStore: responseStore.NewSQLiteStore(db),
		}, func() { db.Close() }

	case "memory":
		slog.Info("store_opened", "backend", "memory")
		return &web.Stores{
			ViewStore:     viewStore.NewMemoryStore(),
			ResponseStore: responseStore.NewMemoryStore(),
		}, func() {}

	case "file":
		dir := envOrDefault("WRAPPED_STATE_DIR", "state")
		slog.Info("store_opened", "backend", "file", "dir", dir)
		return &web.Stores{
			ViewStore:     viewStore.NewFileStore(filepath.Join(dir, "views.json")),
			ResponseStore: responseStore.NewFileStore(filepath.Join(dir, "responses.json")),
		}, func() {}

	case "nats":
		url := envOrDefault("WRAPPED_NATS_URL", "nats://127.0.0.1:4222")
		kv, err := storage.OpenNATSKV(url, "wrapped")
		if err != nil {
			log.Fatalf("failed to open NATS KV store: %v", err)
		}
		slog.Info("store_opened", "backend", "nats", "url", url)
		return &web.Stores{
			ViewStore:     viewStore.NewNATSKVStore(kv),
			ResponseStore: responseStore.NewNATSKVStore(kv),
		}, func() {}

	default:
		log.Fatalf("unknown WRAPPED_STORE %q (want sqlite, memory, file or nats)", backend)
		return nil, nil
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
