package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/objectstorage"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL        = "https://s3.us-east-1.amazonaws.com/"
	DefaultMaxUploadBytes = 10 << 20
	URLMaxLen             = 200
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoFile: el request no traía archivo; no se hace nada.
	ErrNoFile = errors.New("no photo file")
	// ErrUploadFailed: falló el bucket; no se crea la Photo.
	ErrUploadFailed = errors.New("photo upload failed")
)

type Config struct {
	Bucket         string
	BaseURL        string // ej. https://s3.us-east-1.amazonaws.com/
	MaxUploadBytes int64
}

type Service struct {
	repo     Repository
	uploader objectstorage.Uploader
	cfg      Config
	log      logger.Logger

	now    func() time.Time
	newKey func() string
}

func NewService(repo Repository, uploader objectstorage.Uploader, cfg Config, log logger.Logger) *Service {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return &Service{
		repo:     repo,
		uploader: uploader,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		newKey:   randomHexKey,
	}
}

func (s *Service) MaxUploadBytes() int64 {
	return s.cfg.MaxUploadBytes
}

// File es el archivo recibido en el request.
type File struct {
	Name        string // nombre del archivo subido, de ahí sale la extensión
	ContentType string
	Body        io.Reader
}

// Add sube el archivo y recién entonces crea la Photo.
// Received -> KeyGenerated -> Uploading -> Persisted. Sin reintentos.
// Una URL demasiado larga se rechaza antes de subir.
func (s *Service) Add(ctx context.Context, catID string, f *File) (Photo, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return Photo{}, fmt.Errorf("%w: cat is required", ErrInvalidInput)
	}
	if f == nil || f.Body == nil || strings.TrimSpace(f.Name) == "" {
		return Photo{}, ErrNoFile
	}

	key := s.newKey() + Extension(f.Name)
	url := s.cfg.BaseURL + s.cfg.Bucket + "/" + key
	// la URL se conoce antes de subir; si no entra en la columna no se sube nada
	if len(url) > URLMaxLen {
		return Photo{}, fmt.Errorf("%w: photo url longer than %d characters", ErrInvalidInput, URLMaxLen)
	}

	log := s.log.With(map[string]any{"cat_id": catID, "bucket": s.cfg.Bucket, "key": key})

	if err := s.uploader.Upload(ctx, s.cfg.Bucket, key, f.Body, f.ContentType); err != nil {
		log.Error("photo upload failed", map[string]any{"error": err.Error()})
		return Photo{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	p := Photo{
		ID:        uuid.NewString(),
		CatID:     catID,
		URL:       url,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Photo{}, err
	}

	log.Info("photo stored", map[string]any{"photo_id": p.ID})
	return p, nil
}

func (s *Service) ListByCat(ctx context.Context, catID string) ([]Photo, error) {
	return s.repo.ListByCat(ctx, strings.TrimSpace(catID))
}

// Extension devuelve desde el último "." del nombre (incluido), o "" si no hay.
func Extension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	return base[i:]
}

// randomHexKey: 6 caracteres hex de un UUID aleatorio. Colisiones no se verifican.
func randomHexKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
