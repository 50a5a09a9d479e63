// Package toml persists the cart snapshot to a single TOML file.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/techstore/techstore-cli/internal/domain"
	"github.com/techstore/techstore-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	cartPathKey     = "cart.path"
	cartFileMode    = 0o600
	cartDirMode     = 0o700
	cartConfigDir   = ".techstore"
	cartFileName    = "cart.toml"
	tempFilePattern = ".cart-*.toml.tmp"
)

// Repository stores the full cart under one fixed path. Writes replace the
// file atomically so a crash never leaves a partially written snapshot.
type Repository struct {
	cartPath string
	clock    ports.Clock
	mu       *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CartStore = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, clock ports.Clock) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, cartConfigDir, cartFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, cartConfigDir))
	cfg.SetDefault(cartPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cartPath := cfg.GetString(cartPathKey)
	if cartPath == "" {
		return nil, errors.New("cart path is empty")
	}
	cartPath, err = normalizeCartPath(cartPath)
	if err != nil {
		return nil, err
	}

	return &Repository{cartPath: cartPath, clock: clock, mu: lockForPath(cartPath)}, nil
}

func (r *Repository) Load(ctx context.Context) ([]ports.StoredCartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	lines := make([]ports.StoredCartLine, 0, len(file.Lines))
	for _, entry := range file.Lines {
		lines = append(lines, ports.StoredCartLine{
			ProductID: domain.ProductID(entry.ProductID),
			Quantity:  entry.Quantity,
		})
	}

	return lines, nil
}

func (r *Repository) Save(ctx context.Context, lines []ports.StoredCartLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{
		UpdatedAt: r.clock.Now().UTC(),
		Lines:     make([]lineSchema, 0, len(lines)),
	}
	for _, line := range lines {
		file.Lines = append(file.Lines, lineSchema{
			ProductID: string(line.ProductID),
			Quantity:  line.Quantity,
		})
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.cartPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read cart file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode cart file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.cartPath), cartDirMode); err != nil {
		return fmt.Errorf("create cart directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode cart file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.cartPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cart file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cart file: %w", err)
	}

	if err := tempFile.Chmod(cartFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cart file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cart file: %w", err)
	}

	if err := os.Rename(tempName, r.cartPath); err != nil {
		return fmt.Errorf("replace cart file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.cartPath, cartFileMode); err != nil {
		return fmt.Errorf("chmod cart file: %w", err)
	}

	return nil
}

func normalizeCartPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve cart path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
