package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/source"
	"quill/internal/token"
)

// Increment when tokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит токены файлов на диске, ключ — SHA-256 содержимого.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// tokenPayload is the serialized token stream. Spans are stored as parallel
// columns; FileID is deliberately absent since it is FileSet-local and
// reassigned on every load.
type tokenPayload struct {
	Schema uint16
	Path   string
	Kinds  []uint8
	Starts []uint32
	Ends   []uint32
	Texts  []string
}

// OpenTokenCache initializes the cache at the standard per-user location
// ($XDG_CACHE_HOME/<app>/tokens or ~/.cache/<app>/tokens).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app, "tokens"))
}

// OpenTokenCacheAt initializes the cache rooted at an explicit directory.
// Tests use this to avoid touching the user's cache.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(file *source.File) string {
	hexKey := hex.EncodeToString(file.Hash[:])
	return filepath.Join(c.dir, hexKey+".mp")
}

// Put serializes the token stream for the file. The write is atomic:
// temp file plus rename.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Kinds:  make([]uint8, len(tokens)),
		Starts: make([]uint32, len(tokens)),
		Ends:   make([]uint32, len(tokens)),
		Texts:  make([]string, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Kinds[i] = uint8(tok.Kind)
		payload.Starts[i] = tok.Span.Start
		payload.Ends[i] = tok.Span.End
		payload.Texts[i] = tok.Text
	}

	p := c.pathFor(file)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// После успешного Rename файла уже нет; ошибка тут ожидаема.
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get loads the cached token stream for the file's exact content.
// Returns (nil, false, nil) on a clean miss. Spans are rebound to the
// file's current FileID.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion {
		// Старая схема — промах, запись перезапишется при следующем Put.
		return nil, false, nil
	}
	if len(payload.Kinds) != len(payload.Starts) ||
		len(payload.Kinds) != len(payload.Ends) ||
		len(payload.Kinds) != len(payload.Texts) {
		return nil, false, fmt.Errorf("token cache entry for %s is corrupt", payload.Path)
	}

	tokens := make([]token.Token, len(payload.Kinds))
	for i := range payload.Kinds {
		tokens[i] = token.Token{
			Kind: token.Kind(payload.Kinds[i]),
			Text: payload.Texts[i],
			Span: source.Span{
				File:  file.ID,
				Start: payload.Starts[i],
				End:   payload.Ends[i],
			},
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
