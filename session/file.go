package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

// FileStore persists sessions as individual JSON files in a directory.
// Each session is stored as {id}.json.
type FileStore struct {
	dir string
}

var _ gagiteck.SessionStore = (*FileStore)(nil)
var _ gagiteck.SessionLister = (*FileStore)(nil)

// NewFileStore creates a FileStore that saves sessions to the given directory.
// The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// sessionJSON is the on-disk representation of a session.
type sessionJSON struct {
	ID        string             `json:"id"`
	Messages  []gagiteck.Message `json:"messages"`
	Metadata  metadataJSON       `json:"metadata"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type metadataJSON struct {
	Model       string         `json:"model"`
	TotalCost   string         `json:"total_cost"`
	TotalTokens gagiteck.Usage `json:"total_tokens"`
	NumTurns    int            `json:"num_turns"`
}

// Save writes a session to disk as JSON.
func (f *FileStore) Save(_ context.Context, session *gagiteck.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	data := sessionJSON{
		ID:       session.ID,
		Messages: session.Messages,
		Metadata: metadataJSON{
			Model:       session.Metadata.Model,
			TotalCost:   session.Metadata.TotalCost.String(),
			TotalTokens: session.Metadata.TotalTokens,
			NumTurns:    session.Metadata.NumTurns,
		},
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(f.path(session.ID), b, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Load reads a session from disk by ID.
func (f *FileStore) Load(_ context.Context, id string) (*gagiteck.Session, error) {
	b, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("session not found: %s", id)
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var data sessionJSON
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return fromJSON(data)
}

// Delete removes a session file by ID.
func (f *FileStore) Delete(_ context.Context, id string) error {
	err := os.Remove(f.path(id))
	if os.IsNotExist(err) {
		return fmt.Errorf("session not found: %s", id)
	}
	return err
}

// List returns all sessions stored in the directory.
func (f *FileStore) List(_ context.Context) ([]*gagiteck.Session, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}

	var sessions []*gagiteck.Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(f.dir, entry.Name()))
		if err != nil {
			continue
		}
		var data sessionJSON
		if err := json.Unmarshal(b, &data); err != nil {
			continue // skip corrupt files
		}
		s, err := fromJSON(data)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+".json")
}

func fromJSON(data sessionJSON) (*gagiteck.Session, error) {
	cost, err := decimal.NewFromString(data.Metadata.TotalCost)
	if err != nil {
		cost = decimal.Zero
	}
	return &gagiteck.Session{
		ID:       data.ID,
		Messages: data.Messages,
		Metadata: gagiteck.SessionMeta{
			Model:       data.Metadata.Model,
			TotalCost:   cost,
			TotalTokens: data.Metadata.TotalTokens,
			NumTurns:    data.Metadata.NumTurns,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
