// Package session binds one content type's schema and persisted field groups
// to a grouping.Store for the length of one editing session.
package session

import (
	"fmt"
	"log/slog"

	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/grouping"
	"github.com/pluqqy/fieldgroups/pkg/models"
)

// Session is an open editing session. Nothing is written until Save.
type Session struct {
	ContentType *models.ContentType
	Key         models.StorageKey
	Store       *grouping.Store

	stored  bool
	drifted bool
	logger  *slog.Logger
}

// Open loads the content type schema and its persisted grouping, reconciling
// the grouping when the schema has changed since it was saved.
func Open(contentTypeID string, settings *models.Settings, opts ...grouping.Option) (*Session, error) {
	ct, err := files.ReadContentType(contentTypeID)
	if err != nil {
		return nil, err
	}

	cfg, err := files.ReadConfig()
	if err != nil {
		return nil, err
	}

	return New(ct, cfg, settings, opts...), nil
}

// New builds a session from already loaded inputs.
func New(ct *models.ContentType, cfg models.PersistedConfig, settings *models.Settings, opts ...grouping.Option) *Session {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := slog.Default()

	key := ct.StorageKey(settings.Storage)
	stored := cfg.Lookup(key)
	schema := ct.Snapshot()

	s := &Session{
		ContentType: ct,
		Key:         key,
		Store:       grouping.NewStore(schema, stored, append([]grouping.Option{grouping.WithLogger(logger)}, opts...)...),
		stored:      stored != nil,
		drifted:     grouping.Drifted(schema, stored),
		logger:      logger,
	}

	logger.Debug("opened field group session",
		"key", key.String(),
		"version", schema.Version,
		"stored", s.stored,
		"drifted", s.drifted,
		"groups", s.Store.Len())
	return s
}

// Status describes how the persisted grouping relates to the live schema.
type Status string

const (
	StatusUnconfigured Status = "unconfigured"
	StatusSynced       Status = "synced"
	StatusDrifted      Status = "drifted"
)

// Status reports the state of the persisted grouping when the session opened.
func (s *Session) Status() Status {
	switch {
	case !s.stored:
		return StatusUnconfigured
	case s.drifted:
		return StatusDrifted
	default:
		return StatusSynced
	}
}

// NeedsSave reports whether saving would change the persisted config.
func (s *Session) NeedsSave() bool {
	return s.Store.Dirty() || s.drifted
}

// Apply runs one action against the session's store.
func (s *Session) Apply(action grouping.Action) error {
	return s.Store.Apply(action)
}

// Save re-reads the persisted config, replaces this session's entry with the
// current state and writes the whole config back. Other keys are kept as they
// are on disk, so concurrent sessions on the same key are last writer wins.
func (s *Session) Save() error {
	cfg, err := files.ReadConfig()
	if err != nil {
		return err
	}

	state := s.Store.State()
	cfg[s.Key.String()] = &state

	if err := files.WriteConfig(cfg); err != nil {
		return fmt.Errorf("failed to save field groups for %s: %w", s.Key, err)
	}

	s.Store.MarkSaved()
	s.stored = true
	s.drifted = false
	s.logger.Debug("saved field groups", "key", s.Key.String(), "groups", len(state.FieldGroups))
	return nil
}
